package models

// DemographicCount is one bucket of a count-by-category aggregation, e.g. the
// number of students in a year level or of a gender. Category carries the
// enum member even when Count is zero.
type DemographicCount struct {
	Category string
	Count    int64
}
