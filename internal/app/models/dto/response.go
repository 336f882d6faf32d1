package dto

// MessageResponse confirms a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// TotalCountResponse carries the result of a count query.
type TotalCountResponse struct {
	TotalCount int64 `json:"totalCount"`
}

// EntitiesResponse wraps one page of entity records.
type EntitiesResponse struct {
	Entities interface{} `json:"entities"`
}
