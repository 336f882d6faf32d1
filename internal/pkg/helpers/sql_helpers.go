package helpers

import "strings"

// NotApplicable is the placeholder shown for absent foreign-key references.
const NotApplicable = "N/A"

// NilIfEmpty converts a blank string to nil for nullable columns.
func NilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || s == NotApplicable {
		return nil
	}
	return &s
}

// TextOrNA renders a nullable column for the wire, substituting the
// "N/A" placeholder for null.
func TextOrNA(s *string) string {
	if s == nil || *s == "" {
		return NotApplicable
	}
	return *s
}
