package entities

import "strings"

// OptString normalizes an optional text field: whitespace-only input counts
// as absent and becomes nil, so the in-memory model and the wire model agree
// about what "missing" means.
func OptString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// OptInt returns nil for zero, matching the wire convention that unset
// numeric metadata is null rather than 0.
func OptInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// StringVal dereferences an optional string, returning "" when absent.
func StringVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
