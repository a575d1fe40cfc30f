package models

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// StringValue returns the pointed-to string, or "" for nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
