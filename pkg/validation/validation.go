package validation

import (
	"strings"
	"unicode/utf8"
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MaxLength reports whether s has at most max characters
func MaxLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// OptionalString trims s and returns nil when nothing is left
func OptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed, ok := TrimAndValidate(*s)
	if !ok {
		return nil
	}
	return &trimmed
}
