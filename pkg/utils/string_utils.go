package utils

import (
	"regexp"
	"strings"
)

// NewNullString is a helper for string pointers, returning nil if string is empty.
// Useful for fields that are optional and should be NULL in DB if not provided.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9.]+`)

// SanitizeFileName lowercases a file name and replaces anything outside
// [a-z0-9.] with underscores, so it is safe to use inside an object-storage key.
func SanitizeFileName(name string) string {
	clean := unsafeFileChars.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(clean, "_")
}
