package errors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxArtistNameLength = 256

// ValidateArtistName rejects names that cannot be written into a text node.
//
// Rules:
//   - Not empty or whitespace only
//   - At most 256 characters
//   - No control characters (including newlines)
func ValidateArtistName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "artist name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxArtistNameLength {
		return New(ErrCodeInvalidInput, "artist name too long (max %d characters)", maxArtistNameLength)
	}
	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidInput, "artist name is not valid UTF-8")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "artist name contains invalid control characters")
		}
	}
	return nil
}

// elementIDRegex matches XML NCName-style ids as editors generate them.
var elementIDRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)

// ValidateElementID validates an element id used as a selection.
// An empty id is valid and means "the whole canvas".
func ValidateElementID(id string) error {
	if id == "" {
		return nil
	}
	if !elementIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid element id: %q", id)
	}
	return nil
}

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
