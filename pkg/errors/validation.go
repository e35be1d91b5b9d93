package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxQueryLength bounds user-supplied element queries (symbols, names, numbers).
const maxQueryLength = 64

// ValidateQuery validates a user-supplied element query such as a symbol,
// a name or an atomic number before it is used for a lookup.
//
// The validation rules are intentionally conservative:
//   - No empty queries
//   - No control characters
//   - Maximum length of 64 characters
func ValidateQuery(q string) error {
	if strings.TrimSpace(q) == "" {
		return New(ErrCodeInvalidInput, "element query cannot be empty")
	}

	if len(q) > maxQueryLength {
		return New(ErrCodeInvalidInput, "element query too long (max %d characters)", maxQueryLength)
	}

	for _, r := range q {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "element query contains invalid control characters")
		}
	}

	return nil
}

// imageFilenameRegex matches element image names: a lower-case symbol plus extension.
var imageFilenameRegex = regexp.MustCompile(`^[a-z]{1,3}\.(png|jpg|jpeg|svg|webp)$`)

// ValidateImageFilename validates an element image filename for safety.
// It ensures the name is a simple basename such as "fe.png" with no path components.
func ValidateImageFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidInput, "image filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		return New(ErrCodeInvalidInput, "image filename cannot contain path components")
	}

	for _, r := range filename {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "image filename contains invalid characters")
		}
	}

	if !imageFilenameRegex.MatchString(filename) {
		return New(ErrCodeInvalidInput, "invalid image filename: %q", filename)
	}

	return nil
}

// ValidateOutputPath validates a file path the CLI writes rendered artifacts to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	return nil
}
