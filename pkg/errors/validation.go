package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// ValidatePath validates a user-supplied input or output path.
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
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// OutputFormats lists the artifact formats the renderer can produce.
var OutputFormats = []string{"png", "svg", "json"}

// ValidateFormat checks that format names a supported output format.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	if !slices.Contains(OutputFormats, strings.ToLower(format)) {
		return New(ErrCodeInvalidFormat, "unsupported output format %q (want one of %s)",
			format, strings.Join(OutputFormats, ", "))
	}
	return nil
}

// InputFormats lists the data file extensions the importer understands.
var InputFormats = []string{".csv", ".json", ".xlsx"}

// ValidateInputFile checks that path has a supported data file extension.
func ValidateInputFile(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(InputFormats, ext) {
		return New(ErrCodeInvalidFormat, "unsupported data file %q (want %s)",
			filepath.Base(path), strings.Join(InputFormats, ", "))
	}
	return nil
}
