package errors

import (
	"strings"
	"unicode"
)

// Bounds of the puzzle calendar.
const (
	FirstDay = 1
	LastDay  = 25
)

// ValidateDay validates a day number against the puzzle calendar.
func ValidateDay(day int) error {
	if day < FirstDay || day > LastDay {
		return New(ErrCodeInvalidDay, "day %d out of range (%d-%d)", day, FirstDay, LastDay)
	}
	return nil
}

// ValidatePart validates a part number. Every day has exactly two parts.
func ValidatePart(part int) error {
	if part != 1 && part != 2 {
		return New(ErrCodeInvalidPart, "part %d out of range (1-2)", part)
	}
	return nil
}

// ValidateInputPath validates a user-supplied input file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// "-" is accepted and means standard input.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "input path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "input path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "input path contains invalid characters")
		}
	}

	return nil
}

// ValidateOutputFormat validates the answer output format.
func ValidateOutputFormat(format string) error {
	switch strings.TrimSpace(format) {
	case "text", "json", "yaml":
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid output format %q (available: text, json, yaml)", format)
}
