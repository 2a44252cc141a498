package errors

import "strings"

// ValidateCount checks that a named count lies in [min, max].
func ValidateCount(name string, n, min, max int) error {
	if n < min {
		return New(ErrCodeInvalidCount, "%s must be at least %d, got %d", name, min, n)
	}
	if n > max {
		return New(ErrCodeInvalidCount, "%s must be at most %d, got %d", name, max, n)
	}
	return nil
}

// ValidateLabel validates a custom apartment label. Any non-empty text is
// accepted verbatim, including whitespace and digits.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}
	return nil
}

// ValidateIndex checks that i addresses an element of a sequence of length n.
func ValidateIndex(name string, i, n int) error {
	if i < 0 || i >= n {
		return New(ErrCodeInvalidTarget, "%s index %d out of range [0, %d)", name, i, n)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}
