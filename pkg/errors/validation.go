package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxKeyLength bounds item keys so they stay printable in a terminal cell row.
const MaxKeyLength = 128

// ValidateKey validates an item identity key.
//
// Keys identify grid items across reorders, so they must be non-empty and
// free of control characters. Uniqueness is checked at the layout level.
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "item key cannot be empty")
	}

	if len(key) > MaxKeyLength {
		return New(ErrCodeInvalidKey, "item key too long (max %d characters)", MaxKeyLength)
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidKey, "item key %q contains control characters", key)
		}
	}

	return nil
}

// MaxSpan is the largest span an item can have on either axis.
const MaxSpan = 1000

// ValidateSpan validates a grid span for the named axis.
func ValidateSpan(axis string, span int) error {
	if span < 1 {
		return New(ErrCodeInvalidLayout, "%s span must be at least 1, got %d", axis, span)
	}
	if span > MaxSpan {
		return New(ErrCodeInvalidLayout, "%s span %d exceeds the maximum of %d", axis, span, MaxSpan)
	}
	return nil
}

// ValidateConfigPath validates a configuration file path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must carry a .toml extension
func ValidateConfigPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "config path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "config path contains invalid characters")
		}
	}

	if !strings.EqualFold(filepath.Ext(path), ".toml") {
		return New(ErrCodeInvalidPath, "config path must end in .toml: %q", path)
	}

	return nil
}
