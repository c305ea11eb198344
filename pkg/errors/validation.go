package errors

import (
	"strings"
	"unicode"
)

// ValidateFontFamily validates a font family name from a document
// description. Family names become lookup keys and end up embedded in the
// output file, so hostile input is rejected early.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateFontFamily(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFont, "font family cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidFont, "font family too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFont, "font family contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidFont, "font family contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateFontPath validates a font file path from a document description.
// Descriptions can arrive over HTTP, so a font path is treated as untrusted
// input and must not escape the description's directory.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateFontPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidConfig, "font path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidConfig, "font path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "font path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidConfig, "font path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidConfig, "font path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidConfig, "font path cannot contain backslashes")
	}

	return nil
}
