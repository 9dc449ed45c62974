package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePlanName validates a plan or room name for safety and
// correctness. Names appear in file paths, cache keys, and messages,
// so the rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidatePlanName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPlan, "plan name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPlan, "plan name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPlan, "plan name contains invalid control characters")
		}
	}

	return nil
}

// wallNameRegex matches wall names usable as section references:
// letters, digits, dashes, underscores.
var wallNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateWallName validates a wall name. Empty names are allowed
// (walls are referenceable by index), but a non-empty name must be a
// simple identifier so it can be used unambiguously in section specs.
func ValidateWallName(name string) error {
	if name == "" {
		return nil
	}
	if !wallNameRegex.MatchString(name) {
		return New(ErrCodeInvalidWall, "invalid wall name: %q", name)
	}
	return nil
}

// ValidatePath validates a user-supplied file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
