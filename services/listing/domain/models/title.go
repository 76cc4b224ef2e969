package models

import "fmt"

// Title is a value object representing a valid listing title.
// Encapsulates validation rules: 3 <= len(title) <= 120.
type Title string

const (
	minTitleLength = 3
	maxTitleLength = 120
)

// NewTitle constructs a valid Title or returns an error if constraints are violated.
func NewTitle(s string) (Title, error) {
	if len(s) < minTitleLength {
		return "", fmt.Errorf("title must be at least %d characters", minTitleLength)
	}
	if len(s) > maxTitleLength {
		return "", fmt.Errorf("title must not exceed %d characters", maxTitleLength)
	}
	return Title(s), nil
}

// String returns the underlying string value.
func (t Title) String() string {
	return string(t)
}
