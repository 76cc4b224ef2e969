package models

import "fmt"

// Status is the lifecycle state of a listing. Listings are never deleted;
// they only transition Available → Sold or Available → Recycled.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusSold      Status = "Sold"
	StatusRecycled  Status = "Recycled"
)

// NewStatus constructs a valid Status or returns an error.
func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusSold, StatusRecycled:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle step.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusAvailable && (next == StatusSold || next == StatusRecycled)
}

// String returns the underlying string value.
func (s Status) String() string {
	return string(s)
}
