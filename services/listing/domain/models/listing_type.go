package models

import "fmt"

// ListingType classifies a listing's transactional intent.
type ListingType string

const (
	ListingTypeSell       ListingType = "Sell"
	ListingTypeDonate     ListingType = "Donate"
	ListingTypeSpareParts ListingType = "SpareParts"
)

// NewListingType constructs a valid ListingType or returns an error.
func NewListingType(s string) (ListingType, error) {
	switch ListingType(s) {
	case ListingTypeSell, ListingTypeDonate, ListingTypeSpareParts:
		return ListingType(s), nil
	}
	return "", fmt.Errorf("unknown listing type %q", s)
}

// String returns the underlying string value.
func (t ListingType) String() string {
	return string(t)
}

// Condition describes the physical state of a listed device.
type Condition string

const (
	ConditionNew              Condition = "New"
	ConditionLikeNew          Condition = "Used - Like New"
	ConditionGood             Condition = "Used - Good"
	ConditionNeedsMinorRepair Condition = "Needs Minor Repair"
	ConditionForSpareParts    Condition = "For Spare Parts"
)

// NewCondition constructs a valid Condition or returns an error.
func NewCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionNeedsMinorRepair, ConditionForSpareParts:
		return Condition(s), nil
	}
	return "", fmt.Errorf("unknown condition %q", s)
}

// String returns the underlying string value.
func (c Condition) String() string {
	return string(c)
}
