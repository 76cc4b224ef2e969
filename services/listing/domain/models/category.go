package models

import (
	"fmt"
	"strings"
)

// Category is a value object for the fixed e-waste category set.
type Category string

// The fixed category enumeration. Listings and valuation suggestions must
// use one of these.
const (
	CategoryMobiles         Category = "Mobiles"
	CategoryLaptops         Category = "Laptops"
	CategoryKeyboardsMice   Category = "Keyboards & Mice"
	CategoryMonitors        Category = "Monitors"
	CategoryChargersCables  Category = "Chargers & Cables"
	CategoryAudioDevices    Category = "Audio Devices"
	CategoryComponents      Category = "Components"
	CategoryOther           Category = "Other"
)

// Categories returns the full fixed category set, in display order.
func Categories() []Category {
	return []Category{
		CategoryMobiles,
		CategoryLaptops,
		CategoryKeyboardsMice,
		CategoryMonitors,
		CategoryChargersCables,
		CategoryAudioDevices,
		CategoryComponents,
		CategoryOther,
	}
}

// NewCategory constructs a valid Category or returns an error if s is not in
// the fixed set. Matching is case-insensitive.
func NewCategory(s string) (Category, error) {
	if c, ok := MatchCategory(s); ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// MatchCategory maps free text onto the fixed category set, case-insensitively.
// Used to coerce model-suggested categories; reports false when no member matches.
func MatchCategory(s string) (Category, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if strings.ToLower(string(c)) == needle {
			return c, true
		}
	}
	return "", false
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}
