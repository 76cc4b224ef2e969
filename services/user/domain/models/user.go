package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile aggregate, keyed by the auth-provider user id.
// Wishlist membership lives in its own table and is loaded alongside.
type User struct {
	ID                uuid.UUID
	DisplayName       string
	AvatarURL         string
	AvgRating         float64
	ItemsRecycled     int
	LastKnownLocality string
	Wishlist          []uuid.UUID
	CreatedAt         time.Time
}

// Wishlisted reports whether itemID is in the user's wishlist.
func (u *User) Wishlisted(itemID uuid.UUID) bool {
	for _, id := range u.Wishlist {
		if id == itemID {
			return true
		}
	}
	return false
}
