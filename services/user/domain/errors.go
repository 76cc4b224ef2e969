package domain

import "errors"

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested profile does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrWishlistItemNotFound indicates a wishlist toggle referenced a
	// listing that does not exist.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)
