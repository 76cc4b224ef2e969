package domain

import "errors"

// Sentinel errors for the listing domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested listing does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidListing indicates a field violates domain constraints.
	ErrInvalidListing = errors.New("invalid listing")

	// ErrPriceRequired indicates a Sell listing was created without a positive price.
	ErrPriceRequired = errors.New("sell listings require a positive price")

	// ErrPriceNotAllowed indicates a non-Sell listing carries a price.
	ErrPriceNotAllowed = errors.New("only sell listings may carry a price")

	// ErrLocalityRequired indicates a dashboard query was attempted without a
	// locality; results without one are meaningless, so no query is issued.
	ErrLocalityRequired = errors.New("locality is required")

	// ErrInvalidStatusTransition indicates a status change outside
	// Available → Sold|Recycled.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrNotOwner indicates the caller does not own the listing.
	ErrNotOwner = errors.New("caller is not the listing owner")
)
