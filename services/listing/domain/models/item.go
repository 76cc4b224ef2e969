package models

import (
	"time"

	"github.com/google/uuid"

	listingdomain "github.com/ghuser/zwitch/services/listing/domain"
)

// Owner is the denormalized seller snapshot carried on every listing.
// It is copied at posting time, never live-joined.
type Owner struct {
	ID        uuid.UUID
	Name      string
	AvatarURL string
	AvgRating float64
}

// Item is the core aggregate for this bounded context: one marketplace listing.
type Item struct {
	ID          uuid.UUID
	Title       Title
	Description string
	Category    Category
	Condition   Condition
	ListingType ListingType
	// Price in whole rupees. Non-nil and positive iff ListingType is Sell.
	Price      *int64
	Images     []string
	Locality   string
	Owner      Owner
	Status     Status
	IsFeatured bool
	PostedAt   time.Time
}

// NewItem constructs a valid Item aggregate with generated ID, Available
// status, and current timestamp. Enforces the price invariant: Sell listings
// must carry a positive price, all other types must not carry one.
func NewItem(
	title Title,
	description string,
	category Category,
	condition Condition,
	listingType ListingType,
	price *int64,
	images []string,
	locality string,
	owner Owner,
) (*Item, error) {
	switch listingType {
	case ListingTypeSell:
		if price == nil || *price <= 0 {
			return nil, listingdomain.ErrPriceRequired
		}
	default:
		if price != nil && *price != 0 {
			return nil, listingdomain.ErrPriceNotAllowed
		}
		price = nil
	}

	return &Item{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Category:    category,
		Condition:   condition,
		ListingType: listingType,
		Price:       price,
		Images:      images,
		Locality:    locality,
		Owner:       owner,
		Status:      StatusAvailable,
		IsFeatured:  false,
		PostedAt:    time.Now().UTC(),
	}, nil
}

// BuyerPrice returns the price visible to buyers: nil for any non-Sell
// listing regardless of what is stored.
func (i *Item) BuyerPrice() *int64 {
	if i.ListingType != ListingTypeSell {
		return nil
	}
	return i.Price
}

// TransitionTo moves the listing to next, enforcing the
// Available → Sold|Recycled lifecycle.
func (i *Item) TransitionTo(next Status) error {
	if !i.Status.CanTransitionTo(next) {
		return listingdomain.ErrInvalidStatusTransition
	}
	i.Status = next
	return nil
}
