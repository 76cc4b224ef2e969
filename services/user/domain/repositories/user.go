package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/zwitch/services/user/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	Save(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// UpdateLocality sets the user's last-known locality.
	UpdateLocality(ctx context.Context, id uuid.UUID, locality string) error

	// AddToWishlist inserts (userID, itemID) into the wishlist set.
	// Idempotent: adding an existing pair reports added=false with no error.
	AddToWishlist(ctx context.Context, userID, itemID uuid.UUID) (added bool, err error)

	// RemoveFromWishlist deletes (userID, itemID) from the wishlist set.
	// Idempotent: removing an absent pair reports removed=false with no error.
	RemoveFromWishlist(ctx context.Context, userID, itemID uuid.UUID) (removed bool, err error)

	// Wishlist returns the item ids in the user's wishlist, most recently added first.
	Wishlist(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// IncrementItemsRecycled bumps the user's recycled-item counter.
	IncrementItemsRecycled(ctx context.Context, userID uuid.UUID) error
}
