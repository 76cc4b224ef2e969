package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	listingmodels "github.com/ghuser/zwitch/services/listing/domain/models"
	userdomain "github.com/ghuser/zwitch/services/user/domain"
	"github.com/ghuser/zwitch/services/user/domain/models"
	"github.com/ghuser/zwitch/services/user/domain/repositories"
)

// ListingCatalog is the slice of the listing bounded context this service
// needs: existence checks before wishlist writes, so the wishlist only ever
// holds ids of real listings.
type ListingCatalog interface {
	Exists(ctx context.Context, itemID uuid.UUID) (bool, error)
}

// UserService orchestrates profile reads, locality updates, and wishlist toggles.
type UserService struct {
	repo    repositories.UserRepository
	catalog ListingCatalog
}

// NewUserService returns a UserService wired with the given repository and catalog.
func NewUserService(repo repositories.UserRepository, catalog ListingCatalog) *UserService {
	return &UserService{repo: repo, catalog: catalog}
}

// SaveProfile upserts the user's editable profile fields. The first call
// after a fresh signup creates the row; later calls update it in place.
func (s *UserService) SaveProfile(ctx context.Context, userID uuid.UUID, displayName, avatarURL, locality string) (*models.User, error) {
	if err := s.repo.Save(ctx, &models.User{
		ID:                userID,
		DisplayName:       displayName,
		AvatarURL:         avatarURL,
		LastKnownLocality: locality,
		CreatedAt:         time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return s.Profile(ctx, userID)
}

// Profile retrieves the user's profile with wishlist ids.
func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateLocality sets the user's last-known locality.
func (s *UserService) UpdateLocality(ctx context.Context, userID uuid.UUID, locality string) error {
	if err := s.repo.UpdateLocality(ctx, userID, locality); err != nil {
		return fmt.Errorf("update locality: %w", err)
	}
	return nil
}

// ToggleWishlist flips itemID's membership in the user's wishlist and reports
// the resulting state. The write is awaited and its outcome returned; callers
// doing optimistic UI roll back on error.
//
// Both storage operations are idempotent, so a double toggle lands back on
// the original state. Concurrent toggles from multiple devices race benignly:
// last write wins.
func (s *UserService) ToggleWishlist(ctx context.Context, userID, itemID uuid.UUID) (wishlisted bool, err error) {
	exists, err := s.catalog.Exists(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf("check item: %w", err)
	}
	if !exists {
		return false, userdomain.ErrWishlistItemNotFound
	}

	added, err := s.repo.AddToWishlist(ctx, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("add to wishlist: %w", err)
	}
	if added {
		return true, nil
	}

	// Already present: this toggle removes it.
	if _, err := s.repo.RemoveFromWishlist(ctx, userID, itemID); err != nil {
		return true, fmt.Errorf("remove from wishlist: %w", err)
	}
	return false, nil
}

// WishlistItemIDs returns the ids in the user's wishlist, most recent first.
func (s *UserService) WishlistItemIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.repo.Wishlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	return ids, nil
}

// RecordRecycledItem bumps the user's recycled-item counter. Called by the
// worker when a listing transitions to Recycled.
func (s *UserService) RecordRecycledItem(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.IncrementItemsRecycled(ctx, userID); err != nil {
		return fmt.Errorf("record recycled item: %w", err)
	}
	return nil
}

// OwnerSnapshot resolves the denormalized owner copy stamped onto new
// listings. Satisfies the listing context's OwnerDirectory port.
func (s *UserService) OwnerSnapshot(ctx context.Context, userID uuid.UUID) (listingmodels.Owner, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return listingmodels.Owner{}, fmt.Errorf("get user: %w", err)
	}
	return listingmodels.Owner{
		ID:        user.ID,
		Name:      user.DisplayName,
		AvatarURL: user.AvatarURL,
		AvgRating: user.AvgRating,
	}, nil
}
