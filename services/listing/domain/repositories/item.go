package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/zwitch/services/listing/domain/models"
)

// SearchFilter is an executable request against the item store. All criteria
// combine with logical AND; zero values mean "no constraint" except Status,
// which every dashboard query pins to Available.
type SearchFilter struct {
	Status      models.Status
	Locality    string
	Category    models.Category    // empty = all categories
	ListingType models.ListingType // empty = all listing types
	FeaturedOnly bool
	// SortByTitle orders results by title ascending instead of the default
	// posted_at descending. Set while a free-text search is active.
	SortByTitle bool
	Limit       int // 0 = uncapped
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// Search retrieves listings matching the filter, ordered per the filter.
	Search(ctx context.Context, filter SearchFilter) ([]*models.Item, error)

	// FindByIDs retrieves the listings for the given ids, skipping unknown ids.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Item, error)

	// UpdateStatus persists a status transition already applied to the aggregate.
	UpdateStatus(ctx context.Context, item *models.Item) error

	// Exists reports whether a listing with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
