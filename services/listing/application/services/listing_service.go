package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/zwitch/pkg/cache"
	listingdomain "github.com/ghuser/zwitch/services/listing/domain"
	"github.com/ghuser/zwitch/services/listing/domain/models"
	"github.com/ghuser/zwitch/services/listing/domain/repositories"
)

// OwnerDirectory resolves the denormalized owner snapshot copied onto a new
// listing. Implemented by the user bounded context.
type OwnerDirectory interface {
	OwnerSnapshot(ctx context.Context, userID uuid.UUID) (models.Owner, error)
}

// CreateListing carries the validated posting-form input for a new listing.
type CreateListing struct {
	Title       string
	Description string
	Category    string
	Condition   string
	ListingType string
	Price       *int64
	Images      []string
	Locality    string
}

// ListingService orchestrates creation and retrieval of listings.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis cache when available.
type ListingService struct {
	repo   repositories.ItemRepository
	owners OwnerDirectory
	cache  *pkgcache.ListingCache
}

// NewListingService returns a ListingService wired with the given repository,
// owner directory, and cache.
func NewListingService(repo repositories.ItemRepository, owners OwnerDirectory, cache *pkgcache.ListingCache) *ListingService {
	return &ListingService{repo: repo, owners: owners, cache: cache}
}

// Create validates and persists a listing for ownerID. The repository
// publishes ItemCreatedEvent in the same transaction.
func (s *ListingService) Create(ctx context.Context, ownerID uuid.UUID, in CreateListing) (*models.Item, error) {
	title, err := models.NewTitle(in.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listingdomain.ErrInvalidListing, err)
	}
	category, err := models.NewCategory(in.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listingdomain.ErrInvalidListing, err)
	}
	condition, err := models.NewCondition(in.Condition)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listingdomain.ErrInvalidListing, err)
	}
	listingType, err := models.NewListingType(in.ListingType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listingdomain.ErrInvalidListing, err)
	}

	owner, err := s.owners.OwnerSnapshot(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("resolve owner: %w", err)
	}

	item, err := models.NewItem(title, in.Description, category, condition,
		listingType, in.Price, in.Images, in.Locality, owner)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	return item, nil
}

// GetByID retrieves a listing using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ListingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToItem(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to Postgres.
			_ = err
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), ItemToCached(item))
		}()
	}

	return item, nil
}

// ChangeStatus applies an Available → Sold|Recycled transition on behalf of
// callerID. Only the owner may change a listing's status. The cache entry is
// dropped so a stale Available copy never survives the transition.
func (s *ListingService) ChangeStatus(ctx context.Context, callerID, itemID uuid.UUID, next models.Status) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if item.Owner.ID != callerID {
		return nil, listingdomain.ErrNotOwner
	}

	if err := item.TransitionTo(next); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, item); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), itemID)
	}

	return item, nil
}

// FindByIDs returns the listings for the given ids, skipping unknown ids.
// Used by the wishlist view.
func (s *ListingService) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Item, error) {
	items, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	return items, nil
}

// Exists reports whether a listing with the given ID exists.
func (s *ListingService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// ItemToCached maps a domain item to the Redis read model.
func ItemToCached(item *models.Item) *pkgcache.CachedListing {
	return &pkgcache.CachedListing{
		ID:             item.ID,
		Title:          item.Title.String(),
		Description:    item.Description,
		Category:       item.Category.String(),
		Condition:      item.Condition.String(),
		ListingType:    item.ListingType.String(),
		Price:          item.Price,
		Images:         item.Images,
		Locality:       item.Locality,
		OwnerID:        item.Owner.ID,
		OwnerName:      item.Owner.Name,
		OwnerAvatarURL: item.Owner.AvatarURL,
		OwnerRating:    item.Owner.AvgRating,
		Status:         item.Status.String(),
		IsFeatured:     item.IsFeatured,
		PostedAt:       item.PostedAt,
	}
}

func cachedToItem(c *pkgcache.CachedListing) *models.Item {
	return &models.Item{
		ID:          c.ID,
		Title:       models.Title(c.Title),
		Description: c.Description,
		Category:    models.Category(c.Category),
		Condition:   models.Condition(c.Condition),
		ListingType: models.ListingType(c.ListingType),
		Price:       c.Price,
		Images:      c.Images,
		Locality:    c.Locality,
		Owner: models.Owner{
			ID:        c.OwnerID,
			Name:      c.OwnerName,
			AvatarURL: c.OwnerAvatarURL,
			AvgRating: c.OwnerRating,
		},
		Status:     models.Status(c.Status),
		IsFeatured: c.IsFeatured,
		PostedAt:   c.PostedAt,
	}
}
