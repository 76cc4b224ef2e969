package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ListingCacheTTL is the time-to-live for cached listings.
	ListingCacheTTL = 24 * time.Hour

	listingCacheKeyPrefix = "listing"
)

// CachedListing is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash. Price is absent for non-Sell listings;
// an empty hash field means "no price". Images are JSON-encoded in a single field.
type CachedListing struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Condition      string    `json:"condition"`
	ListingType    string    `json:"listing_type"`
	Price          *int64    `json:"price,omitempty"`
	Images         []string  `json:"images"`
	Locality       string    `json:"locality"`
	OwnerID        uuid.UUID `json:"owner_id"`
	OwnerName      string    `json:"owner_name"`
	OwnerAvatarURL string    `json:"owner_avatar_url"`
	OwnerRating    float64   `json:"owner_rating"`
	Status         string    `json:"status"`
	IsFeatured     bool      `json:"is_featured"`
	PostedAt       time.Time `json:"posted_at"`
}

// ListingCache provides structured read/write operations for listing cache entries.
// Key format: "listing:{itemID}"
type ListingCache struct {
	client *RedisClient
}

// NewListingCache creates a new ListingCache backed by the given RedisClient.
func NewListingCache(r *RedisClient) *ListingCache {
	return &ListingCache{client: r}
}

// Get retrieves a cached listing by item ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ListingCache) Get(ctx context.Context, itemID uuid.UUID) (*CachedListing, error) {
	key := c.key(itemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	ownerID, err := uuid.Parse(vals["owner_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_id: %w", err)
	}
	postedAt, err := time.Parse(time.RFC3339Nano, vals["posted_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse posted_at: %w", err)
	}
	ownerRating, err := strconv.ParseFloat(vals["owner_rating"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_rating: %w", err)
	}

	var price *int64
	if raw := vals["price"]; raw != "" {
		p, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cache parse price: %w", err)
		}
		price = &p
	}

	var images []string
	if raw := vals["images"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &images); err != nil {
			return nil, fmt.Errorf("cache parse images: %w", err)
		}
	}

	return &CachedListing{
		ID:             id,
		Title:          vals["title"],
		Description:    vals["description"],
		Category:       vals["category"],
		Condition:      vals["condition"],
		ListingType:    vals["listing_type"],
		Price:          price,
		Images:         images,
		Locality:       vals["locality"],
		OwnerID:        ownerID,
		OwnerName:      vals["owner_name"],
		OwnerAvatarURL: vals["owner_avatar_url"],
		OwnerRating:    ownerRating,
		Status:         vals["status"],
		IsFeatured:     vals["is_featured"] == "1",
		PostedAt:       postedAt,
	}, nil
}

// Set writes a cached listing as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ListingCache) Set(ctx context.Context, listing *CachedListing) error {
	price := ""
	if listing.Price != nil {
		price = strconv.FormatInt(*listing.Price, 10)
	}
	images, err := json.Marshal(listing.Images)
	if err != nil {
		return fmt.Errorf("cache marshal images: %w", err)
	}
	featured := "0"
	if listing.IsFeatured {
		featured = "1"
	}

	key := c.key(listing.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", listing.ID.String(),
		"title", listing.Title,
		"description", listing.Description,
		"category", listing.Category,
		"condition", listing.Condition,
		"listing_type", listing.ListingType,
		"price", price,
		"images", string(images),
		"locality", listing.Locality,
		"owner_id", listing.OwnerID.String(),
		"owner_name", listing.OwnerName,
		"owner_avatar_url", listing.OwnerAvatarURL,
		"owner_rating", strconv.FormatFloat(listing.OwnerRating, 'f', -1, 64),
		"status", listing.Status,
		"is_featured", featured,
		"posted_at", listing.PostedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ListingCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached listing. Called on status transitions so stale
// Available entries never outlive a sale.
func (c *ListingCache) Delete(ctx context.Context, itemID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "listing:{itemID}"
func (c *ListingCache) key(itemID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", listingCacheKeyPrefix, itemID)
}
