package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/zwitch/services/listing/domain/models"
)

// ListingResponse is the buyer-facing view of a listing. Price is present
// only for Sell listings.
type ListingResponse struct {
	ID          uuid.UUID     `json:"id"           example:"123e4567-e89b-12d3-a456-426614174000"`
	Title       string        `json:"title"        example:"Dell XPS 13 9310"`
	Description string        `json:"description"  example:"Works fine, battery holds 2 hours"`
	Category    string        `json:"category"     example:"Laptops"`
	Condition   string        `json:"condition"    example:"Used - Good"`
	ListingType string        `json:"listing_type" example:"Sell"`
	Price       *int64        `json:"price,omitempty" example:"18000"`
	Images      []string      `json:"images"`
	Locality    string        `json:"locality"     example:"Kothrud"`
	Owner       OwnerResponse `json:"owner"`
	Status      string        `json:"status"       example:"Available"`
	IsFeatured  bool          `json:"is_featured"`
	PostedAt    time.Time     `json:"posted_at"    example:"2024-01-15T10:30:00Z"`
} // @name ListingResponse

// OwnerResponse is the denormalized seller snapshot on a listing.
type OwnerResponse struct {
	ID        uuid.UUID `json:"id"         example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name"       example:"Asha"`
	AvatarURL string    `json:"avatar_url" example:"https://img.example/a.png"`
	AvgRating float64   `json:"avg_rating" example:"4.2"`
} // @name OwnerResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// NewListingResponse maps a domain item to its API shape. The price goes
// through BuyerPrice so non-Sell listings never expose one.
func NewListingResponse(item *models.Item) ListingResponse {
	return ListingResponse{
		ID:          item.ID,
		Title:       item.Title.String(),
		Description: item.Description,
		Category:    item.Category.String(),
		Condition:   item.Condition.String(),
		ListingType: item.ListingType.String(),
		Price:       item.BuyerPrice(),
		Images:      item.Images,
		Locality:    item.Locality,
		Owner: OwnerResponse{
			ID:        item.Owner.ID,
			Name:      item.Owner.Name,
			AvatarURL: item.Owner.AvatarURL,
			AvgRating: item.Owner.AvgRating,
		},
		Status:     item.Status.String(),
		IsFeatured: item.IsFeatured,
		PostedAt:   item.PostedAt,
	}
}

// NewListingResponses maps a slice of domain items.
func NewListingResponses(items []*models.Item) []ListingResponse {
	out := make([]ListingResponse, len(items))
	for i, item := range items {
		out[i] = NewListingResponse(item)
	}
	return out
}
