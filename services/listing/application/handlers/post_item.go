package handlers

import (
	"net/http"

	"github.com/ghuser/zwitch/pkg/auth"
	"github.com/ghuser/zwitch/pkg/errhttp"
	"github.com/ghuser/zwitch/pkg/httpx"
	pkgvalidator "github.com/ghuser/zwitch/pkg/validator"
	appsvcs "github.com/ghuser/zwitch/services/listing/application/services"
)

// CreateListingRequest is the request body for POST /items.
type CreateListingRequest struct {
	Title       string   `json:"title"        validate:"required,min=3,max=120" example:"Dell XPS 13 9310"`
	Description string   `json:"description"  validate:"max=2000"               example:"Works fine, battery holds 2 hours"`
	Category    string   `json:"category"     validate:"required"               example:"Laptops"`
	Condition   string   `json:"condition"    validate:"required"               example:"Used - Good"`
	ListingType string   `json:"listing_type" validate:"required"               example:"Sell"`
	Price       *int64   `json:"price"        validate:"omitempty,gte=0"        example:"18000"`
	Images      []string `json:"images"       validate:"max=6,dive,url"`
	Locality    string   `json:"locality"     validate:"required"               example:"Kothrud"`
} // @name CreateListingRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new listing owned by the authenticated user.
//
//	@Summary		Post a listing
//	@Description	Creates a new listing. Sell listings require a positive price; Donate and SpareParts listings must not carry one.
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateListingRequest	true	"Listing creation request"
//	@Success		201		{object}	ListingResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateListingRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Listing.Create(r.Context(), userID, appsvcs.CreateListing{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
		ListingType: req.ListingType,
		Price:       req.Price,
		Images:      req.Images,
		Locality:    req.Locality,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, NewListingResponse(item))
}
