package handlers

import (
	"net/http"

	"github.com/ghuser/zwitch/pkg/auth"
	"github.com/ghuser/zwitch/pkg/errhttp"
	"github.com/ghuser/zwitch/pkg/httpx"
	listinghandlers "github.com/ghuser/zwitch/services/listing/application/handlers"
	listingappsvcs "github.com/ghuser/zwitch/services/listing/application/services"
	appsvcs "github.com/ghuser/zwitch/services/user/application/services"
)

// WishlistResponse is the caller's wishlist resolved to full listing cards.
// Ids whose listings no longer resolve are skipped.
type WishlistResponse struct {
	Items []listinghandlers.ListingResponse `json:"items"`
} // @name WishlistResponse

// GetWishlistHandler handles GET /me/wishlist requests. It composes the user
// context's id list with the listing context's catalog.
type GetWishlistHandler struct {
	svc      *appsvcs.Services
	listings *listingappsvcs.Services
}

// NewGetWishlistHandler returns a GetWishlistHandler backed by the given services.
func NewGetWishlistHandler(svc *appsvcs.Services, listings *listingappsvcs.Services) *GetWishlistHandler {
	return &GetWishlistHandler{svc: svc, listings: listings}
}

// Execute returns the caller's wishlisted listings, most recently added first.
//
//	@Summary		Get wishlist
//	@Description	Returns the authenticated user's wishlisted listings as full cards.
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	WishlistResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/me/wishlist [get]
func (h *GetWishlistHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	ids, err := h.svc.User.WishlistItemIDs(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := []listinghandlers.ListingResponse{}
	if len(ids) > 0 {
		found, err := h.listings.Listing.FindByIDs(r.Context(), ids)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
		items = listinghandlers.NewListingResponses(found)
	}

	httpx.JSON(w, http.StatusOK, WishlistResponse{Items: items})
}
