package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/zwitch/pkg/auth"
	"github.com/ghuser/zwitch/pkg/errhttp"
	"github.com/ghuser/zwitch/pkg/httpx"
	appsvcs "github.com/ghuser/zwitch/services/user/application/services"
)

// WishlistToggleResponse reports the item's wishlist membership after the toggle.
type WishlistToggleResponse struct {
	ItemID     uuid.UUID `json:"item_id"    example:"123e4567-e89b-12d3-a456-426614174000"`
	Wishlisted bool      `json:"wishlisted" example:"true"`
} // @name WishlistToggleResponse

// PostWishlistToggleHandler handles POST /me/wishlist/{itemId} requests.
type PostWishlistToggleHandler struct {
	svc *appsvcs.Services
}

// NewPostWishlistToggleHandler returns a PostWishlistToggleHandler backed by the given services.
func NewPostWishlistToggleHandler(svc *appsvcs.Services) *PostWishlistToggleHandler {
	return &PostWishlistToggleHandler{svc: svc}
}

// Execute flips the item's membership in the caller's wishlist and returns
// the resulting state, so optimistic UIs can reconcile on response.
//
//	@Summary		Toggle wishlist membership
//	@Description	Adds the item to the wishlist if absent, removes it if present. Toggling twice restores the original state.
//	@Tags			users
//	@Produce		json
//	@Param			itemId	path		string	true	"Listing ID"
//	@Success		200		{object}	WishlistToggleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/me/wishlist/{itemId} [post]
func (h *PostWishlistToggleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	wishlisted, err := h.svc.User.ToggleWishlist(r.Context(), userID, itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, WishlistToggleResponse{
		ItemID:     itemID,
		Wishlisted: wishlisted,
	})
}
