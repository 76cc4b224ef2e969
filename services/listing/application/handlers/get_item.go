package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/zwitch/pkg/errhttp"
	"github.com/ghuser/zwitch/pkg/httpx"
	appsvcs "github.com/ghuser/zwitch/services/listing/application/services"
)

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute retrieves one listing by ID.
//
//	@Summary		Get a listing
//	@Description	Retrieves a single listing. Served from cache when warm.
//	@Tags			listings
//	@Produce		json
//	@Param			id	path		string	true	"Listing ID"
//	@Success		200	{object}	ListingResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	item, err := h.svc.Listing.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, NewListingResponse(item))
}
