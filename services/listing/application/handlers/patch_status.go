package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/zwitch/pkg/auth"
	"github.com/ghuser/zwitch/pkg/errhttp"
	"github.com/ghuser/zwitch/pkg/httpx"
	pkgvalidator "github.com/ghuser/zwitch/pkg/validator"
	appsvcs "github.com/ghuser/zwitch/services/listing/application/services"
	"github.com/ghuser/zwitch/services/listing/domain/models"
)

// ChangeStatusRequest is the request body for PATCH /items/{id}/status.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required" example:"Sold"`
} // @name ChangeStatusRequest

// PatchStatusHandler handles PATCH /items/{id}/status requests.
type PatchStatusHandler struct {
	svc *appsvcs.Services
}

// NewPatchStatusHandler returns a PatchStatusHandler backed by the given services.
func NewPatchStatusHandler(svc *appsvcs.Services) *PatchStatusHandler {
	return &PatchStatusHandler{svc: svc}
}

// Execute marks a listing Sold or Recycled. Owner only.
//
//	@Summary		Change listing status
//	@Description	Moves an Available listing to Sold or Recycled. Only the owner may do this, and a listing never leaves Sold or Recycled.
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Listing ID"
//	@Param			request	body		ChangeStatusRequest	true	"Target status"
//	@Success		200		{object}	ListingResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{id}/status [patch]
func (h *PatchStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ChangeStatusRequest](w, r)
	if !ok {
		return
	}

	status, err := models.NewStatus(req.Status)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	item, err := h.svc.Listing.ChangeStatus(r.Context(), userID, itemID, status)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, NewListingResponse(item))
}
