package handlers

import (
	"net/http"

	"github.com/ghuser/zwitch/pkg/auth"
	"github.com/ghuser/zwitch/pkg/errhttp"
	pkgvalidator "github.com/ghuser/zwitch/pkg/validator"
	appsvcs "github.com/ghuser/zwitch/services/user/application/services"
)

// UpdateLocalityRequest is the request body for PUT /me/locality.
type UpdateLocalityRequest struct {
	Locality string `json:"locality" validate:"required,min=2,max=100" example:"Baner"`
} // @name UpdateLocalityRequest

// PutLocalityHandler handles PUT /me/locality requests.
type PutLocalityHandler struct {
	svc *appsvcs.Services
}

// NewPutLocalityHandler returns a PutLocalityHandler backed by the given services.
func NewPutLocalityHandler(svc *appsvcs.Services) *PutLocalityHandler {
	return &PutLocalityHandler{svc: svc}
}

// Execute updates the authenticated user's last-known locality.
//
//	@Summary		Update locality
//	@Description	Sets the locality used as the default dashboard filter.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateLocalityRequest	true	"New locality"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/me/locality [put]
func (h *PutLocalityHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateLocalityRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.User.UpdateLocality(r.Context(), userID, req.Locality); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
