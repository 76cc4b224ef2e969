package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/zwitch/pkg/auth"
	"github.com/ghuser/zwitch/pkg/errhttp"
	"github.com/ghuser/zwitch/pkg/httpx"
	pkgvalidator "github.com/ghuser/zwitch/pkg/validator"
	appsvcs "github.com/ghuser/zwitch/services/user/application/services"
)

// UpdateProfileRequest is the request body for PUT /me.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=2,max=100"     example:"Asha"`
	AvatarURL   string `json:"avatar_url"   validate:"omitempty,url"              example:"https://img.example/a.png"`
	Locality    string `json:"locality"     validate:"omitempty,min=2,max=100"    example:"Kothrud"`
} // @name UpdateProfileRequest

// PutProfileHandler handles PUT /me requests.
type PutProfileHandler struct {
	svc *appsvcs.Services
}

// NewPutProfileHandler returns a PutProfileHandler backed by the given services.
func NewPutProfileHandler(svc *appsvcs.Services) *PutProfileHandler {
	return &PutProfileHandler{svc: svc}
}

// Execute upserts the authenticated user's editable profile fields. The first
// call after signup creates the profile row.
//
//	@Summary		Update own profile
//	@Description	Creates or updates the authenticated user's display name, avatar, and locality.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	ProfileResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/me [put]
func (h *PutProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProfileRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.User.SaveProfile(r.Context(), userID, req.DisplayName, req.AvatarURL, req.Locality)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	wishlist := user.Wishlist
	if wishlist == nil {
		wishlist = []uuid.UUID{}
	}

	httpx.JSON(w, http.StatusOK, ProfileResponse{
		ID:                user.ID,
		DisplayName:       user.DisplayName,
		AvatarURL:         user.AvatarURL,
		AvgRating:         user.AvgRating,
		ItemsRecycled:     user.ItemsRecycled,
		LastKnownLocality: user.LastKnownLocality,
		Wishlist:          wishlist,
		CreatedAt:         user.CreatedAt,
	})
}
