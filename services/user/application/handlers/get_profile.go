package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/zwitch/pkg/auth"
	"github.com/ghuser/zwitch/pkg/errhttp"
	"github.com/ghuser/zwitch/pkg/httpx"
	appsvcs "github.com/ghuser/zwitch/services/user/application/services"
)

// ProfileResponse is the authenticated user's own profile.
type ProfileResponse struct {
	ID                uuid.UUID   `json:"id"                  example:"550e8400-e29b-41d4-a716-446655440000"`
	DisplayName       string      `json:"display_name"        example:"Asha"`
	AvatarURL         string      `json:"avatar_url"          example:"https://img.example/a.png"`
	AvgRating         float64     `json:"avg_rating"          example:"4.2"`
	ItemsRecycled     int         `json:"items_recycled"      example:"3"`
	LastKnownLocality string      `json:"last_known_locality" example:"Kothrud"`
	Wishlist          []uuid.UUID `json:"wishlist"`
	CreatedAt         time.Time   `json:"created_at"          example:"2024-01-15T10:30:00Z"`
} // @name ProfileResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"user not found"`
} // @name ErrorResponse

// GetProfileHandler handles GET /me requests.
type GetProfileHandler struct {
	svc *appsvcs.Services
}

// NewGetProfileHandler returns a GetProfileHandler backed by the given services.
func NewGetProfileHandler(svc *appsvcs.Services) *GetProfileHandler {
	return &GetProfileHandler{svc: svc}
}

// Execute returns the authenticated user's profile.
//
//	@Summary		Get own profile
//	@Description	Returns the authenticated user's profile with wishlist ids.
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	ProfileResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/me [get]
func (h *GetProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	user, err := h.svc.User.Profile(r.Context(), userID)
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
