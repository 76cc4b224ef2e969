package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const userIDKey contextKey = "user_id"

// ErrAuthRequired is returned when no UserID exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrAuthRequired = errors.New("authentication required")

// UserIDFromCtx extracts the authenticated user ID from the request context.
// Returns uuid.Nil and ErrAuthRequired if no UserID is set (signed-out visitor).
func UserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrAuthRequired
	}
	return userID, nil
}

// WithUserID returns a new context with the given UserID attached.
// Used by authentication middleware after validating the session.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
