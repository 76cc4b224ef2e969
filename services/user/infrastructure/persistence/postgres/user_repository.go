package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/zwitch/pkg/database"
	userdomain "github.com/ghuser/zwitch/services/user/domain"
	"github.com/ghuser/zwitch/services/user/domain/models"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
// Wishlist membership is a join table with a composite primary key, so both
// toggle directions are idempotent at the storage layer.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Save upserts a profile. The auth provider owns the user id, so a repeated
// signup callback overwrites the mutable fields instead of failing.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO users (id, display_name, avatar_url, avg_rating, items_recycled, last_known_locality, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			avatar_url = EXCLUDED.avatar_url,
			last_known_locality = EXCLUDED.last_known_locality`,
		user.ID, user.DisplayName, user.AvatarURL, user.AvgRating,
		user.ItemsRecycled, user.LastKnownLocality, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// GetByID retrieves a profile with its wishlist. Returns ErrUserNotFound if absent.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT id, display_name, avatar_url, avg_rating, items_recycled, last_known_locality, created_at
		FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.DisplayName, &user.AvatarURL, &user.AvgRating,
		&user.ItemsRecycled, &user.LastKnownLocality, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	wishlist, err := r.Wishlist(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Wishlist = wishlist
	return &user, nil
}

// UpdateLocality sets the user's last-known locality.
func (r *UserRepository) UpdateLocality(ctx context.Context, id uuid.UUID, locality string) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE users SET last_known_locality = $1 WHERE id = $2`, locality, id)
	if err != nil {
		return fmt.Errorf("update locality: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}

// AddToWishlist inserts (userID, itemID) into the wishlist set.
// ON CONFLICT DO NOTHING makes repeated adds a no-op.
func (r *UserRepository) AddToWishlist(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	res, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO wishlist (user_id, item_id) VALUES ($1, $2)
		ON CONFLICT (user_id, item_id) DO NOTHING`, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("add to wishlist: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add to wishlist rows: %w", err)
	}
	return n > 0, nil
}

// RemoveFromWishlist deletes (userID, itemID) from the wishlist set.
func (r *UserRepository) RemoveFromWishlist(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM wishlist WHERE user_id = $1 AND item_id = $2`, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("remove from wishlist: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove from wishlist rows: %w", err)
	}
	return n > 0, nil
}

// Wishlist returns the item ids in the user's wishlist, most recently added first.
func (r *UserRepository) Wishlist(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT item_id FROM wishlist WHERE user_id = $1 ORDER BY added_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query wishlist: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan wishlist item: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wishlist: %w", err)
	}
	return ids, nil
}

// IncrementItemsRecycled bumps the user's recycled-item counter.
func (r *UserRepository) IncrementItemsRecycled(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.DB().ExecContext(ctx,
		`UPDATE users SET items_recycled = items_recycled + 1 WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("increment items_recycled: %w", err)
	}
	return nil
}
