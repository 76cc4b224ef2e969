package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/zwitch/pkg/database"
	"github.com/ghuser/zwitch/pkg/events"
	listingdomain "github.com/ghuser/zwitch/services/listing/domain"
	domainevents "github.com/ghuser/zwitch/services/listing/domain/events"
	"github.com/ghuser/zwitch/services/listing/domain/models"
	"github.com/ghuser/zwitch/services/listing/domain/repositories"
)

const itemColumns = `id, title, description, category, condition, listing_type, price,
	images, locality, owner_id, owner_name, owner_avatar_url, owner_rating,
	status, is_featured, posted_at`

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus is used to publish domain events after successful writes.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new listing and publishes an ItemCreatedEvent within the same transaction.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	images, err := json.Marshal(item.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO items (`+itemColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			item.ID, item.Title.String(), item.Description, item.Category.String(),
			item.Condition.String(), item.ListingType.String(), item.Price,
			images, item.Locality, item.Owner.ID, item.Owner.Name,
			item.Owner.AvatarURL, item.Owner.AvgRating,
			item.Status.String(), item.IsFeatured, item.PostedAt,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a listing by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, listingdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// Search retrieves listings matching the filter. Criteria combine with AND;
// ordering is posted_at descending unless the filter asks for title order.
func (r *ItemRepository) Search(ctx context.Context, filter repositories.SearchFilter) ([]*models.Item, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", filter.Status.String())
	}
	if filter.Locality != "" {
		add("locality = $%d", filter.Locality)
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category.String())
	}
	if filter.ListingType != "" {
		add("listing_type = $%d", filter.ListingType.String())
	}
	if filter.FeaturedOnly {
		conds = append(conds, "is_featured")
	}

	q := `SELECT ` + itemColumns + ` FROM items`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	if filter.SortByTitle {
		q += " ORDER BY title ASC"
	} else {
		q += " ORDER BY posted_at DESC"
	}
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.DB().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return collectItems(rows)
}

// FindByIDs retrieves the listings for the given ids, skipping unknown ids.
// Results are ordered posted_at descending.
func (r *ItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Item, error) {
	if len(ids) == 0 {
		return []*models.Item{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id IN (`+strings.Join(placeholders, ", ")+`)
		 ORDER BY posted_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("find items by ids: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return collectItems(rows)
}

// UpdateStatus persists a status transition and publishes an
// ItemStatusChangedEvent within the same transaction. oldStatus is read back
// under the transaction so the event reports the true previous state.
func (r *ItemRepository) UpdateStatus(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var oldStatus string
		err := tx.QueryRowContext(ctx,
			`SELECT status FROM items WHERE id = $1 FOR UPDATE`, item.ID,
		).Scan(&oldStatus)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return listingdomain.ErrItemNotFound
			}
			return fmt.Errorf("lock item: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET status = $1 WHERE id = $2`,
			item.Status.String(), item.ID,
		); err != nil {
			return fmt.Errorf("update item status: %w", err)
		}

		if r.bus != nil {
			if err := r.publishStatusChanged(tx, item, oldStatus); err != nil {
				return fmt.Errorf("publish status changed: %w", err)
			}
		}
		return nil
	})
}

// Exists reports whether a listing with the given ID exists.
func (r *ItemRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ItemID:      item.ID,
		OwnerID:     item.Owner.ID,
		OwnerName:   item.Owner.Name,
		Title:       item.Title.String(),
		Category:    item.Category.String(),
		ListingType: item.ListingType.String(),
		Price:       item.BuyerPrice(),
		Locality:    item.Locality,
		OccurredAt:  item.PostedAt,
	}
	return r.publish(tx, domainevents.TopicItemCreated, event.EventID, event)
}

func (r *ItemRepository) publishStatusChanged(tx *sql.Tx, item *models.Item, oldStatus string) error {
	event := domainevents.ItemStatusChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		OwnerID:    item.Owner.ID,
		OldStatus:  oldStatus,
		NewStatus:  item.Status.String(),
		OccurredAt: item.PostedAt,
	}
	return r.publish(tx, domainevents.TopicItemStatusChanged, event.EventID, event)
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem maps one items row to a domain models.Item.
func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item      models.Item
		title     string
		category  string
		condition string
		ltype     string
		status    string
		price     sql.NullInt64
		images    []byte
	)
	err := row.Scan(
		&item.ID, &title, &item.Description, &category, &condition, &ltype,
		&price, &images, &item.Locality, &item.Owner.ID, &item.Owner.Name,
		&item.Owner.AvatarURL, &item.Owner.AvgRating,
		&status, &item.IsFeatured, &item.PostedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Title = models.Title(title)
	item.Category = models.Category(category)
	item.Condition = models.Condition(condition)
	item.ListingType = models.ListingType(ltype)
	item.Status = models.Status(status)
	if price.Valid {
		item.Price = &price.Int64
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &item.Images); err != nil {
			return nil, fmt.Errorf("unmarshal images: %w", err)
		}
	}
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]*models.Item, error) {
	items := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
