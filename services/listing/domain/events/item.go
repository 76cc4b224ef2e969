package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemCreated is the Watermill topic published when a listing is created.
const TopicItemCreated = "item.created"

// TopicItemStatusChanged is the Watermill topic published on a status transition.
const TopicItemStatusChanged = "item.status_changed"

// ItemCreatedEvent is published after a new listing is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID      uuid.UUID `json:"item_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	ListingType string    `json:"listing_type"`
	Price       *int64    `json:"price,omitempty"`
	Locality    string    `json:"locality"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ItemStatusChangedEvent is published after a listing transitions status.
// The worker bumps the owner's recycled-item count when NewStatus is Recycled.
type ItemStatusChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}
