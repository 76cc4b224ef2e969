package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/zwitch/pkg/app"
	"github.com/ghuser/zwitch/pkg/cache"
	"github.com/ghuser/zwitch/pkg/config"
	"github.com/ghuser/zwitch/pkg/database"
	"github.com/ghuser/zwitch/pkg/events"
	"github.com/ghuser/zwitch/pkg/logger"
	"github.com/ghuser/zwitch/pkg/telemetry"
	listingSvcs "github.com/ghuser/zwitch/services/listing/application/services"
	listingEvents "github.com/ghuser/zwitch/services/listing/domain/events"
	"github.com/ghuser/zwitch/services/listing/domain/models"
	listingpg "github.com/ghuser/zwitch/services/listing/infrastructure/persistence/postgres"
	userSvcs "github.com/ghuser/zwitch/services/user/application/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	//temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	//if err != nil {
	//	log.Error("failed to initialize temporal client", "error", err)
	//	os.Exit(1) //nolint:gocritic
	//}
	//defer temporalClient.Close()

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		//TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	outboxCtx, cancelOutbox := context.WithCancel(ctx)
	go runOutboxRelay(outboxCtx, appConfig)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelOutbox()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	repo := listingpg.NewItemRepository(a.Db, nil)
	listingCache := cache.NewListingCache(a.Redis)
	users := userSvcs.New(a, repo)

	topics := map[string]func(context.Context, *message.Message) error{
		listingEvents.TopicItemCreated:       handleItemCreated(a, repo, listingCache),
		listingEvents.TopicItemStatusChanged: handleItemStatusChanged(a, repo, listingCache, users.User),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered",
		"topics", []string{listingEvents.TopicItemCreated, listingEvents.TopicItemStatusChanged})
	return nil
}

// handleItemCreated returns a handler for item.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so the first GetByID is served from cache.
func handleItemCreated(a *app.Application, repo *listingpg.ItemRepository, listingCache *cache.ListingCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt listingEvents.ItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := warmListing(ctx, repo, listingCache, evt.ItemID); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for item.created",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"item_id", evt.ItemID, "locality", evt.Locality)
		}

		return nil
	}
}

// handleItemStatusChanged returns a handler for item.status_changed events.
// A transition to Recycled bumps the owner's recycled-item counter; that write
// must stick, so its failure is returned for retry. The cache refresh stays
// best-effort.
func handleItemStatusChanged(a *app.Application, repo *listingpg.ItemRepository, listingCache *cache.ListingCache, users *userSvcs.UserService) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt listingEvents.ItemStatusChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if evt.NewStatus == models.StatusRecycled.String() {
			if err := users.RecordRecycledItem(ctx, evt.OwnerID); err != nil {
				return err
			}
			a.Logger.InfoContext(ctx, "recycled item recorded",
				"item_id", evt.ItemID, "owner_id", evt.OwnerID)
		}

		if err := warmListing(ctx, repo, listingCache, evt.ItemID); err != nil {
			a.Logger.WarnContext(ctx, "cache refresh failed for item.status_changed",
				"item_id", evt.ItemID, "error", err)
		}

		return nil
	}
}

// warmListing re-reads the listing from Postgres and writes it to the cache.
func warmListing(ctx context.Context, repo *listingpg.ItemRepository, listingCache *cache.ListingCache, itemID uuid.UUID) error {
	item, err := repo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	return listingCache.Set(ctx, listingSvcs.ItemToCached(item))
}

// runOutboxRelay polls the outbox for unpublished events and forwards them to
// the EventBus. Runs until ctx is cancelled.
// The Watermill Forwarder (started in cmd/api/main.go) handles at-least-once
// delivery; this relay is a secondary safety net for future outbox tables.
func runOutboxRelay(ctx context.Context, a *app.Application) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("outbox relay shutting down")
			return
		case <-ticker.C:
			// TODO: query outbox table, publish unpublished events, mark as published
		}
	}
}
