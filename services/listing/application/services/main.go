package services

import (
	"github.com/ghuser/zwitch/pkg/app"
	"github.com/ghuser/zwitch/pkg/cache"
	"github.com/ghuser/zwitch/services/listing/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Listing   *ListingService
	Dashboard *DashboardService
}

// New wires all listing application services with infrastructure from the
// Application container. The owner directory crosses into the user bounded
// context and is passed in explicitly.
func New(a *app.Application, owners OwnerDirectory) *Services {
	repo := postgres.NewItemRepository(a.Db, a.EventBus)
	listingCache := cache.NewListingCache(a.Redis)
	return &Services{
		Listing:   NewListingService(repo, owners, listingCache),
		Dashboard: NewDashboardService(repo),
	}
}
