package services

import (
	"github.com/ghuser/zwitch/pkg/app"
	"github.com/ghuser/zwitch/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	User *UserService
}

// New wires all user application services with infrastructure from the
// Application container. The listing catalog crosses into the listing bounded
// context and is passed in explicitly.
func New(a *app.Application, catalog ListingCatalog) *Services {
	repo := postgres.NewUserRepository(a.Db)
	return &Services{
		User: NewUserService(repo, catalog),
	}
}
