package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/zwitch/pkg/app"
	"github.com/ghuser/zwitch/pkg/auth"
	"github.com/ghuser/zwitch/services/listing/application/handlers"
	appsvcs "github.com/ghuser/zwitch/services/listing/application/services"
)

// ListingRoutes registers listing endpoints on the provided chi router.
// The service container is built in main so it can be cross-wired with the
// user bounded context.
func ListingRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	// Public browse surface.
	r.Group(func(r chi.Router) {
		r.Get("/dashboard", handlers.NewGetDashboardHandler(svcs).Execute)
		r.Get("/items/{id}", handlers.NewGetItemHandler(svcs).Execute)
	})

	// Owner actions require a session.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
		r.Patch("/items/{id}/status", handlers.NewPatchStatusHandler(svcs).Execute)
	})
}
