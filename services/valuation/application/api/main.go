package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/zwitch/pkg/app"
	"github.com/ghuser/zwitch/pkg/auth"
	"github.com/ghuser/zwitch/services/valuation/application/handlers"
	appsvcs "github.com/ghuser/zwitch/services/valuation/application/services"
)

// ValuationRoutes registers valuation endpoints on the provided chi router.
// All of them call the paid model API, so they sit behind a session.
func ValuationRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		r.Post("/valuations", handlers.NewPostValuationHandler(svcs).Execute)
		r.Route("/suggestions", func(r chi.Router) {
			suggestions := handlers.NewSuggestionsHandler(svcs)
			r.Post("/categories", suggestions.Categories)
			r.Post("/title", suggestions.Title)
			r.Post("/description", suggestions.Description)
		})
	})
}
