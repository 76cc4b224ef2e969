package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/zwitch/pkg/app"
	"github.com/ghuser/zwitch/pkg/auth"
	listingappsvcs "github.com/ghuser/zwitch/services/listing/application/services"
	"github.com/ghuser/zwitch/services/user/application/handlers"
	appsvcs "github.com/ghuser/zwitch/services/user/application/services"
)

// UserRoutes registers user endpoints on the provided chi router. All of them
// operate on the authenticated user. The wishlist view additionally needs the
// listing services to resolve ids into cards.
func UserRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services, listings *listingappsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		r.Route("/me", func(r chi.Router) {
			r.Get("/", handlers.NewGetProfileHandler(svcs).Execute)
			r.Put("/", handlers.NewPutProfileHandler(svcs).Execute)
			r.Put("/locality", handlers.NewPutLocalityHandler(svcs).Execute)
			r.Get("/wishlist", handlers.NewGetWishlistHandler(svcs, listings).Execute)
			r.Post("/wishlist/{itemId}", handlers.NewPostWishlistToggleHandler(svcs).Execute)
		})
	})
}
