// Package httpapi exposes the squad over JSON and a live dashboard websocket.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the HTTP surface. Websocket pumps live on ctx, so they
// outlive the upgrade request and stop with the server.
func NewRouter(ctx context.Context, h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)
	r.Get("/ws", h.hub.ServeWS(ctx))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Route("/api/v1", func(r chi.Router) {
			r.Route("/players", func(r chi.Router) {
				r.Get("/", h.ListPlayers)
				r.Post("/", h.CreatePlayer)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.GetPlayer)
					r.Patch("/", h.UpdatePlayer)
					r.Delete("/", h.DeletePlayer)
					r.Get("/profile", h.GetProfile)
				})
			})

			r.Get("/analytics", h.GetAnalytics)

			r.Get("/selected", h.GetSelected)
			r.Put("/selected", h.SelectPlayer)
			r.Delete("/selected", h.ClearSelection)
		})
	})

	return r
}
