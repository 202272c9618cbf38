package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/idfinder-gh/idfinder/models"
)

// Init assembles the full route tree.
//
// The public group is rate-limited per client IP and carries no
// authentication. The staff group requires a valid bearer token; mutating
// endpoints additionally require at least INTAKE_OFFICER, and location
// management is ADMIN only.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", h.health)

	// public surface
	router.Group(func(r chi.Router) {
		if h.server.PublicRateLimit > 0 {
			r.Use(httprate.LimitByIP(h.server.PublicRateLimit, time.Minute))
		}
		r.Get("/api/public/search/by-id", h.searchByID)
		r.Get("/api/public/search/by-person", h.searchByPerson)
		r.Post("/api/public/claims", h.openClaim)
	})

	// staff surface
	router.Post("/api/staff/auth/login", h.login)
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/staff/cards", h.listCards)
		r.Get("/api/staff/cards/{id}", h.getCard)
		r.Get("/api/staff/claims", h.listClaims)
		r.Get("/api/staff/locations", h.listLocations)

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleIntakeOfficer))
			r.Post("/api/staff/cards", h.createCard)
			r.Patch("/api/staff/cards/{id}", h.updateCard)
			r.Patch("/api/staff/claims/{id}", h.decideClaim)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleAdmin))
			r.Post("/api/staff/locations", h.createLocation)
		})
	})

	return router
}
