package server

import (
	"net/http"

	"homenest-backend/internal/auth"
	"homenest-backend/internal/handlers"
	"homenest-backend/internal/middleware"
	"homenest-backend/internal/observability"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Deps are the collaborators the router is built from.
type Deps struct {
	Logger     zerolog.Logger
	Verifier   auth.Verifier
	Properties handlers.PropertyStore
	Ratings    handlers.RatingStore
	Registry   *prometheus.Registry // nil disables /metrics
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		// Preflights get back whatever headers they ask for
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	propertyHandler := handlers.NewPropertyHandler(d.Properties)
	ratingHandler := handlers.NewRatingHandler(d.Ratings)

	r.Get("/", handlers.Liveness)
	if d.Registry != nil {
		r.Handle("/metrics", observability.MetricsHandler(d.Registry))
	}

	// Public routes (no auth required)
	r.Get("/all-properties", propertyHandler.All)
	r.Get("/latest-properties", propertyHandler.Latest)
	r.Delete("/property/{id}", propertyHandler.Delete)

	// Protected routes (bearer token required)
	r.Group(func(r chi.Router) {
		r.Use(middleware.VerifyToken(d.Verifier))

		r.Post("/properties", propertyHandler.Create)
		r.Get("/property/{id}", propertyHandler.Get)
		r.Get("/property", propertyHandler.ListByOwner)

		r.Post("/ratings", ratingHandler.Create)
		r.Get("/ratings", ratingHandler.ListByReviewer)
		r.Delete("/ratings/{id}", ratingHandler.Delete)
	})

	return r
}
