package api

import (
	"flight-info-service/internal/api/handlers"
	"flight-info-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.AirportService, corsOrigins []string) http.Handler {
	airportHandler := &handlers.AirportHandler{Service: svc}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler)

	r.Get("/health", handlers.Health)
	r.Route("/api/airport", func(r chi.Router) {
		r.Get("/{iata}", airportHandler.Info)
		r.Get("/distance/{iataFrom}/{iataTo}/{unitMeasure}", airportHandler.Distance)
	})

	return r
}
