package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"airline-ops/tower/internal/api"
	"airline-ops/tower/internal/logging"
	"airline-ops/tower/internal/middleware"
)

// RegisterRoutes builds the top-level router: global middleware, CORS,
// the health endpoint, and the versioned API routes.
func RegisterRoutes(deps *api.Dependencies, sqlxDB *sqlx.DB, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/health", api.HealthCheckHandler(sqlxDB, upSince))

	RegisterAPIRoutes(r, deps)

	return r
}
