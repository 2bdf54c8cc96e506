package router

import (
	"net/http"

	"github.com/AlenaMolokova/cardvalidator/internal/handlers"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	APIPrefix    = "/api"
	ValidatePath = "/validate"
	StatsPath    = "/stats"
	HealthPath   = "/health"
	MetricsPath  = "/metrics"
)

type Deps struct {
	Service        handlers.ValidationService
	RateLimit      func(http.Handler) http.Handler
	Metrics        http.Handler
	AllowedOrigins []string
}

func SetupRoutes(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get(HealthPath, handlers.HealthHandler)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, MetricsPath, deps.Metrics)
	}

	r.Group(func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit)
		}
		r.Post(APIPrefix+ValidatePath, handlers.NewValidateHandler(deps.Service).ServeHTTP)
	})
	r.Get(APIPrefix+StatsPath, handlers.NewStatsHandler(deps.Service).ServeHTTP)

	return r
}
