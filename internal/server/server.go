// Package server exposes the feasibility engine over JSON HTTP under
// /api/v1, mirroring the surface the mobile and web clients consume.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loganko83/realcare/internal/cache"
	"github.com/loganko83/realcare/internal/config"
	"github.com/loganko83/realcare/internal/reality"
)

// Server wires the engine, the response cache, and the HTTP routes.
type Server struct {
	cfg   config.Config
	calc  *reality.Calculator
	cache cache.Cache
}

// New builds a server around the given engine. A nil cache disables
// response caching.
func New(cfg config.Config, calc *reality.Calculator, store cache.Cache) *Server {
	if store == nil {
		store = cache.Noop{}
	}
	return &Server{cfg: cfg, calc: calc, cache: store}
}

// Handler assembles the router with middleware and all routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(recovery)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/reality", func(r chi.Router) {
		r.Post("/calculate", s.handleCalculate)
		r.Post("/compare", s.handleCompare)
		r.Post("/action-plan", s.handleActionPlan)
		r.Get("/regions", s.handleRegions)
	})

	return r
}
