// ABOUTME: chi router wiring for the recommendation HTTP API
// ABOUTME: Mounts /api routes and /healthz behind request id, recovery, and logging middleware
package server

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/harper/recommend/internal/core"
	"github.com/harper/recommend/internal/models"
)

// Recommender is the query surface the HTTP layer serves
type Recommender interface {
	Products() []models.Product
	Product(id int) (models.Product, error)
	IndexSize() int
	ProcessQuery(ctx context.Context, query string, opts core.QueryOptions) models.QueryResult
	ProcessSearch(ctx context.Context, query string) models.QueryResult
	ProcessFollowupQuery(ctx context.Context, originalQuery, followupQuery string) models.FollowupResult
	GetModelInfo() models.ModelInfo
	GetTechnicalInfo() models.TechnicalInfo
}

// NewRouter builds the HTTP handler for rec
func NewRouter(rec Recommender, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	h := NewHandler(rec, logger)

	r.Get("/healthz", h.health)

	r.Route("/api", func(api chi.Router) {
		api.Route("/products", func(pr chi.Router) {
			pr.Get("/", h.listProducts)
			pr.Get("/{id}", h.getProduct)
		})
		api.Post("/query", h.query)
		api.Post("/query/followup", h.followup)
		api.Get("/search", h.search)
		api.Get("/model-info", h.modelInfo)
		api.Get("/technical-info", h.technicalInfo)
	})

	return r
}
