// ABOUTME: HTTP handlers that validate input and delegate to the Recommender
// ABOUTME: Validation failures are 400s; unknown products are 404s
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/harper/recommend/internal/catalog"
	"github.com/harper/recommend/internal/core"
)

const maxBodyBytes = 1 << 20

// Handler serves the recommendation API
type Handler struct {
	rec    Recommender
	logger *log.Logger
}

// NewHandler creates a handler over rec
func NewHandler(rec Recommender, logger *log.Logger) *Handler {
	return &Handler{rec: rec, logger: logger.With("component", "http")}
}

// QueryRequest is the body of POST /api/query
type QueryRequest struct {
	Query          string   `json:"query"`
	MaxResults     *int     `json:"maxResults,omitempty"`
	ScoreThreshold *float64 `json:"scoreThreshold,omitempty"`
}

// FollowupRequest is the body of POST /api/query/followup
type FollowupRequest struct {
	OriginalQuery string `json:"originalQuery"`
	FollowupQuery string `json:"followupQuery"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"products": h.rec.IndexSize(),
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rec.Products())
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.rec.Product(id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.logger.Error("product lookup failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := decodeBody(w, r, &req); err != nil || strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "Missing query parameter")
		return
	}
	if req.MaxResults != nil && *req.MaxResults < 1 {
		writeError(w, http.StatusBadRequest, "maxResults must be at least 1")
		return
	}
	if req.ScoreThreshold != nil && (*req.ScoreThreshold < -1 || *req.ScoreThreshold > 1) {
		writeError(w, http.StatusBadRequest, "scoreThreshold must be between -1 and 1")
		return
	}

	result := h.rec.ProcessQuery(r.Context(), req.Query, core.QueryOptions{
		MaxResults:     req.MaxResults,
		ScoreThreshold: req.ScoreThreshold,
	})
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) followup(w http.ResponseWriter, r *http.Request) {
	var req FollowupRequest
	if err := decodeBody(w, r, &req); err != nil ||
		strings.TrimSpace(req.OriginalQuery) == "" ||
		strings.TrimSpace(req.FollowupQuery) == "" {
		writeError(w, http.StatusBadRequest, "Missing query parameters")
		return
	}

	writeJSON(w, http.StatusOK, h.rec.ProcessFollowupQuery(r.Context(), req.OriginalQuery, req.FollowupQuery))
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "Missing query parameter",
			Usage: "Use ?q=your search query",
		})
		return
	}

	writeJSON(w, http.StatusOK, h.rec.ProcessSearch(r.Context(), q))
}

func (h *Handler) modelInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rec.GetModelInfo())
}

func (h *Handler) technicalInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rec.GetTechnicalInfo())
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
