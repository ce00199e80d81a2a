// ABOUTME: MCP tool handler implementations for the recommender
// ABOUTME: Argument errors become tool error results; successes are JSON text
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/recommend/internal/catalog"
	"github.com/harper/recommend/internal/core"
	"github.com/harper/recommend/internal/logging"
	"github.com/harper/recommend/internal/models"
)

// Recommender is the query surface exposed as MCP tools
type Recommender interface {
	Products() []models.Product
	Product(id int) (models.Product, error)
	ProcessQuery(ctx context.Context, query string, opts core.QueryOptions) models.QueryResult
	ProcessFollowupQuery(ctx context.Context, originalQuery, followupQuery string) models.FollowupResult
	GetModelInfo() models.ModelInfo
	GetTechnicalInfo() models.TechnicalInfo
}

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	rec    Recommender
	logger *log.Logger
}

// NewHandlers creates handlers over rec. logger may be nil.
func NewHandlers(rec Recommender, logger *log.Logger) *Handlers {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handlers{rec: rec, logger: logger.With("component", "mcp")}
}

// RecommendProducts handles the recommend_products tool
func (h *Handlers) RecommendProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query argument is required and must be a non-empty string"), nil
	}

	var opts core.QueryOptions
	args := request.GetArguments()
	if _, ok := args["max_results"]; ok {
		maxResults := request.GetInt("max_results", 5)
		if maxResults < 1 {
			return mcp.NewToolResultError("max_results must be at least 1"), nil
		}
		opts.MaxResults = &maxResults
	}
	if _, ok := args["score_threshold"]; ok {
		threshold := request.GetFloat("score_threshold", 0.5)
		if threshold < -1 || threshold > 1 {
			return mcp.NewToolResultError("score_threshold must be between -1 and 1"), nil
		}
		opts.ScoreThreshold = &threshold
	}

	result := h.rec.ProcessQuery(ctx, query, opts)
	h.logger.Debug("recommend_products", "query", query, "matches", len(result.Products))

	return jsonResult(result)
}

// FollowupQuestion handles the followup_question tool
func (h *Handlers) FollowupQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	originalQuery, err := request.RequireString("original_query")
	if err != nil || strings.TrimSpace(originalQuery) == "" {
		return mcp.NewToolResultError("original_query argument is required and must be a non-empty string"), nil
	}
	followupQuery, err := request.RequireString("followup_query")
	if err != nil || strings.TrimSpace(followupQuery) == "" {
		return mcp.NewToolResultError("followup_query argument is required and must be a non-empty string"), nil
	}

	return jsonResult(h.rec.ProcessFollowupQuery(ctx, originalQuery, followupQuery))
}

// GetProduct handles the get_product tool
func (h *Handlers) GetProduct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id argument is required and must be a number"), nil
	}

	product, err := h.rec.Product(id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("product %d not found", id)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get product: %v", err)), nil
	}

	return jsonResult(product)
}

// ListProducts handles the list_products tool
func (h *Handlers) ListProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	products := h.rec.Products()
	return jsonResult(map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// GetTechnicalInfo handles the get_technical_info tool
func (h *Handlers) GetTechnicalInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]interface{}{
		"technical": h.rec.GetTechnicalInfo(),
		"model":     h.rec.GetModelInfo(),
	})
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
