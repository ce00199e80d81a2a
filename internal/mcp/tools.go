// ABOUTME: MCP tool definitions and registration for the recommender
// ABOUTME: Defines JSON schemas for the five product recommendation tools
package mcp

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// ServerName and ServerVersion identify the MCP server to clients
const (
	ServerName    = "Product Recommender"
	ServerVersion = "0.1.0"
)

// NewServer creates an MCP server with every tool registered
func NewServer(rec Recommender, logger *log.Logger) *mcpserver.MCPServer {
	server := mcpserver.NewMCPServer(ServerName, ServerVersion)
	RegisterTools(server, rec, logger)
	return server
}

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, rec Recommender, logger *log.Logger) *Handlers {
	handlers := NewHandlers(rec, logger)

	// 1. recommend_products - ranked recommendations for a natural-language query
	server.AddTool(mcp.Tool{
		Name:        "recommend_products",
		Description: "Recommend catalog products for a natural-language shopping query. Returns a response, ranked products with match scores, and rationale points.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "What the shopper is looking for, e.g. 'video editing laptop under 1000'",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of products to return (default: 5)",
					"default":     5,
				},
				"score_threshold": map[string]interface{}{
					"type":        "number",
					"description": "Minimum cosine similarity from -1 to 1 (default: 0.5)",
					"default":     0.5,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.RecommendProducts)

	// 2. followup_question - answer a follow-up about earlier recommendations
	server.AddTool(mcp.Tool{
		Name:        "followup_question",
		Description: "Answer a follow-up question about the products recommended for an earlier query.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"original_query": map[string]interface{}{
					"type":        "string",
					"description": "The query that produced the recommendations",
				},
				"followup_query": map[string]interface{}{
					"type":        "string",
					"description": "The follow-up question",
				},
			},
			Required: []string{"original_query", "followup_query"},
		},
	}, handlers.FollowupQuestion)

	// 3. get_product - one catalog record
	server.AddTool(mcp.Tool{
		Name:        "get_product",
		Description: "Get the full catalog record for one product by id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "number",
					"description": "Product id",
				},
			},
			Required: []string{"id"},
		},
	}, handlers.GetProduct)

	// 4. list_products - the whole catalog
	server.AddTool(mcp.Tool{
		Name:        "list_products",
		Description: "List every product in the catalog.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListProducts)

	// 5. get_technical_info - pipeline and model details
	server.AddTool(mcp.Tool{
		Name:        "get_technical_info",
		Description: "Describe the retrieval pipeline: embedding model, vector store, language model, and catalog size.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetTechnicalInfo)

	return handlers
}
