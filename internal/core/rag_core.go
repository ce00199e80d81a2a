// ABOUTME: RAGCore orchestrates retrieval, ranking, and response synthesis for product queries
// ABOUTME: Constructed once at startup and shared read-only across request handlers
package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/harper/recommend/internal/catalog"
	"github.com/harper/recommend/internal/embedding"
	"github.com/harper/recommend/internal/logging"
	"github.com/harper/recommend/internal/models"
)

const (
	enhancedModelPercentage = 95
	fallbackModelPercentage = 73
	fallbackModelLabel      = "E5-small"
	fallbackLLMLabel        = "Mistral 7B (Open Source)"
)

// Index is the vector store RAGCore searches
type Index interface {
	Insert(productID int, vector []float64, sourceText string) error
	Search(queryVector []float64, limit int, scoreThreshold float64) []models.MatchResult
	Size() int
}

// Options holds retrieval defaults
type Options struct {
	DefaultMaxResults     int
	DefaultScoreThreshold float64
	SearchMaxResults      int
	SearchScoreThreshold  float64
}

// DefaultOptions returns 5/0.5 for queries and 10/0.3 for search
func DefaultOptions() Options {
	return Options{
		DefaultMaxResults:     5,
		DefaultScoreThreshold: 0.5,
		SearchMaxResults:      10,
		SearchScoreThreshold:  0.3,
	}
}

// QueryOptions overrides retrieval limits for one query. Nil fields use the defaults.
type QueryOptions struct {
	MaxResults     *int
	ScoreThreshold *float64
}

// RAGCore answers queries against a fixed catalog
type RAGCore struct {
	catalog  *catalog.Catalog
	index    Index
	embedder embedding.Embedder
	enhancer Enhancer
	synth    *TextSynthesizer
	opts     Options
	logger   *log.Logger
}

// NewRAGCore wires already-built components. enhancer and logger may be nil.
func NewRAGCore(cat *catalog.Catalog, index Index, embedder embedding.Embedder, enhancer Enhancer, opts Options, logger *log.Logger) *RAGCore {
	if logger == nil {
		logger = logging.Discard()
	}
	defaults := DefaultOptions()
	if opts.DefaultMaxResults <= 0 {
		opts.DefaultMaxResults = defaults.DefaultMaxResults
	}
	if opts.SearchMaxResults <= 0 {
		opts.SearchMaxResults = defaults.SearchMaxResults
	}
	return &RAGCore{
		catalog:  cat,
		index:    index,
		embedder: embedder,
		enhancer: enhancer,
		synth:    NewTextSynthesizer(),
		opts:     opts,
		logger:   logger.With("component", "rag_core"),
	}
}

// BuildIndex embeds every catalog product into index. Called once before serving.
func BuildIndex(cat *catalog.Catalog, embedder embedding.Embedder, index Index) error {
	for _, p := range cat.All() {
		text := p.SourceText()
		if err := index.Insert(p.ID, embedder.Embed(text), text); err != nil {
			return fmt.Errorf("indexing product %d: %w", p.ID, err)
		}
	}
	return nil
}

// Products returns the full catalog
func (r *RAGCore) Products() []models.Product {
	return r.catalog.All()
}

// Product looks up one product; the error wraps catalog.ErrProductNotFound on miss
func (r *RAGCore) Product(id int) (models.Product, error) {
	return r.catalog.Get(id)
}

// IndexSize is the number of indexed products
func (r *RAGCore) IndexSize() int {
	return r.index.Size()
}

// ProcessQuery retrieves, ranks, and explains matches for query. It never fails:
// collaborator errors degrade to the template text.
func (r *RAGCore) ProcessQuery(ctx context.Context, query string, opts QueryOptions) models.QueryResult {
	limit := r.opts.DefaultMaxResults
	if opts.MaxResults != nil {
		limit = *opts.MaxResults
	}
	threshold := r.opts.DefaultScoreThreshold
	if opts.ScoreThreshold != nil {
		threshold = *opts.ScoreThreshold
	}

	start := time.Now()
	ranked := r.retrieve(query, limit, threshold)

	response := r.synth.GenerateResponse(query, ranked)
	rationale := r.synth.GenerateRationale(query, ranked)

	if r.enhancementAvailable() && len(ranked) > 0 {
		response, rationale = r.enhance(ctx, query, ranked, response, rationale)
	}

	r.logger.Debug("processed query",
		"query", query,
		"matches", len(ranked),
		"limit", limit,
		"threshold", threshold,
		"elapsed", time.Since(start))

	return models.QueryResult{
		Response:  response,
		Products:  ranked,
		Rationale: rationale,
	}
}

// ProcessSearch runs ProcessQuery with the wider search defaults
func (r *RAGCore) ProcessSearch(ctx context.Context, query string) models.QueryResult {
	limit := r.opts.SearchMaxResults
	threshold := r.opts.SearchScoreThreshold
	return r.ProcessQuery(ctx, query, QueryOptions{MaxResults: &limit, ScoreThreshold: &threshold})
}

// ProcessFollowupQuery answers a follow-up about the products behind originalQuery
func (r *RAGCore) ProcessFollowupQuery(ctx context.Context, originalQuery, followupQuery string) models.FollowupResult {
	if r.enhancementAvailable() {
		ranked := r.retrieve(originalQuery, r.opts.DefaultMaxResults, r.opts.DefaultScoreThreshold)

		response, err := r.enhancer.GenerateFollowup(ctx, originalQuery, followupQuery, topProducts(ranked))
		if err == nil && strings.TrimSpace(response) != "" {
			return models.FollowupResult{Response: response}
		}
		r.logger.Warn("follow-up generation failed, using fallback",
			"kind", ErrorKind(err),
			"err", err)
	}

	combined := originalQuery + " " + followupQuery
	return models.FollowupResult{Response: r.synth.FollowupFallback(combined, followupQuery)}
}

// GetModelInfo reports the answering model and a coarse confidence tier
func (r *RAGCore) GetModelInfo() models.ModelInfo {
	if r.enhancementAvailable() {
		return models.ModelInfo{
			Model:  r.enhancedLabel(),
			Status: models.ModelStatus{Percentage: enhancedModelPercentage, Health: "Healthy"},
		}
	}
	return models.ModelInfo{
		Model:  fallbackModelLabel,
		Status: models.ModelStatus{Percentage: fallbackModelPercentage, Health: "Healthy"},
	}
}

// GetTechnicalInfo describes the retrieval pipeline
func (r *RAGCore) GetTechnicalInfo() models.TechnicalInfo {
	llmLabel := fallbackLLMLabel
	if r.enhancementAvailable() {
		llmLabel = r.enhancedLabel()
	}
	return models.TechnicalInfo{
		EmbeddingModel:   "E5-small (Open Source)",
		VectorDatabase:   "Chroma (Open Source)",
		LLM:              llmLabel,
		VectorDimensions: r.embedder.Dimension(),
		SimilarityMetric: "Cosine Similarity",
		CatalogSize:      fmt.Sprintf("%d products indexed", r.catalog.Len()),
	}
}

// retrieve embeds query, searches, joins hits to the catalog, and sorts by score
func (r *RAGCore) retrieve(query string, limit int, threshold float64) []models.RankedProduct {
	matches := r.index.Search(r.embedder.Embed(query), limit, threshold)

	ranked := make([]models.RankedProduct, 0, len(matches))
	for _, m := range matches {
		product, err := r.catalog.Get(m.ProductID)
		if err != nil {
			r.logger.Warn("dropping index hit with no catalog record", "product_id", m.ProductID)
			continue
		}
		ranked = append(ranked, models.RankedProduct{Product: product, MatchScore: m.SimilarityScore})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	return ranked
}

// enhance asks the collaborator for both texts concurrently; each falls back on its own
func (r *RAGCore) enhance(ctx context.Context, query string, ranked []models.RankedProduct, response string, rationale []string) (string, []string) {
	top := topProducts(ranked)
	enhancedResponse, enhancedRationale := response, rationale

	var g errgroup.Group
	g.Go(func() error {
		out, err := r.enhancer.EnhanceResponse(ctx, query, top, response)
		if err != nil {
			r.logger.Warn("response enhancement failed, using baseline", "kind", ErrorKind(err), "err", err)
			return nil
		}
		if strings.TrimSpace(out) != "" {
			enhancedResponse = out
		}
		return nil
	})
	g.Go(func() error {
		out, err := r.enhancer.EnhanceRationale(ctx, query, top, rationale)
		if err != nil {
			r.logger.Warn("rationale enhancement failed, using baseline", "kind", ErrorKind(err), "err", err)
			return nil
		}
		if len(out) > 0 {
			enhancedRationale = out
		}
		return nil
	})
	_ = g.Wait()

	return enhancedResponse, enhancedRationale
}

func (r *RAGCore) enhancementAvailable() bool {
	return r.enhancer != nil && r.enhancer.Available()
}

// enhancedLabel renders the chat model name for display, e.g. gpt-4o -> "OpenAI GPT-4o"
func (r *RAGCore) enhancedLabel() string {
	model := r.enhancer.Model()
	if rest, ok := strings.CutPrefix(model, "gpt-"); ok {
		model = "GPT-" + rest
	}
	return "OpenAI " + model
}

func topProducts(ranked []models.RankedProduct) []models.Product {
	n := len(ranked)
	if n > MaxContextProducts {
		n = MaxContextProducts
	}
	top := make([]models.Product, n)
	for i := 0; i < n; i++ {
		top[i] = ranked[i].Product
	}
	return top
}
