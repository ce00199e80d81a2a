// ABOUTME: Composition root that wires config, catalog, index, enhancer, and RAGCore
// ABOUTME: Shared by the CLI, the standalone HTTP server, and the benchmark runner
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harper/recommend/internal/catalog"
	"github.com/harper/recommend/internal/config"
	"github.com/harper/recommend/internal/core"
	"github.com/harper/recommend/internal/embedding"
	"github.com/harper/recommend/internal/llm"
	"github.com/harper/recommend/internal/storage"
)

// App holds the wired components
type App struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Core    *core.RAGCore
	Logger  *log.Logger
}

// Build loads the catalog, indexes it, and constructs the RAGCore.
// A missing API key is not an error: the core runs on templates only.
func Build(cfg *config.Config, logger *log.Logger) (*App, error) {
	start := time.Now()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	embedder := embedding.NewHashEmbedder()
	index := storage.NewVectorStorage(embedder.Dimension())
	if err := core.BuildIndex(cat, embedder, index); err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}

	enhancer, err := newEnhancer(cfg)
	if err != nil {
		return nil, err
	}
	if !enhancer.Available() {
		logger.Warn("OPENAI_API_KEY not set, using template responses")
	}

	rc := core.NewRAGCore(cat, index, embedder, enhancer, core.Options{
		DefaultMaxResults:     cfg.DefaultMaxResults,
		DefaultScoreThreshold: cfg.DefaultScoreThreshold,
		SearchMaxResults:      cfg.SearchMaxResults,
		SearchScoreThreshold:  cfg.SearchScoreThreshold,
	}, logger)

	logger.Info("index built",
		"products", index.Size(),
		"embedder", embedding.Name,
		"enhanced", enhancer.Available(),
		"elapsed", time.Since(start))

	return &App{Config: cfg, Catalog: cat, Core: rc, Logger: logger}, nil
}

func newEnhancer(cfg *config.Config) (*llm.Enhancer, error) {
	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:     cfg.OpenAIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		ChatModel:  cfg.ChatModel,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	if errors.Is(err, llm.ErrUnavailable) {
		return llm.NewEnhancer(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}
	return llm.NewEnhancer(client), nil
}
