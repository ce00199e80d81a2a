// ABOUTME: Product catalog records and the ranked views returned to callers
// ABOUTME: Products are immutable after catalog load; specs stay an open string map
package models

import (
	"fmt"
	"sort"
	"strings"
)

// Product is a single catalog entry
type Product struct {
	ID             int               `json:"id" yaml:"id"`
	Name           string            `json:"name" yaml:"name"`
	Description    string            `json:"description" yaml:"description"`
	Price          float64           `json:"price" yaml:"price"`
	OriginalPrice  float64           `json:"originalPrice" yaml:"originalPrice"`
	ImageURL       *string           `json:"imageUrl" yaml:"imageUrl"`
	Rating         float64           `json:"rating" yaml:"rating"`
	ReviewCount    int               `json:"reviewCount" yaml:"reviewCount"`
	Category       string            `json:"category" yaml:"category"`
	Specs          map[string]string `json:"specs" yaml:"specs"`
	Recommendation string            `json:"recommendation" yaml:"recommendation"`
}

// Validate checks the fields every catalog entry must carry
func (p Product) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("product id must be positive, got %d", p.ID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product %d: name cannot be empty", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %d: price cannot be negative", p.ID)
	}
	return nil
}

// SpecKeys returns the spec keys in sorted order
func (p Product) SpecKeys() []string {
	keys := make([]string, 0, len(p.Specs))
	for k := range p.Specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SourceText is the text that gets embedded for this product.
// Name, description, category and each "key: value" spec joined by ". ".
func (p Product) SourceText() string {
	parts := []string{
		p.Name,
		p.Description,
		"Category: " + p.Category,
	}
	for _, k := range p.SpecKeys() {
		parts = append(parts, k+": "+p.Specs[k])
	}
	return strings.Join(parts, ". ")
}

// Clone returns a copy that shares no mutable state with p
func (p Product) Clone() Product {
	out := p
	if p.Specs != nil {
		out.Specs = make(map[string]string, len(p.Specs))
		for k, v := range p.Specs {
			out.Specs[k] = v
		}
	}
	if p.ImageURL != nil {
		url := *p.ImageURL
		out.ImageURL = &url
	}
	return out
}

// RankedProduct is a product plus the cosine similarity that retrieved it.
// Serializes flat: every product field plus matchScore.
type RankedProduct struct {
	Product
	MatchScore float64 `json:"matchScore"`
}

// QueryResult is the structured answer to a recommendation query
type QueryResult struct {
	Response  string          `json:"response"`
	Products  []RankedProduct `json:"products"`
	Rationale []string        `json:"rationale"`
}

// FollowupResult is the answer to a follow-up question
type FollowupResult struct {
	Response string `json:"response"`
}

// ModelStatus is the coarse confidence indicator for the active model
type ModelStatus struct {
	Percentage int    `json:"percentage"`
	Health     string `json:"health"`
}

// ModelInfo reports which text model is answering queries
type ModelInfo struct {
	Model  string      `json:"model"`
	Status ModelStatus `json:"status"`
}

// TechnicalInfo is static descriptive metadata about the pipeline
type TechnicalInfo struct {
	EmbeddingModel   string `json:"embeddingModel"`
	VectorDatabase   string `json:"vectorDatabase"`
	LLM              string `json:"llm"`
	VectorDimensions int    `json:"vectorDimensions"`
	SimilarityMetric string `json:"similarityMetric"`
	CatalogSize      string `json:"catalogSize"`
}
