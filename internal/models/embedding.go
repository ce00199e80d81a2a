// ABOUTME: Index entry and search match models for the vector index
// ABOUTME: MatchResult is transient per search and never cached
package models

import "fmt"

// IndexEntry is one product's embedding and the text it was computed from
type IndexEntry struct {
	ProductID  int       `json:"product_id"`
	Vector     []float64 `json:"vector"`
	SourceText string    `json:"source_text"`
}

// ValidateDimension checks the entry vector against the expected dimension
func (e IndexEntry) ValidateDimension(expected int) error {
	if len(e.Vector) == 0 {
		return fmt.Errorf("vector for product %d cannot be empty", e.ProductID)
	}
	if len(e.Vector) != expected {
		return fmt.Errorf("vector dimension mismatch for product %d: expected %d, got %d", e.ProductID, expected, len(e.Vector))
	}
	return nil
}

// MatchResult is a product id with its similarity to the query
type MatchResult struct {
	ProductID       int     `json:"product_id"`
	SimilarityScore float64 `json:"similarity_score"`
}
