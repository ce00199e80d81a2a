// ABOUTME: In-memory vector index with thresholded cosine similarity search
// ABOUTME: Populated once at startup; reads are safe for concurrent callers
package storage

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/harper/recommend/internal/models"
)

// VectorStorage maps product ids to embeddings and their source text.
// Insertion order is kept so equal scores rank deterministically.
type VectorStorage struct {
	mu        sync.RWMutex
	dimension int
	entries   map[int]models.IndexEntry
	order     []int
}

// NewVectorStorage creates an empty index. A dimension of 0 accepts vectors of any length.
func NewVectorStorage(dimension int) *VectorStorage {
	return &VectorStorage{
		dimension: dimension,
		entries:   make(map[int]models.IndexEntry),
	}
}

// Insert stores the entry for productID, replacing any previous entry for that id
func (vs *VectorStorage) Insert(productID int, vector []float64, sourceText string) error {
	entry := models.IndexEntry{
		ProductID:  productID,
		Vector:     append([]float64(nil), vector...),
		SourceText: sourceText,
	}
	if vs.dimension > 0 {
		if err := entry.ValidateDimension(vs.dimension); err != nil {
			return fmt.Errorf("insert product %d: %w", productID, err)
		}
	}

	vs.mu.Lock()
	defer vs.mu.Unlock()

	if _, exists := vs.entries[productID]; !exists {
		vs.order = append(vs.order, productID)
	}
	vs.entries[productID] = entry
	return nil
}

// Search returns at most limit matches with similarity >= scoreThreshold,
// sorted by similarity descending (insertion order breaks ties)
func (vs *VectorStorage) Search(queryVector []float64, limit int, scoreThreshold float64) []models.MatchResult {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	results := make([]models.MatchResult, 0, len(vs.order))
	if limit <= 0 {
		return results
	}

	for _, id := range vs.order {
		similarity := cosineSimilarity(queryVector, vs.entries[id].Vector)
		if similarity >= scoreThreshold {
			results = append(results, models.MatchResult{
				ProductID:       id,
				SimilarityScore: similarity,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results
}

// Size returns the number of stored entries
func (vs *VectorStorage) Size() int {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return len(vs.entries)
}

// Entry returns the stored entry for productID
func (vs *VectorStorage) Entry(productID int) (models.IndexEntry, bool) {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	entry, ok := vs.entries[productID]
	return entry, ok
}

// IDs returns the stored product ids in insertion order
func (vs *VectorStorage) IDs() []int {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return append([]int(nil), vs.order...)
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
