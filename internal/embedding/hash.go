// ABOUTME: Deterministic hash-to-vector text embedder
// ABOUTME: Seeds a sine projection with the code point sum of the text, then L2-normalizes
package embedding

import "math"

// Dimension is the length of every vector produced by HashEmbedder
const Dimension = 384

// Name identifies the embedder in logs and diagnostics
const Name = "hash-sine-384"

// Embedder converts text into a fixed-length vector
type Embedder interface {
	Embed(text string) []float64
	Dimension() int
}

// HashEmbedder is a pure, stateless projection. It carries no learned
// semantics: texts with the same code point sum (anagrams included) collide.
type HashEmbedder struct{}

// NewHashEmbedder creates a hash embedder
func NewHashEmbedder() *HashEmbedder {
	return &HashEmbedder{}
}

// Dimension returns the vector length
func (HashEmbedder) Dimension() int { return Dimension }

// Embed returns the unit vector for text
func (HashEmbedder) Embed(text string) []float64 {
	return Embed(text)
}

// Embed computes value[i] = sin((seed + i) * 0.1) where seed is the sum of the
// text's code points, then normalizes. Normalization is skipped only when the
// norm is exactly zero.
func Embed(text string) []float64 {
	seed := Seed(text)

	vec := make([]float64, Dimension)
	for i := range vec {
		vec[i] = math.Sin(float64(seed+i) * 0.1)
	}

	return Normalize(vec)
}

// Seed is the sum of the code points of text
func Seed(text string) int {
	seed := 0
	for _, r := range text {
		seed += int(r)
	}
	return seed
}

// Normalize scales vec in place to unit L2 norm and returns it.
// A zero vector is returned unchanged.
func Normalize(vec []float64) []float64 {
	norm := Norm(vec)
	if norm == 0 {
		return vec
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// Norm is the Euclidean length of vec
func Norm(vec []float64) float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}
