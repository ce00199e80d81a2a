// ABOUTME: TextSynthesizer builds deterministic response and rationale text from matches
// ABOUTME: Used as the baseline answer and as the fallback when enhancement is unavailable
package core

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/harper/recommend/internal/models"
)

const maxKeywords = 3

var (
	laptopFeatures = []string{
		"All options have dedicated graphics cards for better performance",
		"Each product includes at least 8GB RAM for multitasking",
		"SSD storage is included for faster load times",
	}
	phoneFeatures = []string{
		"All devices feature high-resolution displays",
		"Each has at least 128GB of storage",
		"All include modern camera systems for photography",
	}
	genericFeatures = []string{
		"Products are selected based on quality and performance",
		"All items have positive customer reviews",
		"Each product offers good value for the price",
	}
	closingRationale = []string{
		"Products are sorted by relevance to your specific needs",
		"All products have been filtered to match your requirements",
	}
)

// TextSynthesizer generates template text. It is stateless and safe for concurrent use.
type TextSynthesizer struct {
	stopwords map[string]struct{}
}

// NewTextSynthesizer creates a synthesizer with the default stopword set
func NewTextSynthesizer() *TextSynthesizer {
	words := []string{"a", "the", "and", "or", "but", "for", "with", "in", "on", "at", "to", "i", "need"}
	stopwords := make(map[string]struct{}, len(words))
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
	return &TextSynthesizer{stopwords: stopwords}
}

// GenerateResponse reports how many products matched and their dominant category
func (s *TextSynthesizer) GenerateResponse(query string, matches []models.RankedProduct) string {
	if len(matches) == 0 {
		return NoResultsMessage(query)
	}

	return fmt.Sprintf(
		"Based on your query about \"%s\", I've found %d %s that match your requirements. Here are the top recommendations sorted by relevance.",
		query, len(matches), s.DominantCategory(matches),
	)
}

// NoResultsMessage is the response used when nothing cleared the threshold
func NoResultsMessage(query string) string {
	return fmt.Sprintf(
		"Sorry, I couldn't find any products matching your query for \"%s\". Please try a different search term or browse our product catalog.",
		query,
	)
}

// GenerateRationale returns the keyword summary, three category feature lines, and two closing lines
func (s *TextSynthesizer) GenerateRationale(query string, matches []models.RankedProduct) []string {
	keywords := s.ExtractKeywords(query)

	rationale := make([]string, 0, 1+3+len(closingRationale))
	rationale = append(rationale, fmt.Sprintf("All options match your search for \"%s\"", strings.Join(keywords, ", ")))
	rationale = append(rationale, s.CommonFeatures(matches)...)
	rationale = append(rationale, closingRationale...)

	return rationale
}

// ExtractKeywords lowercases and splits query on whitespace, drops stopwords and
// tokens of two characters or fewer, and keeps the first three in order
func (s *TextSynthesizer) ExtractKeywords(query string) []string {
	keywords := make([]string, 0, maxKeywords)
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if _, stop := s.stopwords[word]; stop {
			continue
		}
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// DominantCategory is the most frequent category; ties go to the first one seen
func (s *TextSynthesizer) DominantCategory(matches []models.RankedProduct) string {
	if len(matches) == 0 {
		return "products"
	}

	counts := make(map[string]int)
	var order []string
	for _, m := range matches {
		category := m.Category
		if category == "" {
			category = "product"
		}
		if _, seen := counts[category]; !seen {
			order = append(order, category)
		}
		counts[category]++
	}

	best := order[0]
	for _, category := range order[1:] {
		if counts[category] > counts[best] {
			best = category
		}
	}
	return best
}

// CommonFeatures picks feature lines from the top match's category
func (s *TextSynthesizer) CommonFeatures(matches []models.RankedProduct) []string {
	category := ""
	if len(matches) > 0 {
		category = strings.ToLower(matches[0].Category)
	}

	var features []string
	switch {
	case strings.Contains(category, "laptop"):
		features = laptopFeatures
	case strings.Contains(category, "phone"):
		features = phoneFeatures
	default:
		features = genericFeatures
	}
	return append([]string(nil), features...)
}

// FollowupFallback is the canned follow-up answer used without a collaborator.
// It ignores the combined query and the catalog.
func (s *TextSynthesizer) FollowupFallback(combinedQuery, followupQuery string) string {
	_ = combinedQuery
	return fmt.Sprintf(
		"Regarding your follow-up question about \"%s\", I've analyzed the products from your initial query. The Acer Nitro 5 has the best battery life among the recommended laptops, with up to 8 hours of usage on a single charge. The battery performance will vary based on usage, with gaming and video editing reducing the effective battery life.",
		followupQuery,
	)
}
