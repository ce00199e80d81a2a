// ABOUTME: Enhancer adapts OpenAIClient to the core enhancement contract
// ABOUTME: A nil client yields an unavailable enhancer that never calls out
package llm

import (
	"context"
	"errors"

	"github.com/harper/recommend/internal/core"
	"github.com/harper/recommend/internal/models"
)

const (
	responseMaxTokens  = 300
	rationaleMaxTokens = 250
	followupMaxTokens  = 300
)

// Enhancer implements core.Enhancer over the chat completion API
type Enhancer struct {
	client *OpenAIClient
}

var _ core.Enhancer = (*Enhancer)(nil)

// NewEnhancer wraps client. client may be nil.
func NewEnhancer(client *OpenAIClient) *Enhancer {
	return &Enhancer{client: client}
}

// Available reports whether a client is configured
func (e *Enhancer) Available() bool {
	return e != nil && e.client != nil
}

// Model returns the chat model name, or "" without a client
func (e *Enhancer) Model() string {
	if !e.Available() {
		return ""
	}
	return e.client.Model()
}

// EnhanceResponse rewrites the baseline response around the top products
func (e *Enhancer) EnhanceResponse(ctx context.Context, query string, top []models.Product, baseline string) (string, error) {
	const op = "enhance_response"
	if err := e.check(op, top); err != nil {
		return "", err
	}
	return e.client.Complete(ctx, op, responsePrompt(query, limitProducts(top), baseline), responseMaxTokens)
}

// EnhanceRationale asks for bullet points; a reply without bullets is malformed
func (e *Enhancer) EnhanceRationale(ctx context.Context, query string, top []models.Product, baseline []string) ([]string, error) {
	const op = "enhance_rationale"
	if err := e.check(op, top); err != nil {
		return nil, err
	}

	content, err := e.client.Complete(ctx, op, rationalePrompt(query, limitProducts(top), baseline), rationaleMaxTokens)
	if err != nil {
		return nil, err
	}

	bullets := ParseBullets(content)
	if len(bullets) == 0 {
		return nil, &core.EnhancementError{Op: op, Kind: core.KindMalformed, Err: errors.New("no bullet points in reply")}
	}
	return bullets, nil
}

// GenerateFollowup answers a follow-up using product specs as context
func (e *Enhancer) GenerateFollowup(ctx context.Context, originalQuery, followupQuery string, contextProducts []models.Product) (string, error) {
	const op = "followup"
	if !e.Available() {
		return "", &core.EnhancementError{Op: op, Kind: core.KindUnavailable, Err: ErrUnavailable}
	}
	return e.client.Complete(ctx, op, followupPrompt(originalQuery, followupQuery, limitProducts(contextProducts)), followupMaxTokens)
}

func (e *Enhancer) check(op string, top []models.Product) error {
	if !e.Available() {
		return &core.EnhancementError{Op: op, Kind: core.KindUnavailable, Err: ErrUnavailable}
	}
	if len(top) == 0 {
		return &core.EnhancementError{Op: op, Kind: core.KindEmpty, Err: errors.New("no products to describe")}
	}
	return nil
}

func limitProducts(products []models.Product) []models.Product {
	if len(products) > core.MaxContextProducts {
		return products[:core.MaxContextProducts]
	}
	return products
}
