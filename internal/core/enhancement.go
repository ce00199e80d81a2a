// ABOUTME: Contract for the optional text-enhancement collaborator
// ABOUTME: Every call returns a value or an *EnhancementError; callers fall back on error
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/harper/recommend/internal/models"
)

// MaxContextProducts is how many top-ranked products are handed to the collaborator
const MaxContextProducts = 3

// Enhancer refines baseline text using an external language model
type Enhancer interface {
	// Available reports whether a credential is configured
	Available() bool
	// Model is the chat model name, e.g. "gpt-4o"
	Model() string
	EnhanceResponse(ctx context.Context, query string, top []models.Product, baseline string) (string, error)
	EnhanceRationale(ctx context.Context, query string, top []models.Product, baseline []string) ([]string, error)
	GenerateFollowup(ctx context.Context, originalQuery, followupQuery string, contextProducts []models.Product) (string, error)
}

// EnhancementErrorKind classifies why the collaborator produced no usable output
type EnhancementErrorKind string

const (
	KindUnavailable EnhancementErrorKind = "unavailable"
	KindTimeout     EnhancementErrorKind = "timeout"
	KindTransport   EnhancementErrorKind = "transport"
	KindEmpty       EnhancementErrorKind = "empty"
	KindMalformed   EnhancementErrorKind = "malformed"
)

// EnhancementError is the error side of every Enhancer call
type EnhancementError struct {
	Op   string
	Kind EnhancementErrorKind
	Err  error
}

func (e *EnhancementError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *EnhancementError) Unwrap() error { return e.Err }

// ErrorKind extracts the kind from err, treating unknown errors as transport failures
func ErrorKind(err error) EnhancementErrorKind {
	var ee *EnhancementError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindTransport
}
