// ABOUTME: OpenAI chat completion client with per-call timeout and retry
// ABOUTME: Maps every failure to a core.EnhancementError so callers can fall back
package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harper/recommend/internal/core"
	"github.com/harper/recommend/internal/util"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = openai.GPT4o
	// SystemPrompt frames every completion
	SystemPrompt = "You are a helpful product recommendation assistant."
	// Temperature is shared by all enhancement calls
	Temperature = 0.7
)

// ErrUnavailable is returned when no API key is configured
var ErrUnavailable = errors.New("openai api key not configured")

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:     apiKey,
		ChatModel:  DefaultChatModel,
		Timeout:    15 * time.Second,
		MaxRetries: 0,
		RetryDelay: time.Second,
	}
}

// OpenAIClient wraps the OpenAI API client with retry logic
type OpenAIClient struct {
	client     *openai.Client
	chatModel  string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIClient creates a new OpenAI client with the given API key using default configuration
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a new OpenAI client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, ErrUnavailable
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(config.BaseURL, "/")
	}

	chatModel := config.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &OpenAIClient{
		client:     openai.NewClientWithConfig(clientConfig),
		chatModel:  chatModel,
		timeout:    timeout,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}, nil
}

// Model returns the configured chat model name
func (c *OpenAIClient) Model() string {
	return c.chatModel
}

// Complete sends one user prompt and returns the trimmed reply. op names the
// calling operation in errors.
func (c *OpenAIClient) Complete(ctx context.Context, op, prompt string, maxTokens int) (string, error) {
	var content string

	err := util.Retry(ctx, c.maxRetries, c.retryDelay, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: SystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   maxTokens,
			Temperature: Temperature,
		})
		if err != nil {
			if isPermanent(err) {
				return util.Permanent(err)
			}
			return err
		}

		if len(resp.Choices) == 0 {
			return util.Permanent(&core.EnhancementError{Op: op, Kind: core.KindEmpty, Err: errors.New("no completion choices returned")})
		}

		text := strings.TrimSpace(resp.Choices[0].Message.Content)
		if text == "" {
			return util.Permanent(&core.EnhancementError{Op: op, Kind: core.KindEmpty, Err: errors.New("blank completion")})
		}

		content = text
		return nil
	})
	if err != nil {
		return "", classify(op, err)
	}
	return content, nil
}

// isPermanent reports client errors that will not succeed on retry
func isPermanent(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500 && apiErr.HTTPStatusCode != http.StatusTooManyRequests
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode >= 400 && reqErr.HTTPStatusCode < 500 && reqErr.HTTPStatusCode != http.StatusTooManyRequests
	}
	return false
}

func classify(op string, err error) error {
	var ee *core.EnhancementError
	if errors.As(err, &ee) {
		return ee
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &core.EnhancementError{Op: op, Kind: core.KindTimeout, Err: err}
	}
	return &core.EnhancementError{Op: op, Kind: core.KindTransport, Err: fmt.Errorf("chat completion: %w", err)}
}
