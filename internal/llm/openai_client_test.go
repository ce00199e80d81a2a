// ABOUTME: Tests for the OpenAI client against a fake chat completions endpoint
// ABOUTME: Covers success, retry, timeout, client errors, and blank replies
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/harper/recommend/internal/core"
)

type chatRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func writeAPIError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":{"message":"status %d","type":"test_error"}}`, status)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*ClientConfig)) *OpenAIClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	cfg.Timeout = 2 * time.Second
	cfg.RetryDelay = time.Millisecond
	if mutate != nil {
		mutate(cfg)
	}

	client, err := NewOpenAIClientWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewOpenAIClientWithConfig() error = %v", err)
	}
	return client
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	_, err := NewOpenAIClient("")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewOpenAIClient(\"\") error = %v, want ErrUnavailable", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("k")
	if cfg.ChatModel != "gpt-4o" {
		t.Errorf("ChatModel = %q, want gpt-4o", cfg.ChatModel)
	}
	if cfg.MaxRetries != 0 {
		t.Errorf("MaxRetries = %d, want 0", cfg.MaxRetries)
	}
}

func TestComplete_Success(t *testing.T) {
	var got chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q, want /v1/chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		writeCompletion(w, "  hello there \n")
	}, nil)

	out, err := client.Complete(context.Background(), "test", "prompt text", 123)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if out != "hello there" {
		t.Errorf("Complete() = %q, want trimmed reply", out)
	}

	if got.Model != "gpt-4o" {
		t.Errorf("model = %q", got.Model)
	}
	if got.MaxTokens != 123 {
		t.Errorf("max_tokens = %d, want 123", got.MaxTokens)
	}
	if got.Temperature < 0.69 || got.Temperature > 0.71 {
		t.Errorf("temperature = %f, want 0.7", got.Temperature)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[0].Content != SystemPrompt {
		t.Errorf("messages = %+v", got.Messages)
	}
	if got.Messages[1].Content != "prompt text" {
		t.Errorf("user message = %q", got.Messages[1].Content)
	}
}

func TestComplete_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeAPIError(w, http.StatusInternalServerError)
			return
		}
		writeCompletion(w, "recovered")
	}, func(cfg *ClientConfig) { cfg.MaxRetries = 2 })

	out, err := client.Complete(context.Background(), "test", "p", 10)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if out != "recovered" {
		t.Errorf("Complete() = %q", out)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestComplete_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeAPIError(w, http.StatusUnauthorized)
	}, func(cfg *ClientConfig) { cfg.MaxRetries = 3 })

	_, err := client.Complete(context.Background(), "test", "p", 10)
	if core.ErrorKind(err) != core.KindTransport {
		t.Errorf("kind = %q, want transport (err = %v)", core.ErrorKind(err), err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestComplete_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, func(cfg *ClientConfig) { cfg.Timeout = 50 * time.Millisecond })

	_, err := client.Complete(context.Background(), "enhance_response", "p", 10)

	var ee *core.EnhancementError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %v, want *core.EnhancementError", err)
	}
	if ee.Kind != core.KindTimeout {
		t.Errorf("Kind = %q, want timeout", ee.Kind)
	}
	if ee.Op != "enhance_response" {
		t.Errorf("Op = %q", ee.Op)
	}
}

func TestComplete_BlankReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, "   ")
	}, nil)

	_, err := client.Complete(context.Background(), "test", "p", 10)
	if core.ErrorKind(err) != core.KindEmpty {
		t.Errorf("kind = %q, want empty", core.ErrorKind(err))
	}
}

func TestComplete_NoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}, nil)

	_, err := client.Complete(context.Background(), "test", "p", 10)
	if core.ErrorKind(err) != core.KindEmpty {
		t.Errorf("kind = %q, want empty", core.ErrorKind(err))
	}
}
