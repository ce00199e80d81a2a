// ABOUTME: Tests for the Enhancer contract, prompt construction, and bullet parsing
// ABOUTME: Verifies product rendering and the unavailable/malformed error kinds
package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/harper/recommend/internal/catalog"
	"github.com/harper/recommend/internal/core"
	"github.com/harper/recommend/internal/models"
)

func testProducts(t *testing.T, ids ...int) []models.Product {
	t.Helper()
	cat := catalog.Default()
	out := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		p, err := cat.Get(id)
		if err != nil {
			t.Fatalf("Get(%d) error = %v", id, err)
		}
		out = append(out, p)
	}
	return out
}

// recordingServer replies with content and records each user prompt
type recordingServer struct {
	mu      sync.Mutex
	prompts []string
	tokens  []int
}

func (rs *recordingServer) handler(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		rs.mu.Lock()
		if len(req.Messages) > 1 {
			rs.prompts = append(rs.prompts, req.Messages[1].Content)
		}
		rs.tokens = append(rs.tokens, req.MaxTokens)
		rs.mu.Unlock()
		writeCompletion(w, content)
	}
}

func TestEnhancer_Unavailable(t *testing.T) {
	e := NewEnhancer(nil)
	ctx := context.Background()

	if e.Available() {
		t.Error("Available() = true, want false")
	}
	if e.Model() != "" {
		t.Errorf("Model() = %q, want empty", e.Model())
	}

	_, err := e.EnhanceResponse(ctx, "q", testProducts(t, 1), "base")
	if core.ErrorKind(err) != core.KindUnavailable {
		t.Errorf("EnhanceResponse kind = %q, want unavailable", core.ErrorKind(err))
	}
	_, err = e.EnhanceRationale(ctx, "q", testProducts(t, 1), []string{"base"})
	if core.ErrorKind(err) != core.KindUnavailable {
		t.Errorf("EnhanceRationale kind = %q, want unavailable", core.ErrorKind(err))
	}
	_, err = e.GenerateFollowup(ctx, "q", "f", nil)
	if core.ErrorKind(err) != core.KindUnavailable {
		t.Errorf("GenerateFollowup kind = %q, want unavailable", core.ErrorKind(err))
	}
}

func TestEnhancer_EnhanceResponse(t *testing.T) {
	rs := &recordingServer{}
	e := NewEnhancer(newTestClient(t, rs.handler("A better answer."), nil))

	out, err := e.EnhanceResponse(context.Background(), "video editing", testProducts(t, 2, 1, 3, 4), "baseline text")
	if err != nil {
		t.Fatalf("EnhanceResponse() error = %v", err)
	}
	if out != "A better answer." {
		t.Errorf("EnhanceResponse() = %q", out)
	}

	prompt := rs.prompts[0]
	if !strings.Contains(prompt, `User Query: "video editing"`) {
		t.Error("prompt missing query")
	}
	if !strings.Contains(prompt, "- Dell G15 5511: ") || !strings.Contains(prompt, "(Price: $949.99)") {
		t.Errorf("prompt missing product line:\n%s", prompt)
	}
	if strings.Contains(prompt, "MSI GF63 Thin") {
		t.Error("prompt should include at most three products")
	}
	if !strings.Contains(prompt, `Initial Response: "baseline text"`) {
		t.Error("prompt missing baseline")
	}
	if rs.tokens[0] != 300 {
		t.Errorf("max_tokens = %d, want 300", rs.tokens[0])
	}
}

func TestEnhancer_EnhanceResponse_NoProducts(t *testing.T) {
	e := NewEnhancer(newTestClient(t, (&recordingServer{}).handler("x"), nil))

	_, err := e.EnhanceResponse(context.Background(), "q", nil, "base")
	if core.ErrorKind(err) != core.KindEmpty {
		t.Errorf("kind = %q, want empty", core.ErrorKind(err))
	}
}

func TestEnhancer_EnhanceRationale(t *testing.T) {
	rs := &recordingServer{}
	reply := "Here you go:\n- Strong GPUs for rendering\n  - Plenty of RAM\nnot a bullet\n-\n- Fast SSDs"
	e := NewEnhancer(newTestClient(t, rs.handler(reply), nil))

	out, err := e.EnhanceRationale(context.Background(), "q", testProducts(t, 1), []string{"one", "two"})
	if err != nil {
		t.Fatalf("EnhanceRationale() error = %v", err)
	}
	want := []string{"Strong GPUs for rendering", "Plenty of RAM", "Fast SSDs"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("EnhanceRationale() = %v, want %v", out, want)
	}
	if !strings.Contains(rs.prompts[0], "Initial Rationale:\n- one\n- two") {
		t.Errorf("prompt missing baseline bullets:\n%s", rs.prompts[0])
	}
	if rs.tokens[0] != 250 {
		t.Errorf("max_tokens = %d, want 250", rs.tokens[0])
	}
}

func TestEnhancer_EnhanceRationale_Malformed(t *testing.T) {
	e := NewEnhancer(newTestClient(t, (&recordingServer{}).handler("No bullets here at all."), nil))

	_, err := e.EnhanceRationale(context.Background(), "q", testProducts(t, 1), []string{"one"})
	if core.ErrorKind(err) != core.KindMalformed {
		t.Errorf("kind = %q, want malformed", core.ErrorKind(err))
	}
}

func TestEnhancer_GenerateFollowup(t *testing.T) {
	rs := &recordingServer{}
	e := NewEnhancer(newTestClient(t, rs.handler("The Acer lasts longest."), nil))

	out, err := e.GenerateFollowup(context.Background(), "video editing laptop", "battery?", testProducts(t, 1, 2))
	if err != nil {
		t.Fatalf("GenerateFollowup() error = %v", err)
	}
	if out != "The Acer lasts longest." {
		t.Errorf("GenerateFollowup() = %q", out)
	}

	prompt := rs.prompts[0]
	for _, want := range []string{
		`Original Query: "video editing laptop"`,
		`Follow-up Query: "battery?"`,
		"Specs for Acer Nitro 5:\n- battery: Up to 8 hours battery life\n",
		"Specs for Dell G15 5511:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestEnhancer_Model(t *testing.T) {
	e := NewEnhancer(newTestClient(t, (&recordingServer{}).handler("x"), func(cfg *ClientConfig) {
		cfg.ChatModel = "gpt-4o-mini"
	}))

	if !e.Available() {
		t.Error("Available() = false, want true")
	}
	if e.Model() != "gpt-4o-mini" {
		t.Errorf("Model() = %q", e.Model())
	}
}

func TestParseBullets(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"simple", "- a point\n- another", []string{"a point", "another"}},
		{"indented", "   - spaced out  ", []string{"spaced out"}},
		{"no space after dash", "-tight", []string{"ight"}},
		{"skips prose", "Intro\n- kept\nOutro", []string{"kept"}},
		{"empty bullet", "-\n- ", nil},
		{"none", "nothing here", nil},
		{"unicode after dash", "-• bullet", []string{"bullet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBullets(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBullets(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
