// ABOUTME: Tests for the HTTP API using httptest against a real RAGCore
// ABOUTME: Covers routing, validation errors, status codes, and response shapes
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harper/recommend/internal/catalog"
	"github.com/harper/recommend/internal/core"
	"github.com/harper/recommend/internal/embedding"
	"github.com/harper/recommend/internal/logging"
	"github.com/harper/recommend/internal/models"
	"github.com/harper/recommend/internal/storage"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cat := catalog.Default()
	embedder := embedding.NewHashEmbedder()
	index := storage.NewVectorStorage(embedder.Dimension())
	if err := core.BuildIndex(cat, embedder, index); err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	rc := core.NewRAGCore(cat, index, embedder, nil, core.DefaultOptions(), nil)
	return NewRouter(rc, logging.Discard())
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestListProducts(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/products", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var products []models.Product
	decode(t, rec, &products)
	if len(products) != 5 {
		t.Errorf("len(products) = %d, want 5", len(products))
	}
	if products[0].Name != "Acer Nitro 5" {
		t.Errorf("products[0].Name = %q", products[0].Name)
	}
}

func TestGetProduct(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantName   string
	}{
		{"found", "/api/products/2", http.StatusOK, "Dell G15 5511"},
		{"missing", "/api/products/99", http.StatusNotFound, ""},
		{"not a number", "/api/products/abc", http.StatusNotFound, ""},
		{"zero", "/api/products/0", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.path, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				var p models.Product
				decode(t, rec, &p)
				if p.Name != tt.wantName {
					t.Errorf("Name = %q, want %q", p.Name, tt.wantName)
				}
				return
			}
			var e ErrorResponse
			decode(t, rec, &e)
			if e.Error != "Product not found" {
				t.Errorf("error = %q", e.Error)
			}
		})
	}
}

func TestQuery(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/query", `{"query":"video editing laptop under 1000"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result models.QueryResult
	decode(t, rec, &result)
	if len(result.Products) != 4 {
		t.Fatalf("len(products) = %d, want 4", len(result.Products))
	}
	if result.Products[0].ID != 2 {
		t.Errorf("top product = %d, want 2", result.Products[0].ID)
	}
	if result.Products[0].MatchScore < 0.96 {
		t.Errorf("matchScore = %f", result.Products[0].MatchScore)
	}
	if !strings.HasPrefix(result.Response, "Based on your query about") {
		t.Errorf("response = %q", result.Response)
	}
	if len(result.Rationale) != 6 {
		t.Errorf("len(rationale) = %d, want 6", len(result.Rationale))
	}
	if !strings.Contains(rec.Body.String(), `"matchScore"`) {
		t.Error("body should carry matchScore field")
	}
}

func TestQuery_Overrides(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/query", `{"query":"video editing laptop under 1000","maxResults":2,"scoreThreshold":0.1}`)

	var result models.QueryResult
	decode(t, rec, &result)
	if len(result.Products) != 2 {
		t.Errorf("len(products) = %d, want 2", len(result.Products))
	}
}

func TestQuery_NoMatchesReturnsEmptyArray(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/query", `{"query":"gaming laptop"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"products":[]`) {
		t.Errorf("body = %s, want empty products array", rec.Body.String())
	}
}

func TestQuery_Validation(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing", `{}`, "Missing query parameter"},
		{"blank", `{"query":"   "}`, "Missing query parameter"},
		{"bad json", `{"query":`, "Missing query parameter"},
		{"no body", ``, "Missing query parameter"},
		{"zero limit", `{"query":"laptop","maxResults":0}`, "maxResults must be at least 1"},
		{"threshold range", `{"query":"laptop","scoreThreshold":1.5}`, "scoreThreshold must be between -1 and 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/query", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var e ErrorResponse
			decode(t, rec, &e)
			if e.Error != tt.wantErr {
				t.Errorf("error = %q, want %q", e.Error, tt.wantErr)
			}
		})
	}
}

func TestFollowup(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/query/followup", `{"originalQuery":"video editing laptop","followupQuery":"battery life?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var result models.FollowupResult
	decode(t, rec, &result)
	if !strings.Contains(result.Response, `"battery life?"`) {
		t.Errorf("response = %q", result.Response)
	}

	for _, body := range []string{
		`{"originalQuery":"laptop"}`,
		`{"followupQuery":"battery"}`,
		`{"originalQuery":" ","followupQuery":"battery"}`,
		`not json`,
	} {
		rec := do(t, h, http.MethodPost, "/api/query/followup", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
			continue
		}
		var e ErrorResponse
		decode(t, rec, &e)
		if e.Error != "Missing query parameters" {
			t.Errorf("body %s: error = %q", body, e.Error)
		}
	}
}

func TestSearch(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/search?q=video+editing+laptop+under+1000", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var result models.QueryResult
	decode(t, rec, &result)
	// the 0.3 search threshold still excludes product 5 at 0.20
	if len(result.Products) != 4 {
		t.Errorf("len(products) = %d, want 4", len(result.Products))
	}
}

func TestSearch_MissingQuery(t *testing.T) {
	h := newTestRouter(t)

	for _, target := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20"} {
		rec := do(t, h, http.MethodGet, target, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
			continue
		}
		var e ErrorResponse
		decode(t, rec, &e)
		if e.Error != "Missing query parameter" || e.Usage != "Use ?q=your search query" {
			t.Errorf("%s: body = %+v", target, e)
		}
	}
}

func TestModelAndTechnicalInfo(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/model-info", "")
	var mi models.ModelInfo
	decode(t, rec, &mi)
	if mi.Model != "E5-small" || mi.Status.Percentage != 73 {
		t.Errorf("model info = %+v", mi)
	}

	rec = do(t, h, http.MethodGet, "/api/technical-info", "")
	var ti models.TechnicalInfo
	decode(t, rec, &ti)
	if ti.VectorDimensions != 384 || ti.CatalogSize != "5 products indexed" {
		t.Errorf("technical info = %+v", ti)
	}
	if !strings.Contains(rec.Body.String(), `"llm":"Mistral 7B (Open Source)"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]interface{}
	decode(t, rec, &body)
	if body["status"] != "ok" || body["products"] != float64(5) {
		t.Errorf("body = %v", body)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/query", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
