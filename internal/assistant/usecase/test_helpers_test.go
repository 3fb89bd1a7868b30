package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"smart-search-products/internal/catalog"
	"smart-search-products/internal/product"
	"smart-search-products/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}

// llmScript drives the fake Gemini server. The two pipeline stages are
// told apart by their prompt preambles.
type llmScript struct {
	mu sync.Mutex

	analysisText   string
	analysisStatus int
	composeText    string
	composeStatus  int

	analysisCalls  int
	composeCalls   int
	analysisPrompt string
	composePrompt  string
}

func (s *llmScript) lastComposePrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composePrompt
}

func (s *llmScript) counts() (analysis, compose int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analysisCalls, s.composeCalls
}

// newLLMClient starts a fake Gemini server for the script and returns
// a client pointed at it.
func newLLMClient(t *testing.T, script *llmScript) *gemini.Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		prompt := req.Contents[0].Parts[0].Text

		script.mu.Lock()
		var text string
		var status int
		if strings.Contains(prompt, "analista de compras") {
			script.analysisCalls++
			script.analysisPrompt = prompt
			text, status = script.analysisText, script.analysisStatus
		} else {
			script.composeCalls++
			script.composePrompt = prompt
			text, status = script.composeText, script.composeStatus
		}
		script.mu.Unlock()

		if status != 0 && status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		resp := gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: text}}}},
			},
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(ts.Close)

	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)
	return client
}

type summaryCall struct {
	category string
	limit    int
	maxPrice *float64
}

// mockStore records Summary calls and serves canned summaries.
type mockStore struct {
	mu        sync.Mutex
	summaries map[string]string
	calls     []summaryCall
	pageFunc  func(category string, page, pageSize int) (product.Page, error)
}

func (m *mockStore) Summary(category string, limit int, maxPrice *float64) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, summaryCall{category: category, limit: limit, maxPrice: maxPrice})
	return m.summaries[category]
}

func (m *mockStore) PageOf(category string, page, pageSize int) (product.Page, error) {
	if m.pageFunc != nil {
		return m.pageFunc(category, page, pageSize)
	}
	return product.Page{}, product.ErrCategoryNotFound
}

func (m *mockStore) summaryCalls() []summaryCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]summaryCall, len(m.calls))
	copy(out, m.calls)
	return out
}

func testCatalog() *catalog.Catalog {
	return catalog.FromCategories([]catalog.Category{
		{ID: "Air Conditioners", Name: "Ar-Condicionado"},
		{ID: "Cameras", Name: "Câmeras"},
		{ID: "Headphones", Name: "Fones de Ouvido"},
		{ID: "Refrigerators", Name: "Geladeiras"},
		{ID: "Smart Watches", Name: "Relógios Inteligentes"},
		{ID: "Smartphones", Name: "Celulares"},
	})
}

func floatPtr(v float64) *float64 { return &v }
