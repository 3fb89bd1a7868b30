package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"smart-search-products/internal/assistant"
	"smart-search-products/internal/assistant/usecase"
	"smart-search-products/internal/product"
)

// The prompt template mentions the sentinel in its instructions, so
// assertions must target the grounding slot, not the whole prompt.
const sentinelInGrounding = "esta consulta:\n" + usecase.NoDataSentinel

const composedAnswer = "Encontrei ótimas opções para **fone de ouvido bluetooth** na categoria **Fones de Ouvido**, " +
	"com preços entre ==R$ 49,90== e ==R$ 199,90==.\n" +
	"[ITEM]\nNOME: Fone BT X\nPRECO: R$ 49.90\nRATING: 4.2\nIMAGEM: ![f](http://img/1.jpg)\n[/ITEM]\n" +
	"[FILTRO]sem fio[/FILTRO][FILTRO]cancelamento de ruído[/FILTRO][FILTRO]até R$ 200[/FILTRO]"

func newUseCase(t *testing.T, script *llmScript, store *mockStore) assistant.UseCase {
	t.Helper()
	return usecase.New(&mockLogger{}, newLLMClient(t, script), testCatalog(), store, 0.4)
}

func TestGenerate_HappyPath(t *testing.T) {
	script := &llmScript{
		analysisText: `{"budget": null, "categories": ["Headphones"]}`,
		composeText:  composedAnswer,
	}
	store := &mockStore{summaries: map[string]string{
		"Headphones": "Categoria Headphones (3 itens):\nNOME: Fone BT X | PRECO: R$ 49.90 | RATING: 4.2 | IMAGEM: http://img/1.jpg\n",
	}}

	uc := newUseCase(t, script, store)
	out, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "fone de ouvido bluetooth"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Response != composedAnswer {
		t.Errorf("composed text must be passed through as-is")
	}
	if out.DetectedBudget != nil {
		t.Errorf("expected nil budget, got %v", *out.DetectedBudget)
	}
	if !reflect.DeepEqual(out.QueriedCategories, []string{"Headphones"}) {
		t.Errorf("unexpected queried categories: %v", out.QueriedCategories)
	}

	calls := store.summaryCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 store lookup, got %d", len(calls))
	}
	if calls[0].category != "Headphones" || calls[0].limit != usecase.SummaryItemLimit {
		t.Errorf("unexpected store call: %+v", calls[0])
	}
	if calls[0].maxPrice != nil {
		t.Errorf("expected no price ceiling, got %v", *calls[0].maxPrice)
	}

	prompt := script.lastComposePrompt()
	if !strings.Contains(prompt, "**fone de ouvido bluetooth**") {
		t.Errorf("compose prompt missing bolded query")
	}
	if !strings.Contains(prompt, "Fones de Ouvido") {
		t.Errorf("compose prompt must carry the display name, not the raw id")
	}
	if !strings.Contains(prompt, "NOME: Fone BT X") {
		t.Errorf("compose prompt missing grounding data")
	}
	if strings.Contains(prompt, sentinelInGrounding) {
		t.Errorf("sentinel must not appear when grounding exists")
	}
}

func TestGenerate_BudgetPrecedence(t *testing.T) {
	t.Run("Caller Override Wins", func(t *testing.T) {
		script := &llmScript{
			analysisText: `{"budget": 500, "categories": ["Smartphones"]}`,
			composeText:  "ok",
		}
		store := &mockStore{summaries: map[string]string{"Smartphones": "NOME: X"}}

		uc := newUseCase(t, script, store)
		out, err := uc.Generate(context.Background(), assistant.GenerateInput{
			Prompt: "celular barato",
			Budget: floatPtr(200),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.DetectedBudget == nil || *out.DetectedBudget != 200 {
			t.Errorf("caller budget must win, got %v", out.DetectedBudget)
		}

		calls := store.summaryCalls()
		if calls[0].maxPrice == nil || *calls[0].maxPrice != 200 {
			t.Errorf("store must be filtered by the effective budget")
		}
	})

	t.Run("Inferred Budget Used When Caller Silent", func(t *testing.T) {
		script := &llmScript{
			analysisText: `{"budget": 350.5, "categories": ["Smartphones"]}`,
			composeText:  "ok",
		}
		store := &mockStore{summaries: map[string]string{"Smartphones": "NOME: X"}}

		uc := newUseCase(t, script, store)
		out, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "celular até 350"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.DetectedBudget == nil || *out.DetectedBudget != 350.5 {
			t.Errorf("expected inferred budget 350.5, got %v", out.DetectedBudget)
		}
	})

	t.Run("Negative Inferred Budget Dropped", func(t *testing.T) {
		script := &llmScript{
			analysisText: `{"budget": -10, "categories": ["Smartphones"]}`,
			composeText:  "ok",
		}
		store := &mockStore{summaries: map[string]string{"Smartphones": "NOME: X"}}

		uc := newUseCase(t, script, store)
		out, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "celular"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.DetectedBudget != nil {
			t.Errorf("negative budgets must be discarded, got %v", *out.DetectedBudget)
		}
	})
}

func TestGenerate_CategoryFiltering(t *testing.T) {
	t.Run("Hallucinated Ids Dropped Silently", func(t *testing.T) {
		script := &llmScript{
			analysisText: `{"budget": null, "categories": ["Laptops", "Headphones", "GamingChairs"]}`,
			composeText:  "ok",
		}
		store := &mockStore{summaries: map[string]string{"Headphones": "NOME: X"}}

		uc := newUseCase(t, script, store)
		out, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "fones"})
		if err != nil {
			t.Fatalf("filtering is policy, not error: %v", err)
		}
		if !reflect.DeepEqual(out.QueriedCategories, []string{"Headphones"}) {
			t.Errorf("expected only catalog members, got %v", out.QueriedCategories)
		}
		if len(store.summaryCalls()) != 1 {
			t.Errorf("store must only see catalog members")
		}
	})

	t.Run("Capped At Five No Dedup", func(t *testing.T) {
		script := &llmScript{
			analysisText: `{"budget": null, "categories": ["Headphones", "Headphones", "Cameras", "Smartphones", "Refrigerators", "Smart Watches", "Air Conditioners"]}`,
			composeText:  "ok",
		}
		store := &mockStore{summaries: map[string]string{
			"Headphones": "NOME: H", "Cameras": "NOME: C", "Smartphones": "NOME: S",
			"Refrigerators": "NOME: R", "Smart Watches": "NOME: W",
		}}

		uc := newUseCase(t, script, store)
		out, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "eletrônicos"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"Headphones", "Headphones", "Cameras", "Smartphones", "Refrigerators"}
		if !reflect.DeepEqual(out.QueriedCategories, want) {
			t.Errorf("expected order-preserved capped list with repeat, got %v", out.QueriedCategories)
		}

		calls := store.summaryCalls()
		if len(calls) != 5 {
			t.Fatalf("expected 5 store lookups, got %d", len(calls))
		}
		if calls[0].category != "Headphones" || calls[1].category != "Headphones" {
			t.Errorf("repeated id must query the store twice")
		}
	})
}

func TestGenerate_NoData(t *testing.T) {
	t.Run("Empty Category List", func(t *testing.T) {
		script := &llmScript{
			analysisText: `{"budget": null, "categories": []}`,
			composeText:  "Não encontramos itens para **notebook gamer**.",
		}
		store := &mockStore{summaries: map[string]string{}}

		uc := newUseCase(t, script, store)
		out, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "notebook gamer"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(store.summaryCalls()) != 0 {
			t.Errorf("store must never be invoked for an empty category list")
		}
		if !strings.Contains(script.lastComposePrompt(), sentinelInGrounding) {
			t.Errorf("compose prompt must carry the no-data sentinel")
		}
		if !strings.Contains(script.lastComposePrompt(), "nossas categorias") {
			t.Errorf("neutral placeholder expected when no category matched")
		}
		if len(out.QueriedCategories) != 0 {
			t.Errorf("expected empty queried categories, got %v", out.QueriedCategories)
		}
	})

	t.Run("Categories Matched But No Products", func(t *testing.T) {
		script := &llmScript{
			analysisText: `{"budget": 5, "categories": ["Headphones"]}`,
			composeText:  "nada",
		}
		store := &mockStore{summaries: map[string]string{}} // summary "" for all

		uc := newUseCase(t, script, store)
		if _, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "fones"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(script.lastComposePrompt(), sentinelInGrounding) {
			t.Errorf("empty summaries must collapse to the sentinel")
		}
		if !strings.Contains(script.lastComposePrompt(), "Fones de Ouvido") {
			t.Errorf("primary display name still comes from the matched category")
		}
	})
}

func TestGenerate_MalformedModelOutput(t *testing.T) {
	cases := []struct {
		name     string
		analysis string
	}{
		{"Not JSON", "desculpe, não entendi o pedido"},
		{"Missing Categories Field", `{"budget": 10}`},
		{"Empty Response", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			script := &llmScript{analysisText: tc.analysis, composeText: "ok"}
			store := &mockStore{}

			uc := newUseCase(t, script, store)
			_, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "fones"})
			if !errors.Is(err, assistant.ErrMalformedModelOutput) {
				t.Fatalf("expected ErrMalformedModelOutput, got %v", err)
			}

			_, composeCalls := script.counts()
			if composeCalls != 0 {
				t.Errorf("pipeline must abort before composition")
			}
			if len(store.summaryCalls()) != 0 {
				t.Errorf("pipeline must abort before store lookups")
			}
		})
	}
}

func TestGenerate_FencedJSONAccepted(t *testing.T) {
	script := &llmScript{
		analysisText: "```json\n{\"budget\": null, \"categories\": [\"Cameras\"]}\n```",
		composeText:  "ok",
	}
	store := &mockStore{summaries: map[string]string{"Cameras": "NOME: C"}}

	uc := newUseCase(t, script, store)
	out, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "câmera"})
	if err != nil {
		t.Fatalf("fenced JSON must still parse: %v", err)
	}
	if !reflect.DeepEqual(out.QueriedCategories, []string{"Cameras"}) {
		t.Errorf("unexpected categories: %v", out.QueriedCategories)
	}
}

func TestGenerate_ModelCallFailure(t *testing.T) {
	script := &llmScript{
		analysisText:   "irrelevant",
		analysisStatus: http.StatusInternalServerError,
	}
	uc := newUseCase(t, script, &mockStore{})

	_, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "fones"})
	if err == nil {
		t.Fatalf("expected failure to propagate")
	}
	if errors.Is(err, assistant.ErrMalformedModelOutput) {
		t.Errorf("transport failures are not contract violations")
	}
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	script := &llmScript{analysisText: "irrelevant", composeText: "irrelevant"}
	uc := newUseCase(t, script, &mockStore{})

	_, err := uc.Generate(context.Background(), assistant.GenerateInput{Prompt: "   "})
	if !errors.Is(err, assistant.ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}

	analysisCalls, _ := script.counts()
	if analysisCalls != 0 {
		t.Errorf("no model call for a blank prompt")
	}
}

func TestListProducts_Passthrough(t *testing.T) {
	store := &mockStore{
		pageFunc: func(category string, page, pageSize int) (product.Page, error) {
			return product.Page{Page: page, PageSize: pageSize, TotalProducts: 1}, nil
		},
	}
	uc := newUseCase(t, &llmScript{}, store)

	page, err := uc.ListProducts(context.Background(), assistant.ProductsInput{
		Category: "Cameras",
		Page:     2,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 2 || page.PageSize != 10 {
		t.Errorf("pagination must pass through, got %+v", page)
	}
}

func TestListCategories(t *testing.T) {
	uc := newUseCase(t, &llmScript{}, &mockStore{})

	first := uc.ListCategories(context.Background())
	second := uc.ListCategories(context.Background())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("catalog listing must be idempotent")
	}
	if first[0].ID != "Air Conditioners" {
		t.Errorf("catalog order must be preserved, got %v", first[0].ID)
	}
}
