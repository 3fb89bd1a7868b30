package usecase

import (
	"context"
	"strings"

	"smart-search-products/internal/assistant"
	"smart-search-products/internal/catalog"
	"smart-search-products/internal/product"
)

// Generate runs the full pipeline: intent analysis, grounding lookups
// against the product store, and final answer composition. Stateless;
// every invocation is independent.
func (uc *implUseCase) Generate(ctx context.Context, input assistant.GenerateInput) (assistant.GenerateOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return assistant.GenerateOutput{}, assistant.ErrEmptyPrompt
	}

	analysis, err := uc.analyze(ctx, input.Prompt)
	if err != nil {
		return assistant.GenerateOutput{}, err
	}

	// Caller-supplied budget always wins over the inferred one.
	effectiveBudget := input.Budget
	if effectiveBudget == nil {
		effectiveBudget = analysis.Budget
	}

	// Order preserved, no dedup: a repeated id queries the store twice.
	relevant := analysis.Categories
	if len(relevant) > MaxQueriedCategories {
		relevant = relevant[:MaxQueriedCategories]
	}

	var grounding strings.Builder
	for _, id := range relevant {
		summary := uc.store.Summary(id, SummaryItemLimit, effectiveBudget)
		if summary == "" {
			continue
		}
		grounding.WriteString(summary)
		grounding.WriteString("\n")
	}

	groundingText := grounding.String()
	if strings.TrimSpace(groundingText) == "" {
		groundingText = NoDataSentinel
	}

	primaryName := catalog.DefaultPrimaryName
	if len(relevant) > 0 {
		primaryName = uc.catalog.Translate(relevant[0])
	}

	uc.l.Infof(ctx, "generate: query=%q categories=%v budget=%v", input.Prompt, relevant, effectiveBudget)

	text, err := uc.compose(ctx, input.Prompt, groundingText, effectiveBudget, primaryName)
	if err != nil {
		return assistant.GenerateOutput{}, err
	}

	return assistant.GenerateOutput{
		Response:          text,
		DetectedBudget:    effectiveBudget,
		QueriedCategories: relevant,
	}, nil
}

// ListCategories returns the closed catalog in order.
func (uc *implUseCase) ListCategories(ctx context.Context) []catalog.Category {
	return uc.catalog.All()
}

// ListProducts returns one page of a category's product list.
func (uc *implUseCase) ListProducts(ctx context.Context, input assistant.ProductsInput) (product.Page, error) {
	return uc.store.PageOf(input.Category, input.Page, input.PageSize)
}
