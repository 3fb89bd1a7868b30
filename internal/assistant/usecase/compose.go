package usecase

import (
	"context"
	"fmt"
	"strconv"

	"smart-search-products/pkg/gemini"
)

// compose runs the grounded response generation stage. The model's
// adherence to the formatting contract is not validated here; the
// caller owns parsing of the [ITEM]/[FILTRO] micro-format.
func (uc *implUseCase) compose(ctx context.Context, query, grounding string, budget *float64, primaryName string) (string, error) {
	budgetInfo := ""
	if budget != nil {
		budgetInfo = fmt.Sprintf(" (com orçamento de até R$ %s)", strconv.FormatFloat(*budget, 'f', -1, 64))
	}

	prompt := fmt.Sprintf(PromptFinalAnswer, query, budgetInfo, grounding, primaryName)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{Temperature: uc.temperature},
	})
	if err != nil {
		return "", fmt.Errorf("response composition call failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("response composition returned no candidates")
	}

	return text, nil
}
