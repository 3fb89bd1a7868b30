package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smart-search-products/internal/assistant"
	"smart-search-products/pkg/gemini"
)

// analysisShape is the strict two-field contract requested from the
// model. Pointers distinguish "field absent" from legitimate nulls.
type analysisShape struct {
	Budget     *float64  `json:"budget"`
	Categories *[]string `json:"categories"`
}

// analyze runs the intent analysis stage: one model call with a
// constrained-output contract, strict parsing, then catalog filtering.
func (uc *implUseCase) analyze(ctx context.Context, query string) (assistant.AnalysisResult, error) {
	prompt := fmt.Sprintf(PromptIntentAnalysis, query, uc.catalog.PromptList())

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{Temperature: uc.temperature},
	})
	if err != nil {
		return assistant.AnalysisResult{}, fmt.Errorf("intent analysis call failed: %w", err)
	}

	raw := stripMarkdownFences(resp.Text())
	if raw == "" {
		return assistant.AnalysisResult{}, fmt.Errorf("%w: empty model response", assistant.ErrMalformedModelOutput)
	}

	var shape analysisShape
	if err := json.Unmarshal([]byte(raw), &shape); err != nil {
		return assistant.AnalysisResult{}, fmt.Errorf("%w: %v", assistant.ErrMalformedModelOutput, err)
	}
	if shape.Categories == nil {
		return assistant.AnalysisResult{}, fmt.Errorf("%w: missing categories field", assistant.ErrMalformedModelOutput)
	}

	result := assistant.AnalysisResult{Budget: shape.Budget}
	if shape.Budget != nil && *shape.Budget < 0 {
		result.Budget = nil
	}

	// The model may hallucinate ids; filtering is policy, not error.
	for _, id := range *shape.Categories {
		if uc.catalog.Contains(id) {
			result.Categories = append(result.Categories, id)
		} else {
			uc.l.Warnf(ctx, "analyze: dropping unknown category %q", id)
		}
	}

	return result, nil
}

// stripMarkdownFences removes a ```json ... ``` wrapper when the model
// ignores the raw-JSON instruction.
func stripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
