package assistant

import (
	"context"

	"smart-search-products/internal/catalog"
	"smart-search-products/internal/product"
)

// UseCase is the shopping-assistant application boundary consumed by
// the HTTP delivery layer.
type UseCase interface {
	// Generate runs the full two-stage pipeline: intent analysis,
	// grounding lookups, and final answer composition.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)

	// ListCategories returns the closed catalog in order.
	ListCategories(ctx context.Context) []catalog.Category

	// ListProducts returns one page of a category's product list.
	ListProducts(ctx context.Context, input ProductsInput) (product.Page, error)
}

// ProductStore is the grounding-data interface the pipeline consumes.
// Summary must be deterministic for identical inputs within a process
// lifetime, return "" (not an error) when nothing matches, and never
// exceed limit items.
type ProductStore interface {
	Summary(category string, limit int, maxPrice *float64) string
	PageOf(category string, page, pageSize int) (product.Page, error)
}
