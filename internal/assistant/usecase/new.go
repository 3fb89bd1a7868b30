package usecase

import (
	"smart-search-products/internal/assistant"
	"smart-search-products/internal/catalog"
	"smart-search-products/pkg/gemini"
	pkgLog "smart-search-products/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	llm         *gemini.Client
	catalog     *catalog.Catalog
	store       assistant.ProductStore
	temperature float64
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the shopping-assistant use case.
func New(
	l pkgLog.Logger,
	llm *gemini.Client,
	cat *catalog.Catalog,
	store assistant.ProductStore,
	temperature float64,
) *implUseCase {
	return &implUseCase{
		l:           l,
		llm:         llm,
		catalog:     cat,
		store:       store,
		temperature: temperature,
	}
}
