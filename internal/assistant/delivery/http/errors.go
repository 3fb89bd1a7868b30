package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-search-products/internal/assistant"
	"smart-search-products/internal/product"
	"smart-search-products/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
// Anything unrecognized collapses to a single server-fault response
// with the underlying message surfaced as the detail.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrCategoryNotFound):
		response.NotFound(c, "Categoria não encontrada")
	case errors.Is(err, assistant.ErrEmptyPrompt):
		response.BadRequest(c, err)
	default:
		response.InternalError(c, err)
	}
}
