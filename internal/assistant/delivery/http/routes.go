package http

import (
	"github.com/gin-gonic/gin"

	"smart-search-products/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Paths
// are registered at the root, matching the original service contract.
func RegisterRoutes(r *gin.Engine, h *handler, mw middleware.Middleware) {
	r.POST("/generate", mw.RateLimit(), h.Generate)
	r.GET("/categories", h.Categories)
	r.GET("/products/:category", h.Products)
}
