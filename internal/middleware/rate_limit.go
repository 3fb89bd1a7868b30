package middleware

import (
	"github.com/gin-gonic/gin"

	"smart-search-products/pkg/response"
)

// RateLimit bounds the model-backed endpoint with a token bucket.
// Every request behind it costs two upstream model calls, so the
// limit protects the Gemini quota, not the server itself.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			response.TooManyRequests(c, "too many generation requests, retry shortly")
			c.Abort()
			return
		}
		c.Next()
	}
}
