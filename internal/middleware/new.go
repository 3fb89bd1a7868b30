package middleware

import (
	"golang.org/x/time/rate"

	"smart-search-products/config"
	"smart-search-products/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cfg     config.HTTPServerConfig
	limiter *rate.Limiter
}

// New creates the middleware set. The rate limiter is shared across
// requests; the model-backed endpoint is the only consumer.
func New(l log.Logger, cfg config.HTTPServerConfig) Middleware {
	rps := cfg.GenerateRPS
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.GenerateBurst
	if burst <= 0 {
		burst = 10
	}

	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}
