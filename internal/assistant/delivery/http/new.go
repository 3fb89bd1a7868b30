package http

import (
	"smart-search-products/internal/assistant"
	"smart-search-products/pkg/log"
)

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates the HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
