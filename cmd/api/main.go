package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"smart-search-products/config"
	_ "smart-search-products/docs" // Swagger docs
	assistantUC "smart-search-products/internal/assistant/usecase"
	"smart-search-products/internal/catalog"
	"smart-search-products/internal/httpserver"
	"smart-search-products/internal/middleware"
	"smart-search-products/internal/product"
	"smart-search-products/pkg/gemini"
	"smart-search-products/pkg/log"
)

// @title       Smart Search Products API
// @description Assistente de compras inteligente.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration (.env first, mirrors the original deployment)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Search Products...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Category catalog + product dataset (immutable after startup)
	cat := catalog.New()

	ids := make([]string, 0, len(cat.All()))
	for _, c := range cat.All() {
		ids = append(ids, c.ID)
	}
	byCat, err := product.Load(logger, cfg.Dataset.Dir, ids)
	if err != nil {
		logger.Errorf(ctx, "Failed to load dataset: %v", err)
		return
	}
	store := product.New(logger, byCat)

	// 4. Gemini LLM client
	llm := gemini.NewClient(cfg.Gemini.APIKey)
	llm.SetModel(cfg.Gemini.Model)

	// 5. Assistant use case
	uc := assistantUC.New(logger, llm, cat, store, cfg.Gemini.Temperature)

	// 6. HTTP server
	mw := middleware.New(logger, cfg.HTTPServer)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		AssistantUC: uc,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
