// Package app wires configuration, external clients and the HTTP server.
// All client handles are constructed here once and never mutated after
// startup; they are safe for concurrent use across requests.
package app

import (
	"context"
	"fmt"
	"log"

	"servicematch/internal/advice"
	"servicematch/internal/classify"
	"servicematch/internal/config"
	"servicematch/internal/describe"
	"servicematch/internal/handler"
	"servicematch/internal/llm"
	"servicematch/internal/recommend"
	"servicematch/internal/server"
	"servicematch/internal/taxonomy"
)

type App struct {
	server *server.Server
	llm    llm.TextClient
	store  *taxonomy.Store
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GenerateTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	// The taxonomy source is optional at startup: a missing or unreachable
	// database degrades every load to the built-in defaults instead.
	var store *taxonomy.Store
	var source taxonomy.Source
	if cfg.DatabaseURL != "" {
		store, err = taxonomy.NewStore(cfg.DatabaseURL)
		if err != nil {
			log.Printf("taxonomy: store unavailable, serving defaults: %v", err)
		} else {
			source = store
		}
	} else {
		log.Printf("taxonomy: no DATABASE_URL set, serving defaults")
	}
	loader := taxonomy.NewLoader(source, cfg.TaxonomyCacheTTL)

	// Classification pipeline
	primary := classify.NewZeroShot(cfg.HFToken, cfg.ClassifyURL, cfg.ClassifyTimeout)
	fallback := classify.NewFallback(gemini)
	orchestrator := classify.NewOrchestrator(primary, fallback)

	// Generators
	advisor := advice.NewGenerator(gemini)
	describer := describe.NewGenerator(gemini)

	recommender := recommend.New(loader, orchestrator, advisor)

	api := handler.NewAPI(recommender, describer)
	srv := server.New(cfg.Port, server.NewMux(api))

	return &App{
		server: srv,
		llm:    gemini,
		store:  store,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.llm.Close(); err == nil {
		err = cerr
	}
	if cerr := a.store.Close(); err == nil {
		err = cerr
	}
	return err
}
