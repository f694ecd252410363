package main

import (
	"log"
	"net/http"

	"doctor-assistant/internal/config"
	"doctor-assistant/internal/core"
	httpserver "doctor-assistant/internal/http"
	"doctor-assistant/internal/llm"
	"doctor-assistant/internal/memory"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg.DebugMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	factory := llm.NewFactory(llm.Settings{
		Default:       cfg.Provider,
		GroqAPIKey:    cfg.GroqAPIKey,
		GroqModel:     cfg.GroqModel,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
	})
	// Fail fast on a misconfigured default provider instead of on the
	// first request.
	if _, err := factory.Client(cfg.Provider); err != nil {
		sugar.Fatalw("default provider unusable", "provider", cfg.Provider, "error", err)
	}

	store := memory.NewStore(cfg.RecordTTL, sugar)
	chatService := core.NewChatService(factory, store, core.Options{
		TurnWorkers:         cfg.TurnWorkers,
		ServiceWorkers:      cfg.ServiceWorkers,
		SimilarityThreshold: cfg.SimilarityThreshold,
		SymptomCap:          cfg.SymptomCap,
	}, sugar)

	srv := httpserver.NewServer(chatService, store, sugar)

	addr := ":" + cfg.Port
	sugar.Infow("listening", "addr", addr, "provider", cfg.Provider)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		sugar.Fatalw("server error", "error", err)
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
