package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/openai/openai-go/v3"

	"pdf-summarizer/internal/cache"
	"pdf-summarizer/internal/config"
	"pdf-summarizer/internal/events"
	"pdf-summarizer/internal/extract"
	"pdf-summarizer/internal/llm"
	"pdf-summarizer/internal/logger"
	"pdf-summarizer/internal/store"
)

// Deps bundles the runtime collaborators for the service. Each external
// dependency is an injected handle so handlers can be tested with fakes.
type Deps struct {
	Config    config.Config
	Log       *slog.Logger
	Store     store.Store
	Extractor extract.Extractor
	LLM       llm.Client
	Cache     cache.Cache
	Events    events.Publisher
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	st, err := buildStore(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize store: %w", err)
	}
	llmClient, err := buildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	return Deps{
		Config:    cfg,
		Log:       log,
		Store:     st,
		Extractor: extract.NewPDFExtractor(),
		LLM:       llmClient,
		Cache:     buildCache(cfg, log),
		Events:    buildEvents(cfg, log),
	}, nil
}

func buildStore(cfg config.Config, log *slog.Logger) (store.Store, error) {
	switch cfg.StoreProvider {
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required when STORE_PROVIDER=postgres")
		}
		db, err := store.NewPostgres(cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
		}
		log.Info("using Postgres store")
		return db, nil
	default:
		return nil, fmt.Errorf("invalid STORE_PROVIDER: %s (valid option: postgres)", cfg.StoreProvider)
	}
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel), cfg.LLMTemperature, cfg.LLMMaxTokens)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI LLM client", "model", cfg.LLMModel)
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid option: openai)", cfg.LLMProvider)
	}
}

// buildCache falls back to a no-op cache when Redis is unavailable; the
// service works without it, every listing just hits the store.
func buildCache(cfg config.Config, log *slog.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewNoOpCache()
	}
	c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn("redis unavailable, running without listing cache", "err", err)
		return cache.NewNoOpCache()
	}
	log.Info("using Redis listing cache", "addr", cfg.RedisAddr)
	return c
}

// buildEvents falls back to a no-op publisher when NATS is unavailable.
func buildEvents(cfg config.Config, log *slog.Logger) events.Publisher {
	if cfg.NATSURL == "" {
		return events.NewNoOpPublisher()
	}
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		log.Warn("nats unavailable, running without lifecycle events", "err", err)
		return events.NewNoOpPublisher()
	}
	log.Info("using NATS event publisher")
	return events.NewNATS(log, nc)
}
