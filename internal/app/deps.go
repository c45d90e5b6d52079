package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"github.com/L8ton-crypto/appian-cheat/internal/cache"
	"github.com/L8ton-crypto/appian-cheat/internal/config"
	"github.com/L8ton-crypto/appian-cheat/internal/embeddings"
	"github.com/L8ton-crypto/appian-cheat/internal/logger"
	"github.com/L8ton-crypto/appian-cheat/internal/search"
	"github.com/L8ton-crypto/appian-cheat/internal/store"
)

// Deps bundles common runtime dependencies for the service.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Store    store.Store
	Cache    cache.Cache
	Embedder embeddings.Embedder
	Search   *search.Service
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	collection, err := uuid.Parse(cfg.CollectionID)
	if err != nil {
		return Deps{}, fmt.Errorf("invalid COLLECTION_ID: %w", err)
	}

	st, err := buildStore(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize store: %w", err)
	}
	c := buildCache(cfg, log)
	embedder, err := buildEmbedder(cfg, c, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize embedder: %w", err)
	}

	return Deps{
		Config:   cfg,
		Log:      log,
		Store:    st,
		Cache:    c,
		Embedder: embedder,
		Search:   search.New(st, embedder, collection, cfg.EmbeddingDim),
	}, nil
}

func buildStore(cfg config.Config, log *slog.Logger) (store.Store, error) {
	switch cfg.StoreProvider {
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required when STORE_PROVIDER=postgres")
		}
		db, err := store.NewPostgres(cfg.DBURL, cfg.EmbeddingDim)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
		}
		log.Info("using Postgres store")
		return db, nil
	case "memory":
		log.Info("using in-memory store")
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("invalid STORE_PROVIDER: %s (valid options: postgres, memory)", cfg.StoreProvider)
	}
}

func buildCache(cfg config.Config, log *slog.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewNoOpCache()
	}
	c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		// Caching is best-effort; the service works without it.
		log.Warn("redis unavailable, embedding cache disabled", "err", err)
		return cache.NewNoOpCache()
	}
	log.Info("using Redis embedding cache", "addr", cfg.RedisAddr)
	return c
}

func buildEmbedder(cfg config.Config, c cache.Cache, log *slog.Logger) (embeddings.Embedder, error) {
	var (
		model      string
		newBackend func(ctx context.Context) (embeddings.Embedder, error)
	)

	switch cfg.EmbedderProvider {
	case "ollama":
		model = cfg.EmbeddingModel
		if model == "" {
			model = embeddings.DefaultOllamaModel
		}
		newBackend = func(ctx context.Context) (embeddings.Embedder, error) {
			return embeddings.NewOllamaEmbedder(ctx, cfg.OllamaURL, model)
		}
		log.Info("using Ollama embedder", "model", model, "url", cfg.OllamaURL)
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when EMBEDDER_PROVIDER=openai")
		}
		model = cfg.EmbeddingModel
		if model == "" {
			model = string(openai.EmbeddingModelTextEmbedding3Small)
		}
		newBackend = func(ctx context.Context) (embeddings.Embedder, error) {
			return embeddings.NewOpenAIEmbedder(cfg.OpenAIKey, openai.EmbeddingModel(model), cfg.EmbeddingDim)
		}
		log.Info("using OpenAI embedder", "model", model)
	default:
		return nil, fmt.Errorf("invalid EMBEDDER_PROVIDER: %s (valid options: ollama, openai)", cfg.EmbedderProvider)
	}

	provider := embeddings.NewProvider(cfg.EmbeddingDim, newBackend)
	ttl := time.Duration(cfg.CacheTTL) * time.Second
	return embeddings.NewCached(provider, c, model, ttl, log), nil
}
