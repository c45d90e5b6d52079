package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration for the catalog service.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Store
	StoreProvider string `env:"STORE_PROVIDER" envDefault:"postgres"` // "postgres" (production) or "memory" (demo/testing)
	DBURL         string `env:"DB_URL"`

	// The documents table is shared with the ingestion pipeline; searches are
	// always scoped to this one collection.
	CollectionID string `env:"COLLECTION_ID" envDefault:"cb1653f2-6b08-42a0-b717-2bdb4151d7b0"`

	// Embeddings
	EmbedderProvider string `env:"EMBEDDER_PROVIDER" envDefault:"ollama"` // "ollama" (local daemon) or "openai" (hosted API)
	OpenAIKey        string `env:"OPENAI_API_KEY"`
	EmbeddingModel   string `env:"EMBEDDING_MODEL"`
	EmbeddingDim     int    `env:"EMBEDDING_DIM" envDefault:"384"`
	OllamaURL        string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`

	// Embedding cache (optional; no-op when REDIS_ADDR is empty)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL" envDefault:"86400"` // seconds

	// Search
	SearchLimit    int `env:"SEARCH_LIMIT" envDefault:"12"`
	SearchMaxLimit int `env:"SEARCH_MAX_LIMIT" envDefault:"100"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
