package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache memoizes embedding vectors. An embedding of a fixed string never
// changes for a given model, so entries are safe to share across processes.
type Cache interface {
	// GetEmbedding retrieves a cached vector by key.
	// Returns nil, nil on a miss.
	GetEmbedding(ctx context.Context, key string) ([]float32, error)

	// SetEmbedding stores a vector with TTL.
	SetEmbedding(ctx context.Context, key string, vec []float32, ttl time.Duration) error

	// Close closes the cache connection.
	Close() error
}

// Key derives a stable cache key from the model name and input text.
func Key(model, text string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
