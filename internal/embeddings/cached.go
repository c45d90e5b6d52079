package embeddings

import (
	"context"
	"log/slog"
	"time"

	"github.com/L8ton-crypto/appian-cheat/internal/cache"
)

// CachedEmbedder memoizes embeddings in a Cache. Cache problems degrade to
// computing the embedding; they never fail the call.
type CachedEmbedder struct {
	inner Embedder
	cache cache.Cache
	model string
	ttl   time.Duration
	log   *slog.Logger
}

// NewCached wraps inner with a cache keyed by model+text.
func NewCached(inner Embedder, c cache.Cache, model string, ttl time.Duration, log *slog.Logger) *CachedEmbedder {
	return &CachedEmbedder{inner: inner, cache: c, model: model, ttl: ttl, log: log}
}

func (e *CachedEmbedder) Embed(ctx context.Context, text string) (Vector, error) {
	key := cache.Key(e.model, text)

	if cached, err := e.cache.GetEmbedding(ctx, key); err != nil {
		e.log.Warn("embedding cache read failed", "err", err)
	} else if cached != nil {
		return Vector(cached), nil
	}

	vec, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := e.cache.SetEmbedding(ctx, key, vec, e.ttl); err != nil {
		e.log.Warn("embedding cache write failed", "err", err)
	}
	return vec, nil
}
