package embeddings

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Provider is a lazy Embedder. The underlying backend (a local model daemon or
// a hosted inference API) is acquired on first use, at most once per process:
// concurrent callers arriving during acquisition all join the same in-flight
// attempt instead of starting their own. A failed acquisition is not cached,
// so a later call may try again.
type Provider struct {
	dim        int
	newBackend func(ctx context.Context) (Embedder, error)

	group   singleflight.Group
	mu      sync.RWMutex
	backend Embedder
}

// NewProvider wraps a backend constructor. dim is the expected vector
// dimension; a backend returning any other length is treated as an inference
// failure.
func NewProvider(dim int, newBackend func(ctx context.Context) (Embedder, error)) *Provider {
	return &Provider{dim: dim, newBackend: newBackend}
}

// Embed acquires the backend if needed, embeds text, and returns a
// unit-normalized vector.
func (p *Provider) Embed(ctx context.Context, text string) (Vector, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInference)
	}

	backend, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}

	vec, err := backend.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	if len(vec) != p.dim {
		return nil, fmt.Errorf("%w: got %d dimensions, want %d", ErrInference, len(vec), p.dim)
	}
	if Norm(vec) == 0 {
		return nil, fmt.Errorf("%w: zero vector", ErrInference)
	}
	return Normalize(vec), nil
}

func (p *Provider) acquire(ctx context.Context) (Embedder, error) {
	p.mu.RLock()
	backend := p.backend
	p.mu.RUnlock()
	if backend != nil {
		return backend, nil
	}

	v, err, _ := p.group.Do("acquire", func() (any, error) {
		be, err := p.newBackend(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
		p.mu.Lock()
		p.backend = be
		p.mu.Unlock()
		return be, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Embedder), nil
}
