package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/L8ton-crypto/appian-cheat/internal/embeddings"
	"github.com/L8ton-crypto/appian-cheat/internal/store"
)

// ErrInvalidArgument marks caller errors: empty query, bad vector, bad limit.
var ErrInvalidArgument = errors.New("invalid search argument")

const (
	// DefaultLimit matches the number of result cards the catalog page shows.
	DefaultLimit = 12

	// MaxLimit is a defensive ceiling on result sizes.
	MaxLimit = 100
)

// Query is one search request. Exactly one of Text and Embedding must be set;
// Text is embedded first, Embedding is ranked as given.
type Query struct {
	Text      string
	Embedding embeddings.Vector
	Limit     int
}

// Service ranks the fixed document collection against a query.
type Service struct {
	store      store.Store
	embedder   embeddings.Embedder
	collection uuid.UUID
	dim        int
}

// New creates a search service scoped to one collection. dim is the expected
// dimension of caller-supplied embeddings.
func New(st store.Store, embedder embeddings.Embedder, collection uuid.UUID, dim int) *Service {
	return &Service{store: st, embedder: embedder, collection: collection, dim: dim}
}

// Search embeds the query text if needed and returns formatted matches in
// descending similarity order, at most Limit of them.
func (s *Service) Search(ctx context.Context, q Query) ([]Result, error) {
	if q.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, q.Limit)
	}
	if q.Limit > MaxLimit {
		return nil, fmt.Errorf("%w: limit %d exceeds maximum %d", ErrInvalidArgument, q.Limit, MaxLimit)
	}

	vec, err := s.queryVector(ctx, q)
	if err != nil {
		return nil, err
	}

	matches, err := s.store.Search(ctx, s.collection, vec, q.Limit)
	if err != nil {
		return nil, err
	}
	if len(matches) > q.Limit {
		matches = matches[:q.Limit]
	}

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = formatMatch(m)
	}
	return results, nil
}

func (s *Service) queryVector(ctx context.Context, q Query) (embeddings.Vector, error) {
	hasText := strings.TrimSpace(q.Text) != ""
	hasVector := len(q.Embedding) > 0

	switch {
	case hasText && hasVector:
		return nil, fmt.Errorf("%w: provide text or an embedding, not both", ErrInvalidArgument)
	case hasText:
		vec, err := s.embedder.Embed(ctx, q.Text)
		if err != nil {
			return nil, fmt.Errorf("embed query: %w", err)
		}
		return vec, nil
	case hasVector:
		if len(q.Embedding) != s.dim {
			return nil, fmt.Errorf("%w: embedding has %d dimensions, want %d", ErrInvalidArgument, len(q.Embedding), s.dim)
		}
		return q.Embedding, nil
	default:
		return nil, fmt.Errorf("%w: query text or embedding required", ErrInvalidArgument)
	}
}
