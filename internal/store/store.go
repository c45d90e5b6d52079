package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/L8ton-crypto/appian-cheat/internal/embeddings"
)

// ErrUnavailable wraps any failure to execute a query against the store.
var ErrUnavailable = errors.New("document store unavailable")

// Document is one catalog entry as persisted by the ingestion pipeline.
// Content is multi-line text whose first line follows "Name (Category)".
// Embedding is nil for documents not yet embedded; those never participate
// in similarity search.
type Document struct {
	ID           uuid.UUID
	CollectionID uuid.UUID
	Content      string
	Embedding    embeddings.Vector
	CreatedAt    time.Time
}

// Match is one ranked row from a similarity search.
type Match struct {
	Content    string
	Similarity float32
}

// Store defines persistence contract; the search path only ever reads.
type Store interface {
	// Search ranks documents in the collection by cosine similarity to vector,
	// descending, returning at most limit matches. Documents without an
	// embedding are excluded.
	Search(ctx context.Context, collectionID uuid.UUID, vector embeddings.Vector, limit int) ([]Match, error)

	// Upsert stores documents, replacing existing ones by ID. Used by the
	// ingestion process and by tests; never called while serving a search.
	Upsert(ctx context.Context, docs []Document) error

	Close() error
}
