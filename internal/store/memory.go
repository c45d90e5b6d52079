package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/L8ton-crypto/appian-cheat/internal/embeddings"
)

// MemoryStore ranks documents by brute-force cosine similarity. It backs the
// "memory" store provider for demos and is the fixture store in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]Document
}

func NewMemory() *MemoryStore {
	return &MemoryStore{docs: make(map[uuid.UUID]Document)}
}

func (s *MemoryStore) Search(ctx context.Context, collectionID uuid.UUID, vector embeddings.Vector, limit int) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []Match
	for _, doc := range s.docs {
		if doc.CollectionID != collectionID || doc.Embedding == nil {
			continue
		}
		matches = append(matches, Match{
			Content:    doc.Content,
			Similarity: embeddings.Cosine(vector, doc.Embedding),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, docs []Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range docs {
		if doc.ID == uuid.Nil {
			doc.ID = uuid.New()
		}
		s.docs[doc.ID] = doc
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
