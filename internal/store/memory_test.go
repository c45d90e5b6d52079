package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/L8ton-crypto/appian-cheat/internal/embeddings"
)

func TestMemorySearchRanking(t *testing.T) {
	ctx := context.Background()
	collection := uuid.New()
	other := uuid.New()

	s := NewMemory()
	err := s.Upsert(ctx, []Document{
		{CollectionID: collection, Content: "a!forEach (Looping)\nIterates over a list.", Embedding: embeddings.Vector{1, 0, 0}},
		{CollectionID: collection, Content: "append (Array)\nAdds a value to the end.", Embedding: embeddings.Vector{0.9, 0.1, 0}},
		{CollectionID: collection, Content: "now (Date & Time)\nCurrent timestamp.", Embedding: embeddings.Vector{0, 0, 1}},
		{CollectionID: collection, Content: "not yet embedded", Embedding: nil},
		{CollectionID: other, Content: "wrong collection (Other)", Embedding: embeddings.Vector{1, 0, 0}},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	query := embeddings.Vector{1, 0, 0}
	matches, err := s.Search(ctx, collection, query, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	// Null-embedding and foreign-collection documents are excluded.
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	// Strictly descending similarity.
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Errorf("matches not in descending order: %f before %f",
				matches[i-1].Similarity, matches[i].Similarity)
		}
	}
	if got := matches[0].Content; got[:9] != "a!forEach" {
		t.Errorf("expected a!forEach first, got %q", got)
	}
}

func TestMemorySearchLimit(t *testing.T) {
	ctx := context.Background()
	collection := uuid.New()

	s := NewMemory()
	for i := 0; i < 5; i++ {
		v := embeddings.Vector{float32(i + 1), 1, 0}
		if err := s.Upsert(ctx, []Document{{CollectionID: collection, Content: "doc", Embedding: v}}); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	matches, err := s.Search(ctx, collection, embeddings.Vector{1, 0, 0}, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("limit=1 returned %d matches", len(matches))
	}

	// Requesting more than available returns all available, not an error.
	matches, err = s.Search(ctx, collection, embeddings.Vector{1, 0, 0}, 50)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 5 {
		t.Errorf("expected all 5 matches, got %d", len(matches))
	}
}

func TestMemorySearchUnnormalizedQuery(t *testing.T) {
	ctx := context.Background()
	collection := uuid.New()

	s := NewMemory()
	if err := s.Upsert(ctx, []Document{
		{CollectionID: collection, Content: "close (Array)", Embedding: embeddings.Vector{1, 0}},
		{CollectionID: collection, Content: "far (Array)", Embedding: embeddings.Vector{0, 1}},
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// Scaling the query must not change the ranking: cosine, not dot product.
	matches, err := s.Search(ctx, collection, embeddings.Vector{100, 1}, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if matches[0].Content != "close (Array)" {
		t.Errorf("expected 'close (Array)' first, got %q", matches[0].Content)
	}
	if matches[0].Similarity > 1.0001 {
		t.Errorf("similarity exceeds 1: %f", matches[0].Similarity)
	}
}

func TestVectorToString(t *testing.T) {
	got := vectorToString(embeddings.Vector{0.5, -1, 2})
	if got != "[0.5,-1,2]" {
		t.Errorf("vectorToString = %q", got)
	}
	if got := vectorToString(nil); got != "[]" {
		t.Errorf("vectorToString(nil) = %q", got)
	}
}
