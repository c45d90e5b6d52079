package search

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/L8ton-crypto/appian-cheat/internal/embeddings"
	"github.com/L8ton-crypto/appian-cheat/internal/store"
)

func TestSearchWithText(t *testing.T) {
	collection := uuid.New()
	mockStore := new(store.MockStore)
	mockEmbedder := new(embeddings.MockEmbedder)

	queryVec := embeddings.Vector{1, 0, 0}
	mockEmbedder.On("Embed", mock.Anything, "loop through a list").Return(queryVec, nil).Once()
	mockStore.On("Search", mock.Anything, collection, queryVec, 12).Return([]store.Match{
		{Content: "a!forEach (Looping)\nEvaluates an expression for each item.", Similarity: 0.91},
		{Content: "a!localVariables (Scripting)\nDefines local variables.", Similarity: 0.55},
	}, nil).Once()

	svc := New(mockStore, mockEmbedder, collection, 3)
	results, err := svc.Search(context.Background(), Query{Text: "loop through a list", Limit: 12})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "a!forEach" || results[0].Category != "Looping" {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if results[0].Similarity < results[1].Similarity {
		t.Error("results not in descending similarity order")
	}

	mockStore.AssertExpectations(t)
	mockEmbedder.AssertExpectations(t)
}

func TestSearchWithPrecomputedEmbedding(t *testing.T) {
	collection := uuid.New()
	mockStore := new(store.MockStore)
	mockEmbedder := new(embeddings.MockEmbedder)

	vec := embeddings.Vector{0, 1, 0}
	mockStore.On("Search", mock.Anything, collection, vec, 5).Return([]store.Match{}, nil).Once()

	svc := New(mockStore, mockEmbedder, collection, 3)
	results, err := svc.Search(context.Background(), Query{Embedding: vec, Limit: 5})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}

	// The embedder is never consulted when a vector is supplied.
	mockEmbedder.AssertNotCalled(t, "Embed", mock.Anything, mock.Anything)
	mockStore.AssertExpectations(t)
}

func TestSearchInvalidArguments(t *testing.T) {
	collection := uuid.New()
	svc := New(new(store.MockStore), new(embeddings.MockEmbedder), collection, 3)

	tests := []struct {
		name  string
		query Query
	}{
		{"zero limit", Query{Text: "valid query", Limit: 0}},
		{"negative limit", Query{Text: "valid query", Limit: -4}},
		{"limit above ceiling", Query{Text: "valid query", Limit: MaxLimit + 1}},
		{"no text or embedding", Query{Limit: 12}},
		{"whitespace-only text", Query{Text: "   ", Limit: 12}},
		{"both text and embedding", Query{Text: "q", Embedding: embeddings.Vector{1, 0, 0}, Limit: 12}},
		{"wrong embedding dimension", Query{Embedding: embeddings.Vector{1, 0}, Limit: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), tt.query)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestSearchEmbedFailurePropagates(t *testing.T) {
	collection := uuid.New()
	mockStore := new(store.MockStore)
	mockEmbedder := new(embeddings.MockEmbedder)

	mockEmbedder.On("Embed", mock.Anything, "some query").
		Return(nil, embeddings.ErrModelUnavailable).Once()

	svc := New(mockStore, mockEmbedder, collection, 3)
	_, err := svc.Search(context.Background(), Query{Text: "some query", Limit: 12})
	if !errors.Is(err, embeddings.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
	mockStore.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchStoreFailurePropagates(t *testing.T) {
	collection := uuid.New()
	mockStore := new(store.MockStore)
	mockEmbedder := new(embeddings.MockEmbedder)

	mockEmbedder.On("Embed", mock.Anything, "some query").Return(embeddings.Vector{1, 0, 0}, nil).Once()
	mockStore.On("Search", mock.Anything, collection, mock.Anything, 12).
		Return(nil, store.ErrUnavailable).Once()

	svc := New(mockStore, mockEmbedder, collection, 3)
	_, err := svc.Search(context.Background(), Query{Text: "some query", Limit: 12})
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected store.ErrUnavailable, got %v", err)
	}
}

func TestSearchTruncatesOverlongStoreResponse(t *testing.T) {
	collection := uuid.New()
	mockStore := new(store.MockStore)
	mockEmbedder := new(embeddings.MockEmbedder)

	// A store ignoring the limit must not leak extra rows to the caller.
	mockStore.On("Search", mock.Anything, collection, mock.Anything, 2).Return([]store.Match{
		{Content: "a (X)", Similarity: 0.9},
		{Content: "b (X)", Similarity: 0.8},
		{Content: "c (X)", Similarity: 0.7},
	}, nil).Once()

	svc := New(mockStore, mockEmbedder, collection, 3)
	results, err := svc.Search(context.Background(), Query{Embedding: embeddings.Vector{1, 0, 0}, Limit: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results after truncation, got %d", len(results))
	}
}

// End-to-end ranking over a real in-memory store: the looping document sits
// closest to the query embedding and must surface first, fully parsed.
func TestSearchEndToEnd(t *testing.T) {
	ctx := context.Background()
	collection := uuid.New()

	mem := store.NewMemory()
	err := mem.Upsert(ctx, []store.Document{
		{CollectionID: collection, Content: "a!forEach (Looping)\nEvaluates an expression for each item in a list.", Embedding: embeddings.Normalize(embeddings.Vector{0.9, 0.1, 0})},
		{CollectionID: collection, Content: "todatetime (Conversion)\nConverts a value to datetime.", Embedding: embeddings.Normalize(embeddings.Vector{0, 0.2, 0.9})},
		{CollectionID: collection, Content: "split (Text)\nSplits text by a separator.", Embedding: embeddings.Normalize(embeddings.Vector{0.3, 0.8, 0})},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	mockEmbedder := new(embeddings.MockEmbedder)
	mockEmbedder.On("Embed", mock.Anything, "loop through a list").
		Return(embeddings.Normalize(embeddings.Vector{1, 0, 0}), nil).Once()

	svc := New(mem, mockEmbedder, collection, 3)
	results, err := svc.Search(ctx, Query{Text: "loop through a list", Limit: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "a!forEach" || results[0].Category != "Looping" {
		t.Errorf("expected a!forEach (Looping) first, got %+v", results[0])
	}
	if results[0].Similarity <= results[1].Similarity {
		t.Error("expected strictly descending similarity")
	}
}
