package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/L8ton-crypto/appian-cheat/internal/embeddings"
)

// MockStore is a mock implementation of Store using testify/mock.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Search(ctx context.Context, collectionID uuid.UUID, vector embeddings.Vector, limit int) ([]Match, error) {
	args := m.Called(ctx, collectionID, vector, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Match), args.Error(1)
}

func (m *MockStore) Upsert(ctx context.Context, docs []Document) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
