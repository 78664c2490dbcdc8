package provider

import (
	"context"
	"sync"

	"github.com/lk2023060901/repo-ranker/internal/repository/types"
)

// MockProvider is an in-memory Provider for tests and local runs
type MockProvider struct {
	mu      sync.Mutex
	SearchF func(ctx context.Context, q *types.SearchQuery) (*types.SearchResult, error)
	Queries []*types.SearchQuery
}

// NewMockProvider returns a provider that always answers with result
func NewMockProvider(result *types.SearchResult) *MockProvider {
	return &MockProvider{
		SearchF: func(context.Context, *types.SearchQuery) (*types.SearchResult, error) {
			return result, nil
		},
	}
}

// NewFailingProvider returns a provider that always fails with err
func NewFailingProvider(err error) *MockProvider {
	return &MockProvider{
		SearchF: func(context.Context, *types.SearchQuery) (*types.SearchResult, error) {
			return nil, err
		},
	}
}

func (m *MockProvider) Search(ctx context.Context, q *types.SearchQuery) (*types.SearchResult, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, q)
	m.mu.Unlock()
	return m.SearchF(ctx, q)
}

func (m *MockProvider) GetID() types.ProviderID {
	return "mock"
}

// Calls returns the number of searches made
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}
