package provider

import (
	"context"
	"net/http"
	"time"

	"github.com/lk2023060901/repo-ranker/internal/repository/types"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds one upstream call when the config leaves it unset
const DefaultTimeout = 10 * time.Second

// Provider is the capability the ranker needs from an upstream search service
type Provider interface {
	// Search executes one upstream search for q
	Search(ctx context.Context, q *types.SearchQuery) (*types.SearchResult, error)

	// GetID returns the provider ID
	GetID() types.ProviderID
}

// BaseProvider provides common functionality for all providers
type BaseProvider struct {
	config     *types.ProviderConfig
	httpClient *http.Client
}

// NewBaseProvider creates a new base provider. With a token, requests carry
// it as a bearer credential; without one they go out unauthenticated.
func NewBaseProvider(config *types.ProviderConfig) *BaseProvider {
	base := newHTTPClient()

	httpClient := base
	if config.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	return &BaseProvider{
		config:     config,
		httpClient: httpClient,
	}
}

// GetID returns the provider ID
func (b *BaseProvider) GetID() types.ProviderID {
	return b.config.ID
}

// GetHTTPClient returns the HTTP client
func (b *BaseProvider) GetHTTPClient() *http.Client {
	return b.httpClient
}

// Timeout returns the per-call upstream timeout
func (b *BaseProvider) Timeout() time.Duration {
	if b.config.Timeout > 0 {
		return b.config.Timeout
	}
	return DefaultTimeout
}

// Authenticated reports whether requests carry a token
func (b *BaseProvider) Authenticated() bool {
	return b.config.Token != ""
}

// newHTTPClient creates the pooled transport shared by a provider. The
// deadline is applied per call through the context instead of here.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
