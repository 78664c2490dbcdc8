package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v73/github"
	"github.com/lk2023060901/repo-ranker/internal/repository/types"
)

// GitHubProvider searches repositories through the GitHub REST API
type GitHubProvider struct {
	*BaseProvider
	client *github.Client
}

// NewGitHubProvider creates a new GitHub provider
func NewGitHubProvider(config *types.ProviderConfig) (Provider, error) {
	base := NewBaseProvider(config)
	client := github.NewClient(base.GetHTTPClient())

	if config.BaseURL != "" {
		baseURL := config.BaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL: %w", err)
		}
		client.BaseURL = u
	}

	return &GitHubProvider{
		BaseProvider: base,
		client:       client,
	}, nil
}

// Search runs one search request against /search/repositories
func (p *GitHubProvider) Search(ctx context.Context, q *types.SearchQuery) (*types.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout())
	defer cancel()

	page, perPage := q.Page, q.PerPage
	if page <= 0 {
		page = types.DefaultPage
	}
	if perPage <= 0 {
		perPage = types.DefaultPerPage
	}

	opts := &github.SearchOptions{
		Sort:  sortOrDefault(q.Sort),
		Order: orderOrDefault(q.Order),
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	}

	result, resp, err := p.client.Search.Repositories(ctx, BuildQuery(q), opts)
	if err != nil {
		return nil, p.wrapError(resp, err)
	}

	items := make([]*types.Repository, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		if repo == nil {
			continue
		}
		items = append(items, toRepository(repo))
	}

	return &types.SearchResult{
		TotalCount: result.GetTotal(),
		Items:      items,
	}, nil
}

func (p *GitHubProvider) wrapError(resp *github.Response, err error) error {
	providerErr := &types.ProviderError{
		Provider: p.GetID(),
		Message:  "search request failed",
		Err:      err,
	}

	if resp != nil && resp.Response != nil {
		providerErr.StatusCode = resp.StatusCode
	}

	var errResp *github.ErrorResponse
	var rateErr *github.RateLimitError
	switch {
	case errors.As(err, &rateErr):
		providerErr.Message = rateErr.Message
	case errors.As(err, &errResp):
		providerErr.Message = errResp.Message
	case errors.Is(err, context.DeadlineExceeded):
		providerErr.Message = "search request timed out"
		providerErr.Err = fmt.Errorf("%w: %w", types.ErrProviderTimeout, err)
	}

	return providerErr
}

func toRepository(repo *github.Repository) *types.Repository {
	return &types.Repository{
		Name:      repo.GetName(),
		FullName:  repo.GetFullName(),
		Stars:     repo.GetStargazersCount(),
		Forks:     repo.GetForksCount(),
		UpdatedAt: repo.GetUpdatedAt().Time,
		HTMLURL:   repo.GetHTMLURL(),
	}
}
