package biz

import (
	"context"
	"errors"
	"sort"
	"time"

	apperrors "github.com/lk2023060901/repo-ranker/internal/pkg/errors"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/lk2023060901/repo-ranker/internal/repository/provider"
	"github.com/lk2023060901/repo-ranker/internal/repository/scoring"
	"github.com/lk2023060901/repo-ranker/internal/repository/types"
	"go.uber.org/zap"
)

// RepositoryUseCase fetches one page of upstream results and ranks it
type RepositoryUseCase struct {
	provider provider.Provider
	engine   *scoring.Engine
	logger   *logger.Logger
	now      func() time.Time
}

func NewRepositoryUseCase(p provider.Provider, engine *scoring.Engine, log *logger.Logger) *RepositoryUseCase {
	return &RepositoryUseCase{
		provider: p,
		engine:   engine,
		logger:   log.Named("repository"),
		now:      time.Now,
	}
}

// WithClock replaces the time source used as the scoring reference
func (uc *RepositoryUseCase) WithClock(now func() time.Time) *RepositoryUseCase {
	uc.now = now
	return uc
}

// Search ranks one upstream page. Results are ordered by score, highest
// first; equal scores keep their upstream order.
func (uc *RepositoryUseCase) Search(ctx context.Context, q *types.SearchQuery) (*types.SearchResponse, error) {
	result, err := uc.provider.Search(ctx, q)
	if err != nil {
		if errors.Is(err, types.ErrProviderTimeout) {
			return nil, apperrors.Wrap(err, apperrors.ErrUpstreamTimeout)
		}
		return nil, apperrors.NewUpstreamError(err)
	}
	if result == nil {
		result = &types.SearchResult{}
	}

	now := uc.now()
	ranked := make([]*types.RankedResult, 0, len(result.Items))
	for _, item := range result.Items {
		ranked = append(ranked, uc.rank(item, now, q.Explain))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	uc.logger.WithContext(ctx).Debug("ranked search results",
		zap.String("provider", string(uc.provider.GetID())),
		zap.Int("total", result.TotalCount),
		zap.Int("returned", len(ranked)),
		zap.Int("page", q.Page),
	)

	return &types.SearchResponse{
		Meta: types.Meta{
			Total:   result.TotalCount,
			Page:    q.Page,
			PerPage: q.PerPage,
		},
		Data: ranked,
	}, nil
}

func (uc *RepositoryUseCase) rank(item *types.Repository, now time.Time, explain bool) *types.RankedResult {
	r := &types.RankedResult{
		Name:      item.Name,
		FullName:  item.FullName,
		Stars:     item.Stars,
		Forks:     item.Forks,
		UpdatedAt: item.UpdatedAt,
		URL:       item.HTMLURL,
	}

	if explain {
		b := uc.engine.Explain(item.ScoreInput(), now)
		r.Score = b.Final
		r.Signals = b.Contributions
	} else {
		r.Score = uc.engine.Score(item.ScoreInput(), now)
	}

	return r
}
