package service

import (
	"github.com/gin-gonic/gin"
	apperrors "github.com/lk2023060901/repo-ranker/internal/pkg/errors"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/lk2023060901/repo-ranker/internal/pkg/response"
	"github.com/lk2023060901/repo-ranker/internal/repository/biz"
	"go.uber.org/zap"
)

type RepositoryService struct {
	uc *biz.RepositoryUseCase
}

func NewRepositoryService(uc *biz.RepositoryUseCase) *RepositoryService {
	return &RepositoryService{
		uc: uc,
	}
}

// RegisterRoutes mounts the repository endpoints on r
func (s *RepositoryService) RegisterRoutes(r gin.IRouter) {
	r.GET("/repositories", s.ListRepositories)
}

// ListRepositories handles GET /repositories
func (s *RepositoryService) ListRepositories(c *gin.Context) {
	var params biz.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.ErrBadRequest, "Invalid query parameters."))
		return
	}

	q, err := biz.ParseSearchQuery(params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	logger.DebugContext(ctx, "searching repositories",
		zap.String("language", q.Language),
		zap.Int("page", q.Page),
		zap.Int("per_page", q.PerPage),
	)

	resp, err := s.uc.Search(ctx, q)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, resp)
}
