package injector

import (
	"github.com/lk2023060901/repo-ranker/internal/conf"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/lk2023060901/repo-ranker/internal/repository/biz"
	"github.com/lk2023060901/repo-ranker/internal/repository/provider"
	"github.com/lk2023060901/repo-ranker/internal/repository/types"
	"github.com/lk2023060901/repo-ranker/internal/server"
	"go.uber.org/zap"
)

func provideProviderConfig(config *conf.Config) *types.ProviderConfig {
	return &types.ProviderConfig{
		ID:      types.ProviderGitHub,
		BaseURL: config.GitHub.BaseURL,
		Token:   config.GitHub.Token,
		Timeout: config.GitHub.Timeout,
	}
}

func provideSearchProvider(cfg *types.ProviderConfig, log *logger.Logger) (provider.Provider, error) {
	p, err := provider.NewFactory().Create(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("search provider ready",
		zap.String("provider", string(p.GetID())),
		zap.String("base_url", cfg.BaseURL),
		zap.Bool("authenticated", cfg.Token != ""),
		zap.Duration("timeout", cfg.Timeout),
	)
	return p, nil
}

func newApp(
	config *conf.Config,
	log *logger.Logger,
	httpServer *server.HTTPServer,
	repositories *biz.RepositoryUseCase,
) (*App, func()) {
	cleanup := func() {
		_ = log.Sync()
	}

	return &App{
		Config:       config,
		Logger:       log,
		HTTPServer:   httpServer,
		Repositories: repositories,
		cleanup:      cleanup,
	}, cleanup
}
