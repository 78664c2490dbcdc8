//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/google/wire"
	"github.com/lk2023060901/repo-ranker/internal/conf"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/lk2023060901/repo-ranker/internal/repository/biz"
	"github.com/lk2023060901/repo-ranker/internal/repository/scoring"
	"github.com/lk2023060901/repo-ranker/internal/repository/service"
	"github.com/lk2023060901/repo-ranker/internal/server"
)

// ProviderSet is the Wire provider set for all dependencies
var ProviderSet = wire.NewSet(
	// Upstream search
	searchProviderSet,

	// Use cases
	useCaseProviderSet,

	// HTTP services
	httpServiceProviderSet,

	// Servers
	serverProviderSet,
)

var searchProviderSet = wire.NewSet(
	provideProviderConfig,
	provideSearchProvider,
)

var useCaseProviderSet = wire.NewSet(
	scoring.NewDefaultEngine,
	biz.NewRepositoryUseCase,
)

var httpServiceProviderSet = wire.NewSet(
	service.NewRepositoryService,
)

var serverProviderSet = wire.NewSet(
	server.NewHTTPServer,
)

// InitializeApp initializes the application with Wire
func InitializeApp(config *conf.Config, log *logger.Logger) (*App, func(), error) {
	wire.Build(ProviderSet, newApp)
	return nil, nil, nil
}
