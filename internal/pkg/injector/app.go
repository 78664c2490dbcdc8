package injector

import (
	"context"
	"time"

	"github.com/lk2023060901/repo-ranker/internal/conf"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/lk2023060901/repo-ranker/internal/repository/biz"
	"github.com/lk2023060901/repo-ranker/internal/server"
	"go.uber.org/zap"
)

// App encapsulates all application dependencies
type App struct {
	Config       *conf.Config
	Logger       *logger.Logger
	HTTPServer   *server.HTTPServer
	Repositories *biz.RepositoryUseCase
	cleanup      func()
}

// Cleanup releases all resources
func (a *App) Cleanup() {
	if a.cleanup != nil {
		a.cleanup()
	}
}

// ShutdownTimeout bounds graceful shutdown of the HTTP server
const ShutdownTimeout = 5 * time.Second

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.HTTPServer.Start()
	}()

	a.Logger.Info("server started", zap.String("addr", a.HTTPServer.Addr()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := a.HTTPServer.Stop(shutdownCtx); err != nil {
		a.Logger.Error("HTTP server forced to shutdown", zap.Error(err))
		return err
	}

	a.Logger.Info("server exited")
	return nil
}
