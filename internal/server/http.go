package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/repo-ranker/internal/conf"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/lk2023060901/repo-ranker/internal/pkg/response"
	"github.com/lk2023060901/repo-ranker/internal/repository/service"
	"go.uber.org/zap"
)

type HTTPServer struct {
	server      *http.Server
	router      *gin.Engine
	logger      *logger.Logger
	repoService *service.RepositoryService
}

func NewHTTPServer(
	config *conf.Config,
	log *logger.Logger,
	repoService *service.RepositoryService,
) *HTTPServer {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(logger.GinRecovery(log))
	router.Use(logger.GinLoggerWithConfig(log, logger.MiddlewareOptions{
		SkipPaths: []string{"/health"},
	}))
	router.Use(response.ErrorHandler(log))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})

	repoService.RegisterRoutes(router)

	return &HTTPServer{
		server: &http.Server{
			Addr:              config.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		router:      router,
		logger:      log,
		repoService: repoService,
	}
}

// Handler returns the root handler, for use with httptest
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address
func (s *HTTPServer) Addr() string {
	return s.server.Addr
}

func (s *HTTPServer) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	return s.server.Shutdown(ctx)
}
