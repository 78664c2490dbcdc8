package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/lk2023060901/repo-ranker/internal/conf"
	"github.com/lk2023060901/repo-ranker/internal/pkg/injector"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(&config.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	logger.SetGlobal(log)
	defer logger.Sync()

	logger.Info("config loaded successfully",
		zap.String("addr", config.Server.Addr()),
		zap.String("github_base_url", config.GitHub.BaseURL),
	)

	app, cleanup, err := injector.InitializeApp(config, log)
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
