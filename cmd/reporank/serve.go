package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/lk2023060901/repo-ranker/internal/conf"
	"github.com/lk2023060901/repo-ranker/internal/pkg/injector"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/urfave/cli/v3"
)

// ServeCommand runs the HTTP API
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "Listen port, overrides config and PORT",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			config, err := conf.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if port := c.Int("port"); port > 0 {
				config.Server.Port = port
			}

			log, err := newLogger(config, c.Bool("debug"))
			if err != nil {
				return err
			}
			defer log.Sync()
			logger.SetGlobal(log)

			app, cleanup, err := injector.InitializeApp(config, log)
			if err != nil {
				return fmt.Errorf("initializing app: %w", err)
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx)
		},
	}
}

func newLogger(config *conf.Config, debug bool) (*logger.Logger, error) {
	if debug {
		return logger.Development()
	}
	log, err := logger.New(&config.Log)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return log, nil
}
