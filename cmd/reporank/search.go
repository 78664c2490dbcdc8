package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lk2023060901/repo-ranker/internal/conf"
	"github.com/lk2023060901/repo-ranker/internal/pkg/injector"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/lk2023060901/repo-ranker/internal/repository/biz"
	"github.com/urfave/cli/v3"
)

// SearchCommand runs one ranked search and prints the response as JSON
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Run a ranked search and print the result",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "language",
				Usage: "Restrict to a programming language",
			},
			&cli.StringFlag{
				Name:  "created-after",
				Usage: "Only repositories created on or after this date",
			},
			&cli.StringFlag{
				Name:  "page",
				Usage: "Page number",
			},
			&cli.StringFlag{
				Name:  "per-page",
				Usage: "Results per page (max 100)",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Upstream sort field",
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "Upstream sort order, asc or desc",
			},
			&cli.BoolFlag{
				Name:  "explain",
				Usage: "Include per-signal contributions",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			params := biz.SearchParams{
				Language:     c.String("language"),
				CreatedAfter: c.String("created-after"),
				Page:         c.String("page"),
				PerPage:      c.String("per-page"),
				Sort:         c.String("sort"),
				Order:        c.String("order"),
			}
			if c.Bool("explain") {
				params.Explain = "true"
			}
			return searchRepositories(ctx, c.String("config"), c.Bool("debug"), params)
		},
	}
}

func searchRepositories(ctx context.Context, configPath string, debug bool, params biz.SearchParams) error {
	config, err := conf.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	q, err := biz.ParseSearchQuery(params)
	if err != nil {
		return err
	}

	log := logger.NewNop()
	if debug {
		if log, err = logger.Development(); err != nil {
			return err
		}
	}

	app, cleanup, err := injector.InitializeApp(config, log)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}
	defer cleanup()

	resp, err := app.Repositories.Search(ctx, q)
	if err != nil {
		return fmt.Errorf("searching repositories: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
