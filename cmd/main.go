package main

import (
	"context"
	"os"

	"github.com/NelCSC/grupo-playlist-app/internal/client"
	"github.com/NelCSC/grupo-playlist-app/internal/playlist"
	"github.com/NelCSC/grupo-playlist-app/internal/search"
	"github.com/NelCSC/grupo-playlist-app/internal/server"
	"github.com/NelCSC/grupo-playlist-app/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var generator server.Generator
	if key := config.Credentials.YouTube.APIKey; key != "" {
		opts := []search.Option{
			search.WithMaxResults(config.Search.MaxResults),
			search.WithRateLimit(config.Search.RateLimit),
		}
		if config.Credentials.YouTube.BaseURL != "" {
			opts = append(opts, search.WithBaseURL(config.Credentials.YouTube.BaseURL))
		}

		builder := playlist.NewQueryBuilder(config.Search.AgeCutoff, config.Search.RegionTerm)
		generator = playlist.NewGenerator(
			search.NewClient(key, opts...),
			playlist.WithQueryBuilder(builder),
			playlist.WithLogger(logger),
		)
	}

	service := client.New(config.Client.ServerURL)

	runner := NewRunner(RunnerOpts{
		Config:    config,
		Generator: generator,
		Service:   service,
		Logger:    logger,
	})

	app := &cli.Command{
		Name:     "grupo",
		Usage:    "Generate and play shared YouTube playlists for groups",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
