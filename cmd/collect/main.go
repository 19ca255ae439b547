package main

import (
	"cmp"
	"context"
	"log/slog"
	"os"
	"time"

	"ainews/app/cfg"
	"ainews/app/collector"
	"ainews/app/database"
	"ainews/app/feed"
	"ainews/app/llm"
)

func main() {
	opts, err := cfg.ParseCollectOpts()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if opts == nil {
		// Help was shown
		return
	}

	cfg.SetupLogging(opts.Debug)
	slog.Info("Starting collector", "version", cfg.GetVersion())

	var enricher collector.Enricher
	if opts.SkipLLM {
		slog.Info("Enrichment disabled via --skip-llm")
	} else {
		client, err := llm.New(llm.Options{
			APIKey:      opts.APIKey,
			Model:       opts.Model,
			Temperature: opts.Temperature,
			Language:    opts.Language,
		})
		if err != nil {
			slog.Error("Failed to configure enrichment client", "error", err)
			os.Exit(1)
		}
		enricher = client
	}

	db, err := database.Open(opts.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", opts.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var extractor *feed.ContentExtractor
	if opts.Extract {
		extractor = feed.NewContentExtractor()
	}

	fetcher := feed.NewFetcher(opts.UserAgent, time.Duration(opts.Timeout)*time.Second)
	c := collector.New(fetcher, feed.NewParser(), database.NewArticleRepository(db),
		enricher, extractor)

	sources := []collector.Source{
		{URL: cmp.Or(opts.Args.FeedURL, cfg.DefaultFeedURL)},
	}
	if opts.Sources != "" {
		sources, err = collector.LoadSources(opts.Sources)
		if err != nil {
			slog.Error("Failed to load sources file", "path", opts.Sources, "error", err)
			os.Exit(1)
		}
		slog.Info("Loaded sources file", "path", opts.Sources, "feeds", len(sources))
	}

	ctx := context.Background()
	total := 0
	remaining := opts.Limit

	for _, source := range sources {
		count, err := c.Run(ctx, source.URL, remaining, opts.DryRun)
		if err != nil {
			slog.Error("Collector run failed", "feed", source.URL, "error", err)
			os.Exit(1)
		}
		total += count

		if opts.Limit > 0 {
			remaining -= count
			if remaining <= 0 {
				break
			}
		}
	}

	slog.Info("Processed new articles", "count", total)
}
