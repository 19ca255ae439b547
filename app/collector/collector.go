// Package collector implements the feed ingestion workflow: fetch,
// normalize, dedup by link, optionally enrich, persist.
package collector

import (
	"context"
	"fmt"
	"log/slog"

	"ainews/app/database"
	"ainews/app/feed"
)

// Enricher produces a translated, condensed summary for an entry.
// A nil Enricher disables the enrichment step entirely.
type Enricher interface {
	TranslateAndSummarise(ctx context.Context, title, summary, link string) (string, error)
}

type Collector struct {
	fetcher   *feed.Fetcher
	parser    *feed.Parser
	repo      database.ArticleRepository
	enricher  Enricher
	extractor *feed.ContentExtractor
}

// New constructs a collector. enricher may be nil (enrichment disabled);
// extractor may be nil (no page-content fallback).
func New(fetcher *feed.Fetcher, parser *feed.Parser, repo database.ArticleRepository,
	enricher Enricher, extractor *feed.ContentExtractor) *Collector {
	return &Collector{
		fetcher:   fetcher,
		parser:    parser,
		repo:      repo,
		enricher:  enricher,
		extractor: extractor,
	}
}

// Run fetches the feed and processes its entries in feed order, returning
// the number of newly processed entries. A limit of zero or less means no
// limit. In dry-run mode everything happens except the final write.
//
// Fetch, parse, store and enrichment errors abort the run; per-entry skips
// (empty link, already stored) are logged and excluded from the count.
func (c *Collector) Run(ctx context.Context, feedURL string, limit int, dryRun bool) (int, error) {
	slog.Info("Fetching feed", "url", feedURL)

	data, err := c.fetcher.Run(ctx, feedURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch feed: %w", err)
	}

	metadata, entries, err := c.parser.Run(data)
	if err != nil {
		return 0, fmt.Errorf("failed to parse feed: %w", err)
	}

	slog.Info("Feed parsed", "title", metadata.Title, "entries", len(entries))

	count := 0
	for _, entry := range entries {
		if limit > 0 && count >= limit {
			break
		}

		if entry.Link == "" {
			slog.Debug("Skipping entry without link", "title", entry.Title)
			continue
		}

		exists, err := c.repo.Exists(entry.Link)
		if err != nil {
			return count, fmt.Errorf("failed to check article existence: %w", err)
		}
		if exists {
			slog.Debug("Skipping existing article", "link", entry.Link)
			continue
		}

		var translatedSummary *string
		if c.enricher != nil {
			slog.Info("Translating article", "title", entry.Title)
			translated, err := c.enricher.TranslateAndSummarise(ctx,
				entry.Title, c.enrichmentInput(ctx, entry), entry.Link)
			if err != nil {
				return count, fmt.Errorf("failed to translate article %q: %w", entry.Link, err)
			}
			translatedSummary = &translated
		} else {
			slog.Info("Enrichment disabled; skipping translation", "title", entry.Title)
		}

		if dryRun {
			slog.Info("Dry run: would store article", "title", entry.Title)
			count++
			continue
		}

		published := entry.Published
		if published == nil {
			published = entry.Updated
		}

		err = c.repo.Insert(database.NewArticle{
			Title:             entry.Title,
			Link:              entry.Link,
			PublishedAt:       published,
			Source:            entry.SourceTitle,
			OriginalSummary:   entry.Summary,
			TranslatedSummary: translatedSummary,
		})
		if err != nil {
			return count, fmt.Errorf("failed to store article %q: %w", entry.Link, err)
		}

		slog.Debug("Stored article", "link", entry.Link)
		count++
	}

	return count, nil
}

// enrichmentInput builds the summary text handed to the enricher. When the
// entry carries neither summary nor content and an extractor is configured,
// the linked page is fetched and its readable text used instead. Extraction
// failures are not fatal; the enricher tolerates an empty summary.
func (c *Collector) enrichmentInput(ctx context.Context, entry feed.Entry) string {
	text := entry.SummaryText()
	if text != "" || c.extractor == nil {
		return text
	}

	page, err := c.fetcher.Run(ctx, entry.Link)
	if err != nil {
		slog.Warn("Failed to fetch article page for extraction", "link", entry.Link, "error", err)
		return ""
	}

	extracted, err := c.extractor.Run(page)
	if err != nil {
		slog.Warn("Failed to extract article content", "link", entry.Link, "error", err)
		return ""
	}

	return extracted
}
