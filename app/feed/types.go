package feed

import (
	"strings"
)

// Feed processing types

type Metadata struct {
	Title       string
	Link        string
	Description string
	Language    string
}

// Entry is a single normalized feed item. Optional fields are nil when the
// source element is missing or empty after trimming.
type Entry struct {
	Title       string
	Link        string
	Published   *string
	Updated     *string
	Summary     *string
	Contents    []string
	SourceTitle *string
}

// SummaryText joins the short summary and every content block with blank
// lines. Used only as enrichment input, never persisted.
func (e Entry) SummaryText() string {
	parts := make([]string, 0, len(e.Contents)+1)
	if e.Summary != nil {
		parts = append(parts, *e.Summary)
	}
	parts = append(parts, e.Contents...)
	return strings.Join(parts, "\n\n")
}
