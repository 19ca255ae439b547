package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	p := gofeed.NewParser()
	p.RSSTranslator = newSourceAwareTranslator()

	return &Parser{
		gofeedParser: p,
	}
}

func (p *Parser) Run(data []byte) (*Metadata, []Entry, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	metadata := &Metadata{
		Title:       feed.Title,
		Link:        feed.Link,
		Description: feed.Description,
		Language:    feed.Language,
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, p.normalizeItem(item))
	}

	return metadata, entries, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Entry {
	entry := Entry{
		Title:     cmp.Or(strings.TrimSpace(item.Title), "Untitled"),
		Link:      strings.TrimSpace(item.Link),
		Published: optText(item.Published),
		Updated:   firstText(item.Updated, extensionText(item, "atom", "updated")),
		Summary:   optText(item.Description),
	}

	entry.Contents = p.extractContents(item)
	entry.SourceTitle = firstText(item.Custom["source"], atomSourceTitle(item))

	return entry
}

// extractContents returns every non-empty content:encoded block in document
// order. Atom feeds carry a single content element, surfaced by gofeed as
// Item.Content.
func (p *Parser) extractContents(item *gofeed.Item) []string {
	var contents []string

	for _, e := range item.Extensions["content"]["encoded"] {
		if text := strings.TrimSpace(e.Value); text != "" {
			contents = append(contents, text)
		}
	}

	if len(contents) == 0 {
		if text := strings.TrimSpace(item.Content); text != "" {
			contents = append(contents, text)
		}
	}

	return contents
}

// extensionText returns the trimmed value of the first <prefix:name> element
// on the item, or "".
func extensionText(item *gofeed.Item, prefix, name string) string {
	for _, e := range item.Extensions[prefix][name] {
		if text := strings.TrimSpace(e.Value); text != "" {
			return text
		}
	}
	return ""
}

// atomSourceTitle digs out <atom:source><atom:title> from an RSS item.
func atomSourceTitle(item *gofeed.Item) string {
	for _, source := range item.Extensions["atom"]["source"] {
		for _, title := range source.Children["title"] {
			if text := strings.TrimSpace(title.Value); text != "" {
				return text
			}
		}
	}
	return ""
}

func optText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func firstText(values ...string) *string {
	for _, v := range values {
		if text := optText(v); text != nil {
			return text
		}
	}
	return nil
}

// sourceAwareTranslator keeps the plain RSS <source> element, which the
// default mapping drops, in Item.Custom.
type sourceAwareTranslator struct {
	defaultTranslator *gofeed.DefaultRSSTranslator
}

func newSourceAwareTranslator() *sourceAwareTranslator {
	return &sourceAwareTranslator{
		defaultTranslator: &gofeed.DefaultRSSTranslator{},
	}
}

func (t *sourceAwareTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	rssFeed, ok := feed.(*rss.Feed)
	if !ok {
		return nil, fmt.Errorf("feed did not match expected type of *rss.Feed")
	}

	translated, err := t.defaultTranslator.Translate(rssFeed)
	if err != nil {
		return nil, err
	}

	for i, item := range rssFeed.Items {
		if i >= len(translated.Items) {
			break
		}
		if item.Source != nil && item.Source.Title != "" {
			if translated.Items[i].Custom == nil {
				translated.Items[i].Custom = make(map[string]string)
			}
			translated.Items[i].Custom["source"] = item.Source.Title
		}
	}

	return translated, nil
}
