package api

// ArticleResponse is the wire representation of a stored article.
type ArticleResponse struct {
	Title             string  `json:"title"`
	Link              string  `json:"link"`
	PublishedAt       *string `json:"published_at"`
	Source            *string `json:"source"`
	OriginalSummary   *string `json:"original_summary"`
	TranslatedSummary *string `json:"translated_summary"`
	CreatedAt         string  `json:"created_at"`
}
