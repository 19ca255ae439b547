package database

// NewArticle carries the fields of an article about to be inserted. The
// creation timestamp is assigned by the repository.
type NewArticle struct {
	Title             string
	Link              string
	PublishedAt       *string
	Source            *string
	OriginalSummary   *string
	TranslatedSummary *string
}

type ArticleRepository interface {
	Exists(link string) (bool, error)
	Insert(article NewArticle) error
	ListRecent(limit int) ([]Article, error)
	Count() (int, error)
}
