package database

import (
	"database/sql"
	"fmt"
	"time"
)

// articleRepository handles database operations for articles
type articleRepository struct {
	db *DB
}

func NewArticleRepository(db *DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Exists reports whether an article with the given link is already stored.
func (r *articleRepository) Exists(link string) (bool, error) {
	var one int
	err := r.db.QueryRow("SELECT 1 FROM articles WHERE link = ? LIMIT 1", link).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}
	return true, nil
}

// Insert stores a new article. A duplicate link is a silent no-op: the first
// write wins and existing fields are never touched.
func (r *articleRepository) Insert(article NewArticle) error {
	_, err := r.db.Exec(`
		INSERT INTO articles (
			title, link, published_at, source,
			original_summary, translated_summary, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(link) DO NOTHING
	`, article.Title, article.Link, article.PublishedAt, article.Source,
		article.OriginalSummary, article.TranslatedSummary, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

// ListRecent returns stored articles ordered by creation time, most recent
// first. A limit of zero or less returns everything.
func (r *articleRepository) ListRecent(limit int) ([]Article, error) {
	query := `
		SELECT id, title, link, published_at, source,
		       original_summary, translated_summary, created_at
		FROM articles
		ORDER BY created_at DESC, id DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var article Article
		err := rows.Scan(
			&article.ID, &article.Title, &article.Link, &article.PublishedAt,
			&article.Source, &article.OriginalSummary, &article.TranslatedSummary,
			&article.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return articles, nil
}

// Count returns the total number of stored articles
func (r *articleRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get article count: %w", err)
	}
	return count, nil
}
