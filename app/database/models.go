package database

import (
	"time"
)

// Article represents a stored article record in the database
type Article struct {
	ID                int64
	Title             string
	Link              string
	PublishedAt       *string
	Source            *string
	OriginalSummary   *string
	TranslatedSummary *string
	CreatedAt         time.Time
}
