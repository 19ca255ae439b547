package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ainews/app/database"
)

const defaultArticleLimit = 50

type Handler struct {
	articleRepo database.ArticleRepository
}

func NewHandler(articleRepo database.ArticleRepository) *Handler {
	return &Handler{
		articleRepo: articleRepo,
	}
}

// GetArticles returns the N most recent articles as JSON.
func (h *Handler) GetArticles(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	articles, err := h.articleRepo.ListRecent(limit)
	if err != nil {
		slog.Error("Database error", "operation", "list_articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	response := make([]ArticleResponse, 0, len(articles))
	for _, article := range articles {
		response = append(response, toArticleResponse(article))
	}

	c.JSON(http.StatusOK, response)
}

// GetIndex renders the recent-articles list as an HTML page.
func (h *Handler) GetIndex(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	articles, err := h.articleRepo.ListRecent(limit)
	if err != nil {
		slog.Error("Database error", "operation", "list_articles", "error", err)
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	views := make([]ArticleResponse, 0, len(articles))
	for _, article := range articles {
		views = append(views, toArticleResponse(article))
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Articles": views,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if count, err := h.articleRepo.Count(); err == nil {
		health["articles"] = count
	}

	c.JSON(http.StatusOK, health)
}

func parseLimit(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("limit", strconv.Itoa(defaultArticleLimit))

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return 0, false
	}

	return limit, true
}

func toArticleResponse(article database.Article) ArticleResponse {
	return ArticleResponse{
		Title:             article.Title,
		Link:              article.Link,
		PublishedAt:       article.PublishedAt,
		Source:            article.Source,
		OriginalSummary:   article.OriginalSummary,
		TranslatedSummary: article.TranslatedSummary,
		CreatedAt:         article.CreatedAt.Format(time.RFC3339),
	}
}
