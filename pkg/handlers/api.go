package handlers

import (
	"net/http"
	"strconv"

	"magazine-cms/pkg/logger"
	"magazine-cms/pkg/models"
	"magazine-cms/pkg/services"

	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit    = 20
	defaultRelatedLimit = 3
	defaultRecentLimit  = 6
	maxLimit            = 100
)

// API serves read-only content queries as JSON.
type API struct {
	Content *services.ContentStore
	Authors *services.AuthorStore
	Log     logger.Logger
}

func (a *API) ListArticles(c *gin.Context) {
	limit, ok := queryLimit(c, 0)
	if !ok {
		return
	}

	var articles []models.Article
	if category := c.Query("category"); category != "" {
		articles = a.Content.GetArticlesByCategory(category)
	} else {
		articles = a.Content.GetAllArticles()
	}
	if author := c.Query("author"); author != "" {
		byAuthor := make(map[string]bool)
		for _, art := range a.Content.GetArticlesByAuthor(author) {
			byAuthor[art.ID] = true
		}
		filtered := articles[:0]
		for _, art := range articles {
			if byAuthor[art.ID] {
				filtered = append(filtered, art)
			}
		}
		articles = filtered
	}
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	c.JSON(http.StatusOK, articles)
}

func (a *API) RecentArticles(c *gin.Context) {
	limit, ok := queryLimit(c, defaultRecentLimit)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, a.Content.GetRecentArticles(limit))
}

func (a *API) GetArticle(c *gin.Context) {
	article := a.Content.FindArticleByID(c.Param("id"))
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func (a *API) RelatedArticles(c *gin.Context) {
	limit, ok := queryLimit(c, defaultRelatedLimit)
	if !ok {
		return
	}
	article := a.Content.FindArticleByID(c.Param("id"))
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, a.Content.GetRelatedArticles(*article, limit))
}

func (a *API) GetSection(c *gin.Context) {
	section, found := a.Content.Section(c.Param("name"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	c.JSON(http.StatusOK, section)
}

func (a *API) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, a.Content.Categories())
}

func (a *API) Search(c *gin.Context) {
	limit, ok := queryLimit(c, defaultListLimit)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, a.Content.Search(c.Query("q"), limit))
}

// ListAuthors returns the client export: authors keyed by slug.
func (a *API) ListAuthors(c *gin.Context) {
	data, err := a.Authors.ExportJSON()
	if err != nil {
		a.Log.Error("Failed to export authors", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export authors"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (a *API) GetAuthor(c *gin.Context) {
	author := a.Authors.Find(c.Param("key"))
	if author == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"author":   author,
		"articles": a.Content.GetArticlesByAuthor(author.Slug),
	})
}

// queryLimit reads the "limit" query parameter. On a bad value it writes a
// 400 response and reports false.
func queryLimit(c *gin.Context, fallback int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return 0, false
	}
	return min(n, maxLimit), true
}
