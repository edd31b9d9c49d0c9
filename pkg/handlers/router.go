package handlers

import (
	"net/http"

	"magazine-cms/pkg/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the public content API and, when enabled, the admin
// routes behind a GitHub OAuth session.
func NewRouter(api *API) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(api.Log))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	pub := r.Group("/api")
	{
		pub.GET("/articles", api.ListArticles)
		pub.GET("/articles/recent", api.RecentArticles)
		pub.GET("/articles/:id", api.GetArticle)
		pub.GET("/articles/:id/related", api.RelatedArticles)
		pub.GET("/sections/:name", api.GetSection)
		pub.GET("/categories", api.ListCategories)
		pub.GET("/search", api.Search)
		pub.GET("/authors", api.ListAuthors)
		pub.GET("/authors/:key", api.GetAuthor)
	}

	if !config.AdminEnabled {
		return r
	}

	store := cookie.NewStore([]byte(config.SessionSecret))
	r.Use(sessions.Sessions("magazine_session", store))

	// --- Auth Routes ---
	r.GET("/login/github", GithubLogin)
	r.GET("/auth/callback", AuthCallback)
	r.GET("/logout", Logout)

	admin := r.Group("/api/admin")
	admin.Use(AuthRequired)
	{
		admin.POST("/reload", api.HandleReload)
		admin.POST("/sync", api.HandleSync)
	}
	return r
}
