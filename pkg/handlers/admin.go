package handlers

import (
	"net/http"

	"magazine-cms/pkg/config"
	"magazine-cms/pkg/logger"
	"magazine-cms/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (a *API) invalidate() {
	a.Content.Invalidate()
	a.Authors.Invalidate()
}

// HandleReload drops the cached content so the next query rereads the files.
func (a *API) HandleReload(c *gin.Context) {
	a.invalidate()
	a.Log.Info("Content caches invalidated")
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}

// HandleSync pulls the content repository with the session's GitHub token
// and reloads on success.
func (a *API) HandleSync(c *gin.Context) {
	session := sessions.Default(c)
	token, _ := session.Get(accessTokenKey).(string)

	log, err := services.SyncContent(config.ContentDir, token)
	if err != nil {
		a.Log.Error("Content sync failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "log": log})
		return
	}
	a.invalidate()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "log": log})
}
