package handlers

import (
	"net/http"
	"strings"

	"magazine-cms/pkg/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	accessTokenKey = "access_token"
	oauthStateKey  = "oauth_state"
)

func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	token := session.Get(accessTokenKey)
	if token == nil {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		} else {
			c.Redirect(http.StatusFound, "/login/github")
			c.Abort()
		}
		return
	}
	c.Next()
}

func GithubLogin(c *gin.Context) {
	if config.OauthConf == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "OAuth not configured"})
		return
	}
	state := uuid.NewString()
	session := sessions.Default(c)
	session.Set(oauthStateKey, state)
	session.Save()

	url := config.OauthConf.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

func AuthCallback(c *gin.Context) {
	session := sessions.Default(c)
	expected, _ := session.Get(oauthStateKey).(string)
	if expected == "" || c.Query("state") != expected {
		c.String(http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	if config.OauthConf == nil {
		c.String(http.StatusServiceUnavailable, "OAuth not configured")
		return
	}

	token, err := config.OauthConf.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		c.String(http.StatusInternalServerError, "OAuth Exchange Failed")
		return
	}

	session.Delete(oauthStateKey)
	session.Set(accessTokenKey, token.AccessToken)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
