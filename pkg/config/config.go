package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

var (
	ContentDir   = "./content"
	ManifestPath = "./content/content.yml"

	// Server settings
	ServerAddr   = ":8080"
	AdminEnabled = true

	// Logging
	LogLevel       = "info"
	LogDevelopment = false
	LogOutputs     = []string{"stderr"}

	// Git settings
	GitBranch = "main"
	GitRemote = "origin"

	SessionSecret = ""
)

var OauthConf *oauth2.Config

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	appURL := GetAppURL()
	redirectURL := getEnv("GITHUB_REDIRECT_URL", appURL+"/auth/callback")

	ContentDir = getEnv("CONTENT_DIR", "./content")
	ManifestPath = getEnv("CONTENT_MANIFEST", filepath.Join(ContentDir, "content.yml"))

	ServerAddr = getEnv("SERVER_ADDR", ":8080")
	LogLevel = getEnv("LOG_LEVEL", "info")
	if v, err := strconv.ParseBool(os.Getenv("LOG_DEV")); err == nil {
		LogDevelopment = v
	}
	LogOutputs = splitList(getEnv("LOG_OUTPUT", "stderr"))

	GitBranch = getEnv("GIT_BRANCH", "main")
	GitRemote = getEnv("GIT_REMOTE", "origin")

	SessionSecret = getEnv("SESSION_SECRET", "")

	if v := os.Getenv("ADMIN_ENABLED"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			AdminEnabled = val
		}
	}
	// Cookie sessions are useless without a secret.
	if SessionSecret == "" {
		AdminEnabled = false
	}

	OauthConf = &oauth2.Config{
		ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		Scopes:       []string{"repo"},
		Endpoint:     github.Endpoint,
		RedirectURL:  redirectURL,
	}
}

func GetAppURL() string {
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:8080"
	}
	return appURL
}

// splitList splits a comma-separated value, dropping blank items.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
