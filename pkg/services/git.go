package services

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"magazine-cms/pkg/config"
)

// executeGitWithToken runs git in dir with every occurrence of the remote
// name replaced by its URL carrying token as oauth2 credentials. The token
// and authenticated URL are masked in the returned output.
func executeGitWithToken(dir, token, remote string, args ...string) (string, error) {
	cmdGetURL := exec.Command("git", "remote", "get-url", remote)
	cmdGetURL.Dir = dir
	outURL, err := cmdGetURL.Output()
	if err != nil {
		return "Failed to get remote url", fmt.Errorf("git remote get-url %s: %w", remote, err)
	}
	remoteURL := strings.TrimSpace(string(outURL))
	u, err := url.Parse(remoteURL)
	if err != nil {
		return "Invalid remote url", fmt.Errorf("parse remote url: %w", err)
	}
	u.User = url.UserPassword("oauth2", token)
	authenticatedURL := u.String()

	newArgs := make([]string, len(args))
	copy(newArgs, args)
	for i, v := range newArgs {
		if v == remote {
			newArgs[i] = authenticatedURL
		}
	}

	cmd := exec.Command("git", newArgs...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	return redactToken(string(output), token, authenticatedURL, remoteURL), err
}

func redactToken(log, token, authenticatedURL, remoteURL string) string {
	log = strings.ReplaceAll(log, authenticatedURL, remoteURL)
	if token != "" {
		log = strings.ReplaceAll(log, token, "***")
	}
	return log
}

// SyncContent pulls the configured branch into the content checkout at
// dir. Callers must invalidate their stores after a successful pull.
func SyncContent(dir, token string) (string, error) {
	return executeGitWithToken(dir, token, config.GitRemote, "pull", config.GitRemote, config.GitBranch)
}
