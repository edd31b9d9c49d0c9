package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// recentExportSize is how many articles go into recent.json.
const recentExportSize = 10

// ExportBundle writes the client-side JSON bundle into dir: the article
// aggregate, the author map and the most recent articles.
func ExportBundle(dir string, content *ContentStore, authors *AuthorStore) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	authorsJSON, err := authors.ExportJSON()
	if err != nil {
		return fmt.Errorf("encode authors: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "authors.json"), authorsJSON, 0644); err != nil {
		return fmt.Errorf("write authors.json: %w", err)
	}

	files := map[string]any{
		"articles.json": content.GetAllArticles(),
		"recent.json":   content.GetRecentArticles(recentExportSize),
	}
	for name, v := range files {
		if err := writeJSON(filepath.Join(dir, name), v); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
