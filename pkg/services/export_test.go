package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"magazine-cms/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportBundle(t *testing.T) {
	store, _ := newTestContentStore(t)
	out := filepath.Join(t.TempDir(), "bundle")

	require.NoError(t, ExportBundle(out, store, store.authors))

	var articles []models.Article
	readJSON(t, filepath.Join(out, "articles.json"), &articles)
	assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, ids(articles))

	var recent []models.Article
	readJSON(t, filepath.Join(out, "recent.json"), &recent)
	assert.Equal(t, "a2", recent[0].ID)

	var authors map[string]models.Author
	readJSON(t, filepath.Join(out, "authors.json"), &authors)
	assert.Contains(t, authors, "ayse-yilmaz")
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}
