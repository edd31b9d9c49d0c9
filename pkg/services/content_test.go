package services

import (
	"os"
	"path/filepath"
	"testing"

	"magazine-cms/pkg/logger"
	"magazine-cms/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	featuredJSON = `[
  {"id": "a1", "title": "Yapay Zeka Gündemi", "author": "Ayşe Yılmaz", "category": "Tech", "date": "14 Ocak, 2024", "image": "/own.jpg"},
  {"id": "a2", "title": "Shared Story", "author": "Mehmet Demir", "category": "Culture", "date": "3 Şubat, 2024", "content": "<p>Body</p>"},
  {"id": "", "title": "No id is dropped"}
]`

	trendingYAML = `
articles:
  - id: a2
    title: Shared Story (trending copy)
    category: Tech
    date: "1 Ocak, 2020"
  - id: a3
    title: Çip Savaşları
    author: ayse-yilmaz
    category: tech
    date: "2 Mart, 2024"
    isPremium: true
`

	recentTOML = `
[[articles]]
id = "a4"
title = "Derbi Sonrası"
author = "Jane Doe"
category = "Sports"
date = ""
`

	archiveCSV = "Slug,Başlık,İçerik,Özet,Kapak,SEO Başlık\n" +
		"a1,Archive title,\"<p>Full body of a1</p>\",Archive excerpt,/archive.jpg,Archive SEO\n" +
		"archive-only,Only here,<p>x</p>,,,\n"
)

func newTestContentStore(t *testing.T, opts ...Option) (*ContentStore, string) {
	t.Helper()
	dir := t.TempDir()
	manifest := models.ContentManifest{
		Sections: []models.SectionSource{
			{Name: "featured", Path: writeFile(t, dir, "featured.json", featuredJSON)},
			{Name: "trending", Path: writeFile(t, dir, "trending.yaml", trendingYAML)},
			{Name: "missing", Path: filepath.Join(dir, "missing.json")},
			{Name: "most-recent", Path: writeFile(t, dir, "most-recent.toml", recentTOML)},
		},
		Archive: writeFile(t, dir, "articles.csv", archiveCSV),
	}
	authors := NewAuthorStore(writeFile(t, dir, "authors.csv", authorsCSV), logger.NewNop())
	return NewContentStore(manifest, authors, logger.NewNop(), opts...), dir
}

func ids(articles []models.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}

func TestContentStore_GetAllArticles(t *testing.T) {
	store, _ := newTestContentStore(t)

	all := store.GetAllArticles()
	assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, ids(all))
	assert.Equal(t, "Shared Story", all[1].Title, "first section wins on duplicate ids")
}

func TestContentStore_FindArticleByID_SectionPriority(t *testing.T) {
	store, _ := newTestContentStore(t)

	a := store.FindArticleByID("a2")
	require.NotNil(t, a)
	assert.Equal(t, "Shared Story", a.Title)
	assert.Equal(t, "Culture", a.Category)

	a3 := store.FindArticleByID("a3")
	require.NotNil(t, a3)
	assert.True(t, a3.IsPremium)

	assert.Nil(t, store.FindArticleByID("nope"))
	assert.Nil(t, store.FindArticleByID(""))
	assert.Nil(t, store.FindArticleByID("archive-only"), "archive is not searched directly")
}

func TestContentStore_FindArticleByID_Enrichment(t *testing.T) {
	store, _ := newTestContentStore(t, WithEnrichment())

	a := store.FindArticleByID("a1")
	require.NotNil(t, a)
	assert.Equal(t, "<p>Full body of a1</p>", a.Content)
	assert.Equal(t, "Archive excerpt", a.Excerpt)
	assert.Equal(t, "1 min read", a.ReadTime)
	assert.Equal(t, "Archive SEO", a.SEOTitle)
	assert.Equal(t, "Yapay Zeka Gündemi", a.Title, "present fields are not overwritten")
	assert.Equal(t, "/own.jpg", a.Image, "present fields are not overwritten")

	featured, ok := store.Section("featured")
	require.True(t, ok)
	assert.Empty(t, featured.Articles[0].Content, "enrichment must not touch cached sections")
}

func TestContentStore_FindArticleByID_NoEnrichmentByDefault(t *testing.T) {
	store, _ := newTestContentStore(t)

	a := store.FindArticleByID("a1")
	require.NotNil(t, a)
	assert.Empty(t, a.Content)
	assert.Empty(t, a.Excerpt)
}

func TestContentStore_GetRelatedArticles(t *testing.T) {
	store, _ := newTestContentStore(t)
	source := *store.FindArticleByID("a1")

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"same category first then others", 3, []string{"a3", "a2", "a4"}},
		{"limit smaller than category matches", 1, []string{"a3"}},
		{"limit larger than pool", 10, []string{"a3", "a2", "a4"}},
		{"zero limit", 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			related := store.GetRelatedArticles(source, tt.limit)
			assert.Equal(t, tt.want, ids(related))
			assert.NotContains(t, ids(related), source.ID)
		})
	}
}

func TestContentStore_GetRelatedArticles_DuplicateIDsAcrossSections(t *testing.T) {
	store, _ := newTestContentStore(t)
	// a2 appears in two sections with different categories.
	related := store.GetRelatedArticles(models.Article{ID: "a3", Category: "Tech"}, 10)

	seen := map[string]int{}
	for _, a := range related {
		seen[a.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %s repeated", id)
	}
	assert.NotContains(t, seen, "a3")
}

func TestContentStore_GetRecentArticles_LexicalDateOrder(t *testing.T) {
	store, _ := newTestContentStore(t)

	assert.Equal(t, []string{"a2", "a3", "a1", "a4"}, ids(store.GetRecentArticles(10)))
	assert.Equal(t, []string{"a2", "a3"}, ids(store.GetRecentArticles(2)))
	assert.Empty(t, store.GetRecentArticles(0))
}

func TestContentStore_GetArticlesByCategory(t *testing.T) {
	store, _ := newTestContentStore(t)

	assert.Equal(t, []string{"a1", "a3"}, ids(store.GetArticlesByCategory("TECH")))
	assert.Empty(t, store.GetArticlesByCategory("Politics"))
	assert.Empty(t, store.GetArticlesByCategory(""))
}

func TestContentStore_GetArticlesByAuthor(t *testing.T) {
	store, _ := newTestContentStore(t)

	assert.Equal(t, []string{"a1", "a3"}, ids(store.GetArticlesByAuthor("ayse-yilmaz")))
	assert.Equal(t, []string{"a1", "a3"}, ids(store.GetArticlesByAuthor("Ayşe Yılmaz")))
	assert.Equal(t, []string{"a4"}, ids(store.GetArticlesByAuthor("jane-doe")))
	assert.Empty(t, store.GetArticlesByAuthor("nobody"))
}

func TestContentStore_SectionAndCategories(t *testing.T) {
	store, _ := newTestContentStore(t)

	sec, ok := store.Section("trending")
	require.True(t, ok)
	assert.Equal(t, []string{"a2", "a3"}, ids(sec.Articles))

	missing, ok := store.Section("missing")
	require.True(t, ok, "unreadable sections stay listed but empty")
	assert.Empty(t, missing.Articles)

	_, ok = store.Section("unknown")
	assert.False(t, ok)

	assert.Equal(t, []string{"Tech", "Culture", "tech", "Sports"}, store.Categories())
}

func TestContentStore_Search(t *testing.T) {
	store, _ := newTestContentStore(t)

	assert.Equal(t, []string{"a2"}, ids(store.Search("shared", 10)))
	assert.Equal(t, []string{"a1", "a3"}, ids(store.Search("tec", 10)))
	assert.Equal(t, []string{"a3"}, ids(store.Search("cip savas", 10)), "Turkish letters fold")
	assert.Equal(t, []string{"a3", "a1"}, ids(store.Search("tech çip", 10)), "more matched terms rank first")
	assert.Empty(t, store.Search("   ", 10))
	assert.Len(t, store.Search("tech", 1), 1)
}

func TestContentStore_Invalidate(t *testing.T) {
	store, dir := newTestContentStore(t)
	require.Len(t, store.GetAllArticles(), 4)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "featured.json"), []byte(`[{"id":"new"}]`), 0644))
	assert.Len(t, store.GetAllArticles(), 4, "cached until invalidated")

	store.Invalidate()
	assert.Equal(t, []string{"new", "a2", "a3", "a4"}, ids(store.GetAllArticles()))
}

func TestContentStore_EverythingMissing(t *testing.T) {
	dir := t.TempDir()
	store := NewContentStore(models.ContentManifest{
		Sections: []models.SectionSource{{Name: "featured", Path: filepath.Join(dir, "x.json")}},
		Archive:  filepath.Join(dir, "y.csv"),
	}, nil, logger.NewNop(), WithEnrichment())

	assert.Empty(t, store.GetAllArticles())
	assert.Nil(t, store.FindArticleByID("a1"))
	assert.Empty(t, store.GetRecentArticles(5))
	assert.Empty(t, store.GetArticlesByAuthor("someone"))
}
