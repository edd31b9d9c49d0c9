package services

import (
	"sort"
	"strings"
	"sync"

	"magazine-cms/pkg/logger"
	"magazine-cms/pkg/models"
)

// ContentStore holds the editorial sections in manifest order and answers
// read-only article queries. Sections are loaded on first use and kept
// until Invalidate. Every query degrades to an empty result when loading
// fails.
type ContentStore struct {
	manifest models.ContentManifest
	authors  *AuthorStore
	log      logger.Logger
	enrich   bool

	mu            sync.Mutex
	loaded        bool
	sections      []models.Section
	archiveLoaded bool
	archive       map[string]models.Article
}

type Option func(*ContentStore)

// WithEnrichment lets FindArticleByID fill missing body fields from the
// manifest's archive file. Only server-side callers should enable it.
func WithEnrichment() Option {
	return func(s *ContentStore) { s.enrich = true }
}

// NewContentStore builds a store over manifest. authors may be nil, in
// which case author queries match on the article's author text alone.
func NewContentStore(manifest models.ContentManifest, authors *AuthorStore, log logger.Logger, opts ...Option) *ContentStore {
	s := &ContentStore{manifest: manifest, authors: authors, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ContentStore) loadLocked() {
	if s.loaded {
		return
	}

	sections := make([]models.Section, 0, len(s.manifest.Sections))
	for _, src := range s.manifest.Sections {
		articles, err := LoadSection(src.Path)
		if err != nil {
			s.log.Error("Failed to load section",
				logger.String("section", src.Name),
				logger.String("path", src.Path),
				logger.Error(err),
			)
			articles = nil
		}
		sections = append(sections, models.Section{Name: src.Name, Articles: articles})
	}

	s.sections = sections
	s.loaded = true
	s.log.Info("Content sections loaded", logger.Int("sections", len(sections)))
}

func (s *ContentStore) archiveLocked() map[string]models.Article {
	if s.archiveLoaded {
		return s.archive
	}
	s.archiveLoaded = true
	s.archive = map[string]models.Article{}
	if s.manifest.Archive == "" {
		return s.archive
	}

	articles, err := LoadSection(s.manifest.Archive)
	if err != nil {
		s.log.Error("Failed to load article archive",
			logger.String("path", s.manifest.Archive),
			logger.Error(err),
		)
		return s.archive
	}
	for _, a := range articles {
		if _, dup := s.archive[a.ID]; !dup {
			s.archive[a.ID] = a
		}
	}
	return s.archive
}

// Invalidate drops the loaded sections and archive.
func (s *ContentStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.sections = nil
	s.archiveLoaded = false
	s.archive = nil
}

// Section returns the named section's articles in file order.
func (s *ContentStore) Section(name string) (models.Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()

	for _, sec := range s.sections {
		if sec.Name == name {
			return models.Section{Name: sec.Name, Articles: cloneArticles(sec.Articles)}, true
		}
	}
	return models.Section{}, false
}

// FindArticleByID returns the first article with id, searching sections in
// manifest order. When enrichment is enabled and the match has no body,
// its empty fields are filled from the archive copy of the same id.
func (s *ContentStore) FindArticleByID(id string) *models.Article {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()

	for _, sec := range s.sections {
		for _, a := range sec.Articles {
			if a.ID != id {
				continue
			}
			if a.Content == "" && s.enrich {
				if full, ok := s.archiveLocked()[id]; ok {
					fillMissing(&a, full)
				}
			}
			return &a
		}
	}
	return nil
}

// fillMissing copies body fields from src into dst where dst has none.
func fillMissing(dst *models.Article, src models.Article) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&dst.Content, src.Content)
	fill(&dst.Excerpt, src.Excerpt)
	fill(&dst.Image, src.Image)
	fill(&dst.ReadTime, src.ReadTime)
	fill(&dst.SEOTitle, src.SEOTitle)
	fill(&dst.SEODescription, src.SEODescription)
}

// GetAllArticles merges every section, keeping the first article seen for
// each id. The archive is not part of the aggregate.
func (s *ContentStore) GetAllArticles() []models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allLocked()
}

func (s *ContentStore) allLocked() []models.Article {
	s.loadLocked()

	seen := make(map[string]bool)
	all := make([]models.Article, 0)
	for _, sec := range s.sections {
		for _, a := range sec.Articles {
			if seen[a.ID] {
				continue
			}
			seen[a.ID] = true
			all = append(all, a)
		}
	}
	return all
}

func (s *ContentStore) GetArticlesByCategory(category string) []models.Article {
	category = strings.TrimSpace(category)
	out := make([]models.Article, 0)
	if category == "" {
		return out
	}
	for _, a := range s.GetAllArticles() {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out
}

// GetArticlesByAuthor matches articles whose author text resolves to the
// same author as nameOrSlug.
func (s *ContentStore) GetArticlesByAuthor(nameOrSlug string) []models.Article {
	out := make([]models.Article, 0)
	key := Slugify(nameOrSlug)
	if key == "" {
		return out
	}

	keys := map[string]bool{key: true}
	if s.authors != nil {
		if author := s.authors.Find(nameOrSlug); author != nil {
			keys[Slugify(author.Slug)] = true
			keys[Slugify(author.Name)] = true
		}
	}

	for _, a := range s.GetAllArticles() {
		if keys[Slugify(a.Author)] {
			out = append(out, a)
		}
	}
	return out
}

// GetRelatedArticles picks up to limit articles: same category first, in
// aggregate order, then any others. The source article is never included
// and ids never repeat.
func (s *ContentStore) GetRelatedArticles(article models.Article, limit int) []models.Article {
	related := make([]models.Article, 0, max(limit, 0))
	if limit <= 0 {
		return related
	}

	all := s.GetAllArticles()
	seen := map[string]bool{article.ID: true}

	for _, a := range all {
		if len(related) >= limit {
			break
		}
		if seen[a.ID] || !strings.EqualFold(a.Category, article.Category) {
			continue
		}
		seen[a.ID] = true
		related = append(related, a)
	}
	for _, a := range all {
		if len(related) >= limit {
			break
		}
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		related = append(related, a)
	}

	return dedupe(related)
}

// GetRecentArticles orders the aggregate by the display date string,
// descending, and keeps the first limit. The comparison is lexical on the
// localized string, not chronological.
func (s *ContentStore) GetRecentArticles(limit int) []models.Article {
	if limit <= 0 {
		return []models.Article{}
	}
	all := s.GetAllArticles()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date > all[j].Date })
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Categories lists distinct categories in aggregate order.
func (s *ContentStore) Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, a := range s.GetAllArticles() {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out = append(out, a.Category)
	}
	return out
}

func dedupe(articles []models.Article) []models.Article {
	seen := make(map[string]bool, len(articles))
	out := articles[:0]
	for _, a := range articles {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}

func cloneArticles(in []models.Article) []models.Article {
	out := make([]models.Article, len(in))
	copy(out, in)
	return out
}
