package services

import (
	"encoding/json"
	"maps"
	"sort"
	"strings"
	"sync"

	"magazine-cms/pkg/logger"
	"magazine-cms/pkg/models"
)

var (
	colAuthorName   = []string{"İsim", "Ad Soyad", "Name"}
	colAuthorSlug   = []string{"Slug", "slug"}
	colAuthorAvatar = []string{"Avatar", "Görsel", "Fotoğraf", "Image"}
	colAuthorBio    = []string{"Biyografi", "Bio"}

	socialColumns = map[string][]string{
		"twitter":   {"Twitter", "X"},
		"instagram": {"Instagram"},
		"linkedin":  {"LinkedIn", "Linkedin"},
		"facebook":  {"Facebook"},
		"website":   {"Website", "Web"},
	}
)

// AuthorStore loads the authors CSV once and answers lookups by slug or
// display name. The zero value is not usable; call NewAuthorStore.
type AuthorStore struct {
	path string
	log  logger.Logger

	mu      sync.Mutex
	loaded  bool
	authors []models.Author
	index   map[string]models.Author
}

func NewAuthorStore(path string, log logger.Logger) *AuthorStore {
	return &AuthorStore{path: path, log: log}
}

// Load reads the authors file on first use. Later calls are no-ops until
// Invalidate.
func (s *AuthorStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
}

func (s *AuthorStore) loadLocked() {
	if s.loaded {
		return
	}

	authors := ConvertAuthorRows(LoadCSV(s.path, s.log))
	index := make(map[string]models.Author, len(authors)*2)
	for _, a := range authors {
		index[a.Slug] = a
		// A name equal to another author's slug overwrites that entry.
		index[strings.ToLower(strings.TrimSpace(a.Name))] = a
	}

	s.authors = authors
	s.index = index
	s.loaded = true
	s.log.Info("Authors loaded", logger.String("path", s.path), logger.Int("count", len(authors)))
}

func (s *AuthorStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.authors = nil
	s.index = nil
}

// Find resolves key as a slug, then as a display name, then as a slugified
// display name. It returns nil when nothing matches.
func (s *AuthorStore) Find(key string) *models.Author {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()

	for _, k := range []string{key, strings.ToLower(key), Slugify(key)} {
		if a, ok := s.index[k]; ok {
			a.Social = maps.Clone(a.Social)
			return &a
		}
	}
	return nil
}

// All returns every author ordered by name.
func (s *AuthorStore) All() []models.Author {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()

	out := make([]models.Author, len(s.authors))
	copy(out, s.authors)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ExportJSON serializes the authors keyed by slug for client bundles.
func (s *AuthorStore) ExportJSON() ([]byte, error) {
	authors := s.All()
	bySlug := make(map[string]models.Author, len(authors))
	for _, a := range authors {
		bySlug[a.Slug] = a
	}
	return json.Marshal(bySlug)
}

// ConvertAuthorRows maps author CSV rows to Authors, skipping rows that
// have neither a name nor a slug.
func ConvertAuthorRows(rows []models.Row) []models.Author {
	authors := make([]models.Author, 0, len(rows))
	for _, row := range rows {
		name := field(row, colAuthorName...)
		slug := field(row, colAuthorSlug...)
		if slug == "" {
			slug = TitleSlug(name)
		}
		if slug == "" {
			continue
		}
		if name == "" {
			name = slug
		}

		var social map[string]string
		for platform, cols := range socialColumns {
			if v := field(row, cols...); v != "" {
				if social == nil {
					social = make(map[string]string)
				}
				social[platform] = v
			}
		}

		authors = append(authors, models.Author{
			Name:   name,
			Slug:   slug,
			Avatar: field(row, colAuthorAvatar...),
			Bio:    field(row, colAuthorBio...),
			Social: social,
		})
	}
	return authors
}
