package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"magazine-cms/pkg/models"

	"gopkg.in/yaml.v3"
)

// DefaultManifest is the section order used when content.yml is absent.
// Earlier sections win when the same article id appears twice. The file
// names match the sample content directory.
func DefaultManifest() models.ContentManifest {
	return models.ContentManifest{
		Sections: []models.SectionSource{
			{Name: "featured", Path: "featured.json"},
			{Name: "trending", Path: "trending.yaml"},
			{Name: "most-recent", Path: "most-recent.json"},
			{Name: "editors-picks", Path: "editors-picks.toml"},
			{Name: "categories", Path: "categories.json"},
		},
		Archive: "articles.csv",
		Authors: "authors.csv",
	}
}

// LoadManifest reads the YAML manifest at path. Relative file paths inside
// it are resolved against the manifest's directory. A missing manifest
// yields DefaultManifest rooted at ContentDir.
func LoadManifest(path string) (models.ContentManifest, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return resolveManifest(DefaultManifest(), ContentDir), nil
	}
	if err != nil {
		return models.ContentManifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m models.ContentManifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return models.ContentManifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	defaults := DefaultManifest()
	if len(m.Sections) == 0 {
		m.Sections = defaults.Sections
	}
	if m.Authors == "" {
		m.Authors = defaults.Authors
	}
	return resolveManifest(m, filepath.Dir(path)), nil
}

func resolveManifest(m models.ContentManifest, root string) models.ContentManifest {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(root, p)
	}

	sections := make([]models.SectionSource, len(m.Sections))
	for i, s := range m.Sections {
		sections[i] = models.SectionSource{Name: s.Name, Path: resolve(s.Path)}
	}
	m.Sections = sections
	m.Archive = resolve(m.Archive)
	m.Authors = resolve(m.Authors)
	return m
}
