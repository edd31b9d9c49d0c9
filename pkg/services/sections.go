package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"magazine-cms/pkg/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type articleList struct {
	Articles []models.Article `json:"articles" yaml:"articles" toml:"articles"`
}

// LoadSection reads one section file. The format follows the extension:
// JSON and YAML hold either a bare list or an object with an "articles"
// list, TOML holds [[articles]] tables, CSV is converted row by row.
// Records without an id are dropped.
func LoadSection(path string) ([]models.Article, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".csv" {
		res, err := ParseCSVFile(path)
		if err != nil {
			return nil, err
		}
		return ConvertRows(res.Rows), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	articles, err := DecodeArticles(content, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return withIDs(articles), nil
}

// DecodeArticles parses content in the format named by ext (".json",
// ".yaml", ".yml" or ".toml").
func DecodeArticles(content []byte, ext string) ([]models.Article, error) {
	var list articleList
	switch ext {
	case ".json":
		if bytes.HasPrefix(bytes.TrimSpace(content), []byte("[")) {
			if err := json.Unmarshal(content, &list.Articles); err != nil {
				return nil, err
			}
			break
		}
		if err := json.Unmarshal(content, &list); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		var node yaml.Node
		if err := yaml.Unmarshal(content, &node); err != nil {
			return nil, err
		}
		if len(node.Content) == 0 {
			return nil, nil
		}
		if node.Content[0].Kind == yaml.SequenceNode {
			if err := node.Content[0].Decode(&list.Articles); err != nil {
				return nil, err
			}
			break
		}
		if err := node.Content[0].Decode(&list); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(content, &list); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported section format: %q", ext)
	}
	return list.Articles, nil
}

func withIDs(articles []models.Article) []models.Article {
	out := articles[:0]
	for _, a := range articles {
		a.ID = strings.TrimSpace(a.ID)
		if a.ID == "" {
			continue
		}
		out = append(out, a)
	}
	return out
}
