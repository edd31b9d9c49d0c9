package services

import (
	"sort"
	"strings"

	"magazine-cms/pkg/models"
)

// Search ranks articles by how many distinct query tokens appear in their
// title, excerpt, category or author. A query token also matches any word
// it prefixes. Ties keep aggregate order.
func (s *ContentStore) Search(query string, limit int) []models.Article {
	results := make([]models.Article, 0)
	terms := uniqueTokens(Tokenize(query))
	if len(terms) == 0 || limit <= 0 {
		return results
	}

	type hit struct {
		article models.Article
		score   int
	}
	var hits []hit
	for _, a := range s.GetAllArticles() {
		words := Tokenize(strings.Join([]string{a.Title, a.Excerpt, a.Category, a.Author}, " "))
		score := 0
		for _, term := range terms {
			if matchesAny(words, term) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, hit{article: a, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	for _, h := range hits {
		if len(results) >= limit {
			break
		}
		results = append(results, h.article)
	}
	return results
}

func matchesAny(words []string, term string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, term) {
			return true
		}
	}
	return false
}

func uniqueTokens(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := tokens[:0]
	for _, t := range tokens {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
