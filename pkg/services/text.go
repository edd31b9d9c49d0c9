package services

import (
	"regexp"
	"strings"
)

var (
	wordRE      = regexp.MustCompile(`[\p{L}\p{N}]+`)
	nonSlugRE   = regexp.MustCompile(`[^a-z0-9]+`)
	turkishFold = strings.NewReplacer(
		"ç", "c", "Ç", "c",
		"ğ", "g", "Ğ", "g",
		"ı", "i", "İ", "i",
		"ö", "o", "Ö", "o",
		"ş", "s", "Ş", "s",
		"ü", "u", "Ü", "u",
	)
)

// Slugify lowercases s and joins its whitespace-separated words with
// hyphens. It is the loose form used for author lookups.
func Slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// TitleSlug builds a URL-safe ASCII slug from a title, folding Turkish
// letters to their Latin base.
func TitleSlug(title string) string {
	s := strings.ToLower(turkishFold.Replace(title))
	return strings.Trim(nonSlugRE.ReplaceAllString(s, "-"), "-")
}

// Tokenize returns lowercased word tokens with Turkish letters folded, so
// "İstanbul" and "istanbul" produce the same token.
func Tokenize(text string) []string {
	return wordRE.FindAllString(strings.ToLower(turkishFold.Replace(text)), -1)
}
