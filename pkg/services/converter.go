package services

import (
	"fmt"
	"strings"

	"magazine-cms/pkg/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"golang.org/x/net/html"
)

const (
	DefaultCategory  = "Genel"
	DefaultReadTime  = "5 min read"
	PlaceholderImage = "/images/placeholder.jpg"

	wordsPerMinute = 200
)

var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// Accepted headers per field, Turkish export names first.
var (
	colSlug        = []string{"Slug", "slug", "ID", "id"}
	colTitle       = []string{"Başlık", "Title", "Name"}
	colAuthor      = []string{"Yazar", "Author"}
	colDate        = []string{"Tarih", "Date", "Published On"}
	colExcerpt     = []string{"Özet", "Excerpt", "Summary"}
	colContent     = []string{"İçerik", "Content", "Post Body"}
	colCategories  = []string{"Kategoriler", "Kategori", "Categories", "Category"}
	colCover       = []string{"Kapak", "Cover", "Cover Image"}
	colDesktop     = []string{"Desktop image", "Desktop Image"}
	colSEOTitle    = []string{"SEO Başlık", "SEO Title"}
	colSEODesc     = []string{"SEO Açıklama", "SEO Description"}
	colPremium     = []string{"Premium", "isPremium"}
	colTag         = []string{"Etiket", "Tag"}
	truthyPremiums = map[string]bool{"true": true, "1": true, "evet": true, "yes": true, "x": true}
)

// ConvertRow maps one articles CSV row to an Article. It performs no I/O.
func ConvertRow(row models.Row) models.Article {
	title := field(row, colTitle...)
	id := field(row, colSlug...)
	if id == "" {
		id = TitleSlug(title)
	}

	content := SanitizeContent(field(row, colContent...))

	return models.Article{
		ID:             id,
		Title:          title,
		Author:         field(row, colAuthor...),
		Category:       ExtractCategory(field(row, colCategories...)),
		Date:           FormatDate(field(row, colDate...)),
		ReadTime:       CalculateReadTime(content),
		Image:          SelectImage(field(row, colDesktop...), field(row, colCover...)),
		Excerpt:        field(row, colExcerpt...),
		Content:        content,
		SEOTitle:       field(row, colSEOTitle...),
		SEODescription: field(row, colSEODesc...),
		IsPremium:      truthyPremiums[strings.ToLower(field(row, colPremium...))],
		Tag:            field(row, colTag...),
	}
}

// ConvertRows converts every row, skipping those that yield no id.
func ConvertRows(rows []models.Row) []models.Article {
	articles := make([]models.Article, 0, len(rows))
	for _, row := range rows {
		a := ConvertRow(row)
		if a.ID == "" {
			continue
		}
		articles = append(articles, a)
	}
	return articles
}

func field(row models.Row, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(row[name]); v != "" {
			return v
		}
	}
	return ""
}

// ExtractCategory returns the first non-empty entry of a comma-separated
// category list.
func ExtractCategory(categories string) string {
	for _, c := range strings.Split(categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return DefaultCategory
}

// FormatDate renders date as "D Month, YYYY" with Turkish month names.
// Strings that already name a Turkish month, and strings that cannot be
// parsed, are returned unchanged.
func FormatDate(date string) string {
	if date == "" {
		return date
	}
	for _, m := range turkishMonths {
		if strings.Contains(date, m) {
			return date
		}
	}
	t, err := dateparse.ParseAny(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d %s, %d", t.Day(), turkishMonths[t.Month()-1], t.Year())
}

// CalculateReadTime estimates the reading time of an HTML body at 200
// words per minute, rounding up.
func CalculateReadTime(content string) string {
	if strings.TrimSpace(content) == "" {
		return DefaultReadTime
	}
	words := len(strings.Fields(plainText(content)))
	if words == 0 {
		return DefaultReadTime
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}

// plainText returns the text nodes of an HTML fragment separated by
// spaces, so adjacent block elements do not glue words together.
func plainText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	doc.Find("script, style").Remove()

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return b.String()
}

// SelectImage prefers the desktop image, then the cover, then a placeholder.
func SelectImage(desktop, cover string) string {
	if desktop = strings.TrimSpace(desktop); desktop != "" {
		return desktop
	}
	if cover = strings.TrimSpace(cover); cover != "" {
		return cover
	}
	return PlaceholderImage
}
