package models

// Row is one parsed CSV record keyed by header name.
type Row map[string]string

// Article is the normalized content entity served to the presentation layer.
type Article struct {
	ID             string `json:"id" yaml:"id" toml:"id"`
	Title          string `json:"title" yaml:"title" toml:"title"`
	Author         string `json:"author" yaml:"author" toml:"author"`
	Category       string `json:"category" yaml:"category" toml:"category"`
	Date           string `json:"date" yaml:"date" toml:"date"`
	ReadTime       string `json:"readTime" yaml:"readTime" toml:"readTime"`
	Image          string `json:"image" yaml:"image" toml:"image"`
	Excerpt        string `json:"excerpt" yaml:"excerpt" toml:"excerpt"`
	Content        string `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	SEOTitle       string `json:"seoTitle,omitempty" yaml:"seoTitle,omitempty" toml:"seoTitle,omitempty"`
	SEODescription string `json:"seoDescription,omitempty" yaml:"seoDescription,omitempty" toml:"seoDescription,omitempty"`
	IsPremium      bool   `json:"isPremium" yaml:"isPremium" toml:"isPremium"`
	Tag            string `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty"`
}

// Section is a named editorial list (featured, trending, ...) in file order.
type Section struct {
	Name     string    `json:"name"`
	Articles []Article `json:"articles"`
}
