package models

// ContentManifest describes where the content files live and in which
// order sections are searched.
type ContentManifest struct {
	Sections []SectionSource `yaml:"sections"`
	Archive  string          `yaml:"archive"`
	Authors  string          `yaml:"authors"`
}

type SectionSource struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}
