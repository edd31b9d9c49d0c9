package models

type Author struct {
	Name   string            `json:"name"`
	Slug   string            `json:"slug"`
	Avatar string            `json:"avatar,omitempty"`
	Bio    string            `json:"bio,omitempty"`
	Social map[string]string `json:"social,omitempty"`
}
