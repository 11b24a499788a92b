package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is what the exported document head needs.
type Meta struct {
	Title       string
	Description string
	OG          OpenGraph
	Twitter     Twitter
	// JSONLD holds one or more schema.org payloads, already marshaled.
	JSONLD []string
}

// NewMeta fills the Open Graph and Twitter fields from title, description and image.
func NewMeta(title, description, image string) Meta {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	image = strings.TrimSpace(image)
	card := "summary"
	if image != "" {
		card = "summary_large_image"
	}
	return Meta{
		Title:       title,
		Description: description,
		OG:          OpenGraph{Title: title, Description: description, Image: image, Type: "website"},
		Twitter:     Twitter{Card: card, Image: image},
	}
}
