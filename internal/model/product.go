package model

import "time"

const MediaTypeImage = "image"

type Media struct {
	URL  string
	Alt  *string // nil quando o alt não foi preenchido
	Type string  // vazio equivale a "image"
}

func (m Media) IsImage() bool {
	return m.Type == "" || m.Type == MediaTypeImage
}

// Product is the read-only view of a catalogue product used to build the sitemap.
type Product struct {
	ID            string
	Name          string
	UpdatedAt     *time.Time
	Brand         string
	Category      string
	Type          string
	Stock         string
	Description   string
	Features      []string
	Media         []Media
	AverageRating *float64
	ReviewCount   int
}

// HasRating reports whether rating fields should be published.
func (p Product) HasRating() bool {
	return p.AverageRating != nil && p.ReviewCount > 0
}

// SitemapTitle is the "{name} | {brand}" title used for image annotations.
func (p Product) SitemapTitle() string {
	return p.Name + " | " + p.Brand
}
