// Package sitemap builds the site's sitemap.xml from the curated static pages
// and the product catalogue.
package sitemap

import "encoding/xml"

const (
	NamespaceSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	NamespaceImage   = "http://www.google.com/schemas/sitemap-image/1.1"
	NamespaceProduct = "https://www.elitemedicaleservices.tn/schemas/sitemap-product/1.0"

	DateLayout = "2006-01-02"
)

type URLSet struct {
	XMLName      xml.Name `xml:"urlset"`
	Xmlns        string   `xml:"xmlns,attr"`
	XmlnsImage   string   `xml:"xmlns:image,attr"`
	XmlnsProduct string   `xml:"xmlns:product,attr"`
	URLs         []URL    `xml:"url"`
}

func NewURLSet(urls []URL) URLSet {
	return URLSet{
		Xmlns:        NamespaceSitemap,
		XmlnsImage:   NamespaceImage,
		XmlnsProduct: NamespaceProduct,
		URLs:         urls,
	}
}

// URL is one <url> entry.
type URL struct {
	Loc        string       `xml:"loc"`
	LastMod    string       `xml:"lastmod"`
	ChangeFreq string       `xml:"changefreq,omitempty"`
	Priority   string       `xml:"priority"`
	Product    *ProductMeta `xml:"product:meta,omitempty"`
	Images     []Image      `xml:"image:image"`
}

// ProductMeta is always present on product entries. Rating and ReviewCount
// stay empty (and are omitted) unless the product has reviews.
type ProductMeta struct {
	Brand        string `xml:"product:brand"`
	Category     string `xml:"product:category"`
	Type         string `xml:"product:type"`
	Availability string `xml:"product:availability"`
	Rating       string `xml:"product:rating,omitempty"`
	ReviewCount  string `xml:"product:reviewCount,omitempty"`
}

type Image struct {
	Loc     string `xml:"image:loc"`
	Title   string `xml:"image:title"`
	Caption string `xml:"image:caption"`
}
