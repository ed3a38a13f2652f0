package sitemap

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"emsite/internal/model"
	"emsite/internal/slug"
)

const productPriority = 0.8

// Assemble builds the full URL set: static pages, products in the given order,
// then the trailing search page. Every date-less entry uses runDate.
func Assemble(baseURL string, runDate time.Time, products []model.Product) URLSet {
	base := strings.TrimRight(baseURL, "/")
	today := runDate.Format(DateLayout)

	lead := StaticPages()
	trail := TrailingPages()
	urls := make([]URL, 0, len(lead)+len(products)+len(trail))

	for _, page := range lead {
		urls = append(urls, staticURL(base, today, page))
	}
	for _, p := range products {
		urls = append(urls, productURL(base, today, p))
	}
	for _, page := range trail {
		urls = append(urls, staticURL(base, today, page))
	}

	return NewURLSet(urls)
}

func staticURL(base, today string, page StaticPage) URL {
	return URL{
		Loc:        base + page.Path,
		LastMod:    today,
		ChangeFreq: page.ChangeFreq,
		Priority:   formatPriority(page.Priority),
	}
}

func productURL(base, today string, p model.Product) URL {
	lastmod := today
	if p.UpdatedAt != nil && !p.UpdatedAt.IsZero() {
		lastmod = p.UpdatedAt.Format(DateLayout)
	}

	meta := &ProductMeta{
		Brand:        p.Brand,
		Category:     p.Category,
		Type:         p.Type,
		Availability: p.Stock,
	}
	if p.HasRating() {
		meta.Rating = fmt.Sprintf("%.1f", *p.AverageRating)
		meta.ReviewCount = strconv.Itoa(p.ReviewCount)
	}

	return URL{
		Loc:      ProductLoc(base, p.Name),
		LastMod:  lastmod,
		Priority: formatPriority(productPriority),
		Product:  meta,
		Images:   productImages(base, p),
	}
}

// ProductLoc is the canonical product page URL.
func ProductLoc(base, name string) string {
	return strings.TrimRight(base, "/") + "/product/" + slug.Make(name)
}

func productImages(base string, p model.Product) []Image {
	var images []Image
	for _, m := range p.Media {
		if !m.IsImage() || strings.TrimSpace(m.URL) == "" {
			continue
		}
		caption := p.Name
		if m.Alt != nil {
			caption = *m.Alt
		}
		images = append(images, Image{
			Loc:     AbsoluteURL(base, m.URL),
			Title:   p.SitemapTitle(),
			Caption: caption,
		})
	}
	return images
}

// AbsoluteURL leaves absolute and protocol-relative URLs untouched and joins
// anything else to base with exactly one slash.
func AbsoluteURL(base, raw string) string {
	if strings.HasPrefix(raw, "//") {
		return raw
	}
	if u, err := url.Parse(raw); err == nil && u.IsAbs() {
		return raw
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(raw, "/")
}

func formatPriority(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

// DuplicateSlugs returns the slugs shared by more than one product, with their counts.
// Empty slugs are reported under "".
func DuplicateSlugs(products []model.Product) map[string]int {
	counts := make(map[string]int, len(products))
	for _, p := range products {
		counts[slug.Make(p.Name)]++
	}
	dups := make(map[string]int)
	for s, n := range counts {
		if n > 1 {
			dups[s] = n
		}
	}
	return dups
}
