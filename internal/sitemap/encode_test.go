package sitemap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emsite/internal/model"
)

// Estruturas de leitura com namespaces resolvidos.
type parsedSet struct {
	XMLName xml.Name    `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []parsedURL `xml:"url"`
}

type parsedURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
	Meta       *struct {
		Brand        string  `xml:"https://www.elitemedicaleservices.tn/schemas/sitemap-product/1.0 brand"`
		Availability string  `xml:"https://www.elitemedicaleservices.tn/schemas/sitemap-product/1.0 availability"`
		Rating       *string `xml:"https://www.elitemedicaleservices.tn/schemas/sitemap-product/1.0 rating"`
	} `xml:"https://www.elitemedicaleservices.tn/schemas/sitemap-product/1.0 meta"`
	Images []struct {
		Loc     string `xml:"http://www.google.com/schemas/sitemap-image/1.1 loc"`
		Title   string `xml:"http://www.google.com/schemas/sitemap-image/1.1 title"`
		Caption string `xml:"http://www.google.com/schemas/sitemap-image/1.1 caption"`
	} `xml:"http://www.google.com/schemas/sitemap-image/1.1 image"`
}

func wellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err)
	}
}

func TestEncodeEmptyCatalogue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Assemble(base, runDate, nil)))

	out := buf.Bytes()
	assert.True(t, strings.HasPrefix(string(out), `<?xml version="1.0" encoding="UTF-8"?>`))
	wellFormed(t, out)

	var got parsedSet
	require.NoError(t, xml.Unmarshal(out, &got))
	require.Len(t, got.URLs, 18)
	assert.Equal(t, "daily", got.URLs[0].ChangeFreq)
	assert.Equal(t, "https://example.com/search?q=cpap", got.URLs[17].Loc)
	assert.NotContains(t, string(out), "<image:image>")
	assert.NotContains(t, string(out), "<product:meta>")
}

func TestEncodeProducts(t *testing.T) {
	products := []model.Product{
		{
			Name:          `Lit "Confort" & Co <XL>`,
			Brand:         "Médi&Care",
			Stock:         "IN_STOCK",
			AverageRating: ptr(4.567),
			ReviewCount:   12,
			Media:         []model.Media{{URL: "/img/x.png", Alt: ptr("Lit <vue> & détail")}},
		},
		{Name: "Plain"},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Assemble(base, runDate, products)))
	out := buf.Bytes()
	wellFormed(t, out)

	assert.Contains(t, string(out), `xmlns:image="http://www.google.com/schemas/sitemap-image/1.1"`)
	assert.Contains(t, string(out), "<product:rating>4.6</product:rating>")
	assert.Contains(t, string(out), "<product:reviewCount>12</product:reviewCount>")

	var got parsedSet
	require.NoError(t, xml.Unmarshal(out, &got))
	require.Len(t, got.URLs, 20)

	first := got.URLs[17]
	assert.Equal(t, "https://example.com/product/lit-confort-co-xl", first.Loc)
	require.NotNil(t, first.Meta)
	assert.Equal(t, "Médi&Care", first.Meta.Brand)
	assert.Equal(t, "IN_STOCK", first.Meta.Availability)
	require.NotNil(t, first.Meta.Rating)
	assert.Equal(t, "4.6", *first.Meta.Rating)
	require.Len(t, first.Images, 1)
	assert.Equal(t, "https://example.com/img/x.png", first.Images[0].Loc)
	assert.Equal(t, `Lit "Confort" & Co <XL> | Médi&Care`, first.Images[0].Title)
	assert.Equal(t, "Lit <vue> & détail", first.Images[0].Caption)

	plain := got.URLs[18]
	require.NotNil(t, plain.Meta)
	assert.Nil(t, plain.Meta.Rating)
	assert.Empty(t, plain.Images)
}

func TestWriteFileCreatesDirAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "sitemap.xml")

	require.NoError(t, WriteFile(path, Assemble(base, runDate, []model.Product{{Name: "A"}, {Name: "B"}})))
	require.NoError(t, WriteFile(path, Assemble(base, runDate, nil)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	wellFormed(t, data)
	assert.NotContains(t, string(data), "/product/")
}

func TestWriteFileUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "public")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	err := WriteFile(filepath.Join(blocker, "sitemap.xml"), Assemble(base, runDate, nil))
	assert.ErrorContains(t, err, "create sitemap directory")
}
