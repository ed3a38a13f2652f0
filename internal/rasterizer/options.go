package rasterizer

import (
	"errors"
	"fmt"
)

type Format string

const (
	FormatJPG  Format = "jpg"
	FormatPNG  Format = "png"
	FormatWEBP Format = "webp"
)

var (
	ErrInvalidFormat  = errors.New("invalid image format")
	ErrInvalidQuality = errors.New("invalid quality")
	ErrInvalidZoom    = errors.New("invalid zoom")
)

// Formats lists the accepted output formats, in help-text order.
func Formats() []Format {
	return []Format{FormatJPG, FormatPNG, FormatWEBP}
}

type Options struct {
	PDFPath   string
	OutputDir string
	Zoom      int // 1 = 72 DPI
	Format    Format
	Quality   int // 1-100; ignorado pelo PNG
}

func DefaultOptions() Options {
	return Options{
		PDFPath:   "catalogue.pdf",
		OutputDir: "catalogue-pages",
		Zoom:      3,
		Format:    FormatWEBP,
		Quality:   90,
	}
}

func (o Options) Validate() error {
	switch o.Format {
	case FormatJPG, FormatPNG, FormatWEBP:
	default:
		return fmt.Errorf("%w: %q (want jpg, png or webp)", ErrInvalidFormat, o.Format)
	}
	if o.Quality < 1 || o.Quality > 100 {
		return fmt.Errorf("%w: %d (want 1-100)", ErrInvalidQuality, o.Quality)
	}
	if o.Zoom < 1 {
		return fmt.Errorf("%w: %d (want >= 1)", ErrInvalidZoom, o.Zoom)
	}
	return nil
}

// DPI converts the zoom factor to a render resolution.
func (o Options) DPI() float64 {
	return float64(72 * o.Zoom)
}
