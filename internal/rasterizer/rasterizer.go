// Package rasterizer renders every page of a PDF catalogue to image files and
// derives the front and back cover images.
package rasterizer

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	"emsite/internal/logger"
	"emsite/internal/observability"
)

const (
	CoverFile = "catalogue-cover.webp"
	BackFile  = "catalogue-back.webp"
)

// Document is the part of a rendered PDF the converter needs; *fitz.Document satisfies it.
type Document interface {
	NumPage() int
	ImageDPI(pageNumber int, dpi float64) (*image.RGBA, error)
	Close() error
}

type OpenFunc func(path string) (Document, error)

// OpenFitz opens path with MuPDF.
func OpenFitz(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

type Converter struct {
	Open     OpenFunc
	Encoders map[Format]EncodeFunc
	Log      *logger.Logger
}

func NewConverter(log *logger.Logger) *Converter {
	return &Converter{Open: OpenFitz, Encoders: defaultEncoders(), Log: log}
}

type Result struct {
	Pages int
	Files []string
}

// Convert writes page-1..page-N in opts.Format, then the two WEBP covers.
// Any failure aborts the run: a partial page set is not usable.
func (c *Converter) Convert(ctx context.Context, opts Options) (Result, error) {
	var res Result
	if err := opts.Validate(); err != nil {
		return res, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("create output directory: %w", err)
	}

	c.Log.Info("convertendo PDF", "pdf", opts.PDFPath, "output", opts.OutputDir, "format", opts.Format, "dpi", opts.DPI())

	doc, err := c.Open(opts.PDFPath)
	if err != nil {
		return res, fmt.Errorf("open %s: %w", opts.PDFPath, err)
	}
	defer doc.Close()

	res.Pages = doc.NumPage()
	var first, last *image.RGBA

	for i := 0; i < res.Pages; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		img, err := doc.ImageDPI(i, opts.DPI())
		if err != nil {
			return res, fmt.Errorf("render page %d: %w", i+1, err)
		}
		if i == 0 {
			first = img
		}
		last = img

		name := fmt.Sprintf("page-%d.%s", i+1, opts.Format)
		if err := c.write(&res, opts.OutputDir, name, img, opts.Format, opts.Quality); err != nil {
			return res, err
		}
	}

	if res.Pages > 0 {
		if err := c.write(&res, opts.OutputDir, CoverFile, first, FormatWEBP, opts.Quality); err != nil {
			return res, err
		}
		if err := c.write(&res, opts.OutputDir, BackFile, last, FormatWEBP, opts.Quality); err != nil {
			return res, err
		}
	}

	c.Log.Info("conversão concluída", "pages", res.Pages, "files", len(res.Files))
	return res, nil
}

func (c *Converter) write(res *Result, dir, name string, img image.Image, format Format, quality int) error {
	encode, ok := c.Encoders[format]
	if !ok {
		return fmt.Errorf("%w: no encoder for %q", ErrInvalidFormat, format)
	}

	path := filepath.Join(dir, name)
	if err := writeImage(path, img, encode, quality); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	res.Files = append(res.Files, path)
	observability.PDFPagesRendered.WithLabelValues(string(format)).Inc()
	c.Log.Debug("imagem salva", "path", path)
	return nil
}

func writeImage(path string, img image.Image, encode EncodeFunc, quality int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w, img, quality); err != nil {
		return err
	}
	return w.Flush()
}
