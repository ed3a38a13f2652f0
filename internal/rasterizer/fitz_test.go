package rasterizer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emsite/internal/logger"
)

// Duas páginas de 72x72pt, sem xref: o MuPDF reconstrói a tabela ao abrir.
const twoPagePDF = `%PDF-1.4
1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj
2 0 obj << /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >> endobj
3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 72 72] >> endobj
4 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 72 72] >> endobj
trailer << /Root 1 0 R >>
%%EOF
`

func TestConvertWithMuPDF(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "catalogue.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte(twoPagePDF), 0o644))

	opts := DefaultOptions()
	opts.PDFPath = pdf
	opts.OutputDir = filepath.Join(dir, "out")
	opts.Zoom = 1
	opts.Format = FormatPNG

	res, err := NewConverter(logger.Discard()).Convert(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Pages)
	assert.ElementsMatch(t, []string{"page-1.png", "page-2.png", CoverFile, BackFile}, listDir(t, opts.OutputDir))
}

func TestOpenFitzMissingFile(t *testing.T) {
	_, err := OpenFitz(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
