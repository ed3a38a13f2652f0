package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"emsite/internal/config"
	"emsite/internal/logger"
	"emsite/internal/observability"
	"emsite/internal/rasterizer"
)

// go run ./cmd/pdfpages --pdf=public/catalogue.pdf --output=public/catalogue-pages --format=webp
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	def := rasterizer.DefaultOptions()

	flags := pflag.NewFlagSet("pdfpages", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	pdfPath := flags.String("pdf", def.PDFPath, "Caminho do arquivo PDF")
	output := flags.String("output", def.OutputDir, "Diretório de saída das imagens")
	zoom := flags.Int("zoom", def.Zoom, "Fator de zoom (1 = 72 DPI)")
	format := flags.String("format", string(def.Format), "Formato das páginas: jpg, png ou webp")
	quality := flags.Int("quality", def.Quality, "Qualidade da imagem (1-100)")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg := config.Load()
	log := logger.NewWithWriter(stderr, cfg.LogLevel)

	opts := rasterizer.Options{
		PDFPath:   *pdfPath,
		OutputDir: *output,
		Zoom:      *zoom,
		Format:    rasterizer.Format(*format),
		Quality:   *quality,
	}

	res, err := rasterizer.NewConverter(log).Convert(ctx, opts)
	if err != nil {
		log.Error("erro ao converter PDF", "error", err)
		fmt.Fprintf(stderr, "Error converting PDF: %v\n", err)
		return 1
	}

	if cfg.PushgatewayURL != "" {
		if err := observability.Push(ctx, cfg.PushgatewayURL, "pdfpages"); err != nil {
			log.Warn("erro ao enviar métricas", "error", err)
		}
	}

	log.Info("conversão finalizada", "pages", res.Pages, "files", len(res.Files))
	return 0
}
