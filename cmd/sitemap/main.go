package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"emsite/internal/config"
	"emsite/internal/logger"
	"emsite/internal/observability"
	"emsite/internal/sitemap"
)

// go run ./cmd/sitemap  (lê DATABASE_URL do .env, escreve public/sitemap.xml)
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, config.Load()))
}

func run(ctx context.Context, cfg *config.Config) int {
	lg := logger.New(cfg.LogLevel)

	builder := &sitemap.Builder{
		BaseURL:  cfg.BaseURL,
		Path:     cfg.SitemapPath,
		Products: sitemap.NewFetcher(cfg.Database, lg),
		Log:      lg,
	}

	if cfg.RedisURL != "" {
		rec, err := sitemap.NewRedisRecorder(cfg.RedisURL)
		if err != nil {
			lg.Error("REDIS_URL inválida, execução não será registrada", "error", err)
		} else {
			defer rec.Close()
			builder.Recorder = rec
		}
	}

	res, err := builder.Run(ctx)
	if err != nil {
		lg.Error("erro ao gerar sitemap", "error", err)
		return 1
	}

	if cfg.PushgatewayURL != "" {
		if err := observability.Push(ctx, cfg.PushgatewayURL, "sitemap"); err != nil {
			lg.Warn("erro ao enviar métricas", "error", err)
		}
	}

	log.Printf("Sitemap gerado em %s", res.Path)
	log.Printf("%d URLs de produto adicionadas ao sitemap", res.Products)
	return 0
}
