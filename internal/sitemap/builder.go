package sitemap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"emsite/internal/logger"
	"emsite/internal/model"
	"emsite/internal/observability"
)

type ProductFetcher interface {
	Fetch(ctx context.Context) []model.Product
}

type Result struct {
	RunID       string
	GeneratedAt time.Time
	Path        string
	Products    int
	URLs        int
}

// Builder runs one fetch → assemble → write pass.
type Builder struct {
	BaseURL  string
	Path     string
	Products ProductFetcher
	Recorder RunRecorder // opcional
	Log      *logger.Logger
	Now      func() time.Time
}

func (b *Builder) Run(ctx context.Context) (Result, error) {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	res := Result{RunID: uuid.New().String(), GeneratedAt: now(), Path: b.Path}
	log := b.Log.With("run", res.RunID)

	products := b.Products.Fetch(ctx)
	res.Products = len(products)
	observability.SitemapProducts.Set(float64(res.Products))

	for s, n := range DuplicateSlugs(products) {
		log.Warn("slug compartilhado por vários produtos", "slug", s, "count", n)
	}

	set := Assemble(b.BaseURL, res.GeneratedAt, products)
	res.URLs = len(set.URLs)

	if err := WriteFile(b.Path, set); err != nil {
		return res, fmt.Errorf("write sitemap: %w", err)
	}
	observability.SitemapURLs.Set(float64(res.URLs))
	observability.SitemapLastSuccess.Set(float64(res.GeneratedAt.Unix()))
	log.Info("sitemap gerado", "path", res.Path, "products", res.Products, "urls", res.URLs)

	if b.Recorder != nil {
		if err := b.Recorder.Record(ctx, res); err != nil {
			log.Warn("erro ao registrar execução", "error", err)
		}
	}

	return res, nil
}
