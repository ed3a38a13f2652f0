package sitemap

import (
	"context"
	"errors"

	"emsite/internal/config"
	"emsite/internal/db"
	"emsite/internal/logger"
	"emsite/internal/model"
	"emsite/internal/observability"
	"emsite/internal/repository"
)

// ProductSource is the query side of the product repository.
type ProductSource interface {
	ListForSitemap(ctx context.Context) ([]model.Product, error)
}

// ConnectFunc opens a product source and returns the function that releases it.
type ConnectFunc func(cfg config.Database) (ProductSource, func() error, error)

// Fetcher loads products for one run. It never fails: a missing URL, a connection
// error or a query error is logged and yields an empty list, so the sitemap is still
// written with the static pages only.
type Fetcher struct {
	DB      config.Database
	Log     *logger.Logger
	Connect ConnectFunc
}

func NewFetcher(cfg config.Database, log *logger.Logger) *Fetcher {
	return &Fetcher{DB: cfg, Log: log, Connect: ConnectPostgres}
}

// ConnectPostgres opens a database/sql handle with the configured driver.
func ConnectPostgres(cfg config.Database) (ProductSource, func() error, error) {
	conn, err := db.Open(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	return &repository.ProductRepository{DB: conn}, conn.Close, nil
}

func (f *Fetcher) Fetch(ctx context.Context) []model.Product {
	products, err := f.fetch(ctx)
	if err != nil {
		observability.SitemapFetchFailures.Inc()
		f.Log.Error("erro ao buscar produtos, sitemap terá só páginas estáticas", "error", err)
		return []model.Product{}
	}
	f.Log.Info("produtos encontrados no banco", "count", len(products))
	return products
}

func (f *Fetcher) fetch(ctx context.Context) (products []model.Product, err error) {
	if f.DB.URL == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	connect := f.Connect
	if connect == nil {
		connect = ConnectPostgres
	}
	src, release, err := connect(f.DB)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := release(); cerr != nil {
			f.Log.Warn("erro ao fechar conexão", "error", cerr)
		}
	}()

	return src.ListForSitemap(ctx)
}
