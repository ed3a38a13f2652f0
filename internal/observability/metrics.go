package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Registry holds the collectors of both batch tools; Push sends it to the Pushgateway.
var Registry = prometheus.NewRegistry()

var (
	SitemapURLs = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sitemap_urls",
			Help: "Número de <url> no último sitemap gerado",
		},
	)
	SitemapProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sitemap_products_fetched",
			Help: "Produtos retornados pelo banco na última execução",
		},
	)
	SitemapFetchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sitemap_fetch_failures_total",
			Help: "Falhas ao buscar produtos (sitemap gerado só com páginas estáticas)",
		},
	)
	SitemapLastSuccess = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sitemap_last_success_timestamp_seconds",
			Help: "Unix time da última escrita bem-sucedida do sitemap",
		},
	)
	PDFPagesRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdf_pages_rendered_total",
			Help: "Imagens escritas pelo conversor de PDF",
		},
		[]string{"format"},
	)
)

func init() {
	Registry.MustRegister(SitemapURLs, SitemapProducts, SitemapFetchFailures, SitemapLastSuccess, PDFPagesRendered)
}

// Push sends the current values to a Prometheus Pushgateway under the given job name.
func Push(ctx context.Context, url, job string) error {
	return push.New(url, job).Gatherer(Registry).PushContext(ctx)
}
