package sitemap

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emsite/internal/config"
	"emsite/internal/logger"
	"emsite/internal/model"
	"emsite/internal/observability"
)

type fakeSource struct {
	products []model.Product
	err      error
}

func (f *fakeSource) ListForSitemap(context.Context) ([]model.Product, error) {
	return f.products, f.err
}

func connectTo(src ProductSource, connErr error, closed *int) ConnectFunc {
	return func(config.Database) (ProductSource, func() error, error) {
		if connErr != nil {
			return nil, nil, connErr
		}
		return src, func() error { *closed++; return nil }, nil
	}
}

func TestFetcherSuccess(t *testing.T) {
	closed := 0
	want := []model.Product{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
	f := &Fetcher{
		DB:      config.Database{Driver: "postgres", URL: "postgres://localhost/shop"},
		Log:     logger.Discard(),
		Connect: connectTo(&fakeSource{products: want}, nil, &closed),
	}

	got := f.Fetch(context.Background())

	assert.Equal(t, want, got)
	assert.Equal(t, 1, closed)
}

func TestFetcherDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		source     *fakeSource
		connErr    error
		wantClosed int
	}{
		{"missing url", "", &fakeSource{products: []model.Product{{Name: "x"}}}, nil, 0},
		{"connect error", "postgres://db", nil, errors.New("dial tcp: connection refused"), 0},
		{"query error", "postgres://db", &fakeSource{err: errors.New(`relation "Product" does not exist`)}, nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed := 0
			before := testutil.ToFloat64(observability.SitemapFetchFailures)
			f := &Fetcher{
				DB:      config.Database{URL: tt.url},
				Log:     logger.Discard(),
				Connect: connectTo(tt.source, tt.connErr, &closed),
			}

			got := f.Fetch(context.Background())

			require.NotNil(t, got)
			assert.Empty(t, got)
			assert.Equal(t, tt.wantClosed, closed)
			assert.Equal(t, before+1, testutil.ToFloat64(observability.SitemapFetchFailures))
		})
	}
}

func TestConnectPostgresUnknownDriver(t *testing.T) {
	_, _, err := ConnectPostgres(config.Database{Driver: "sqlite", URL: "x"})
	assert.Error(t, err)
}
