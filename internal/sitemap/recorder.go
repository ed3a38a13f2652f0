package sitemap

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultRunKey = "sitemap:last_run"
	DefaultRunTTL = 30 * 24 * time.Hour
)

// RunRecorder stores a summary of a finished run somewhere the dashboard can read it.
type RunRecorder interface {
	Record(ctx context.Context, res Result) error
}

type RedisRecorder struct {
	Client *redis.Client
	Key    string
	TTL    time.Duration
}

// NewRedisRecorder accepts either a redis:// URL or a bare host:port address.
func NewRedisRecorder(addr string) (*RedisRecorder, error) {
	opts := &redis.Options{Addr: addr}
	if strings.Contains(addr, "://") {
		var err error
		if opts, err = redis.ParseURL(addr); err != nil {
			return nil, err
		}
	}
	return &RedisRecorder{
		Client: redis.NewClient(opts),
		Key:    DefaultRunKey,
		TTL:    DefaultRunTTL,
	}, nil
}

type runRecord struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Path        string    `json:"path"`
	Products    int       `json:"products"`
	URLs        int       `json:"urls"`
}

func (r *RedisRecorder) Record(ctx context.Context, res Result) error {
	b, err := json.Marshal(runRecord{
		RunID:       res.RunID,
		GeneratedAt: res.GeneratedAt,
		Path:        res.Path,
		Products:    res.Products,
		URLs:        res.URLs,
	})
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, r.Key, b, r.TTL).Err()
}

func (r *RedisRecorder) Close() error {
	return r.Client.Close()
}
