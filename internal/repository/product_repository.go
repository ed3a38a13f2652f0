package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"emsite/internal/model"
)

// Uma linha por produto: mídias agregadas em JSON, avaliações resumidas em subquery
// para não multiplicar linhas no join.
const listForSitemapQuery = `
	SELECT p.id,
	       p.name,
	       p."updatedAt",
	       p.brand,
	       p.category,
	       p.type,
	       p.stock::text,
	       p.description,
	       p.features,
	       COALESCE(
	           json_agg(json_build_object('url', m.url, 'alt', m.alt, 'type', m.type) ORDER BY m."order")
	               FILTER (WHERE m.id IS NOT NULL),
	           '[]'
	       ) AS media,
	       r.avg_rating,
	       COALESCE(r.review_count, 0) AS review_count
	FROM "Product" p
	LEFT JOIN "Media" m ON m."productId" = p.id
	LEFT JOIN (
	    SELECT "productId", AVG(rating)::float8 AS avg_rating, COUNT(*) AS review_count
	    FROM "Review"
	    GROUP BY "productId"
	) r ON r."productId" = p.id
	GROUP BY p.id, r.avg_rating, r.review_count
`

type ProductRepository struct {
	DB *sql.DB
}

// ListForSitemap returns every product with its media and review aggregates, in database order.
func (r *ProductRepository) ListForSitemap(ctx context.Context) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx, listForSitemapQuery)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var list []model.Product
	for rows.Next() {
		var (
			p                                          model.Product
			updatedAt                                  sql.NullTime
			brand, category, productType, stock, descr sql.NullString
			features, media                            []byte
			avg                                        sql.NullFloat64
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &updatedAt, &brand, &category, &productType, &stock, &descr,
			&features, &media, &avg, &p.ReviewCount,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}

		if updatedAt.Valid {
			t := updatedAt.Time
			p.UpdatedAt = &t
		}
		p.Brand = brand.String
		p.Category = category.String
		p.Type = productType.String
		p.Stock = stock.String
		p.Description = descr.String
		p.Features = decodeFeatures(features)
		if avg.Valid {
			v := avg.Float64
			p.AverageRating = &v
		}

		p.Media, err = decodeMedia(media)
		if err != nil {
			return nil, fmt.Errorf("decode media for product %s: %w", p.ID, err)
		}

		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return list, nil
}

type mediaRow struct {
	URL  *string `json:"url"`
	Alt  *string `json:"alt"`
	Type *string `json:"type"`
}

func decodeMedia(raw []byte) ([]model.Media, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rows []mediaRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	media := make([]model.Media, 0, len(rows))
	for _, row := range rows {
		var m model.Media
		if row.URL != nil {
			m.URL = *row.URL
		}
		if row.Type != nil {
			m.Type = *row.Type
		}
		m.Alt = row.Alt
		media = append(media, m)
	}
	return media, nil
}

// decodeFeatures aceita o JSON livre da coluna features: lista de strings
// ou objeto chave/valor. Qualquer outra coisa vira lista vazia.
func decodeFeatures(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, v := range list {
			if s := featureText(v); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := make([]string, 0, len(keys))
		for _, k := range keys {
			out = append(out, k+": "+featureText(obj[k]))
		}
		return out
	}

	return nil
}

func featureText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}
