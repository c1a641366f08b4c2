package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"festival-campaign-engine/internal/config"
)

// PGStore backs the campaign and catalog tables with Postgres, for
// deployments where campaigns are edited in a CMS. Row changes are
// pushed to the engine via LISTEN/NOTIFY (see internal/listener).
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(ctx context.Context, cfg config.Config) (*PGStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres DSN: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Postgres.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Postgres.MaxIdleConns)
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	return &PGStore{pool: pool}, nil
}

func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// LoadCampaigns loads every campaign row in declaration order. The
// position column is the declaration order the resolver's tie-break
// depends on; inactive campaigns are loaded too since the collection-id
// lookup must see them.
func (s *PGStore) LoadCampaigns(ctx context.Context) ([]CampaignRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT id, name, status,
		       start_date, end_date, festival_date,
		       title, subtitle, notification, collection_id,
		       curated_product_ids, sub_categories, offer_code, theme
		FROM campaigns
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	defer rows.Close()

	var out []CampaignRow
	for rows.Next() {
		var (
			c                   CampaignRow
			curated, subs, thm  []byte
			offer               sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Status,
			&c.StartDate, &c.EndDate, &c.FestivalDate,
			&c.Title, &c.Subtitle, &c.Notification, &c.CollectionID,
			&curated, &subs, &offer, &thm); err != nil {
			return nil, fmt.Errorf("scan campaign row: %w", err)
		}
		if err := json.Unmarshal(curated, &c.CuratedProductIDs); err != nil {
			return nil, fmt.Errorf("campaign %s curated ids: %w", c.ID, err)
		}
		if len(subs) > 0 {
			if err := json.Unmarshal(subs, &c.SubCategories); err != nil {
				return nil, fmt.Errorf("campaign %s sub categories: %w", c.ID, err)
			}
		}
		if err := json.Unmarshal(thm, &c.Theme); err != nil {
			return nil, fmt.Errorf("campaign %s theme: %w", c.ID, err)
		}
		if offer.Valid {
			c.OfferCode = offer.String
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PGStore) LoadCatalog(ctx context.Context) ([]ProductRow, []ImageRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	prows, err := s.pool.Query(ctx, `
		SELECT id, artisan_id, name, category, description,
		       price, stock, image_urls, tags
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("query products: %w", err)
	}
	defer prows.Close()

	var products []ProductRow
	for prows.Next() {
		var (
			p            ProductRow
			imgs, tags   []byte
		)
		if err := prows.Scan(&p.ID, &p.ArtisanID, &p.Name, &p.Category,
			&p.Description, &p.Price, &p.Stock, &imgs, &tags); err != nil {
			return nil, nil, fmt.Errorf("scan product row: %w", err)
		}
		if err := json.Unmarshal(imgs, &p.ImageURLs); err != nil {
			return nil, nil, fmt.Errorf("product %s images: %w", p.ID, err)
		}
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &p.Tags); err != nil {
				return nil, nil, fmt.Errorf("product %s tags: %w", p.ID, err)
			}
		}
		products = append(products, p)
	}
	if err := prows.Err(); err != nil {
		return nil, nil, err
	}

	irows, err := s.pool.Query(ctx, `SELECT id, image_url, image_hint FROM images`)
	if err != nil {
		return nil, nil, fmt.Errorf("query images: %w", err)
	}
	defer irows.Close()

	var images []ImageRow
	for irows.Next() {
		var img ImageRow
		if err := irows.Scan(&img.ID, &img.URL, &img.Hint); err != nil {
			return nil, nil, fmt.Errorf("scan image row: %w", err)
		}
		images = append(images, img)
	}
	return products, images, irows.Err()
}

func (s *PGStore) ListenChannel() string {
	return "campaign_data_change"
}

func (s *PGStore) PgxPool() *pgxpool.Pool {
	if s.pool == nil {
		panic(errors.New("pgx pool is nil"))
	}
	return s.pool
}
