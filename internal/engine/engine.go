package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"festival-campaign-engine/internal/cache"
	"festival-campaign-engine/internal/storage"
)

// Source is anything that can produce the campaign table and catalog
// collections (file-backed store, Postgres-backed store, test fake).
type Source interface {
	LoadCampaigns(ctx context.Context) ([]storage.CampaignRow, error)
	LoadCatalog(ctx context.Context) ([]storage.ProductRow, []storage.ImageRow, error)
}

type snapshot struct {
	campaigns []Campaign
	catalog   Catalog
}

// Engine exposes read-only, lock-free campaign resolution over an
// immutable snapshot. Resolution itself recomputes on every call; only
// the snapshot is shared, and it is swapped atomically.
type Engine struct {
	snap cache.Snapshot[snapshot]
	now  func() time.Time
}

func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock fixes the engine's notion of "now" for tests.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

const dateLayout = "2006-01-02"

// BuildSnapshot loads campaigns and catalog from the source, validates
// them, and swaps the result in. A malformed date or an end date before
// its start date is a configuration error and fails the build; campaign
// ids pointing at unknown products are tolerated (hydration drops them).
func (e *Engine) BuildSnapshot(ctx context.Context, src Source) error {
	rows, err := src.LoadCampaigns(ctx)
	if err != nil {
		return fmt.Errorf("load campaigns: %w", err)
	}
	products, images, err := src.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	campaigns := make([]Campaign, 0, len(rows))
	for _, r := range rows {
		c, err := campaignFromRow(r)
		if err != nil {
			return err
		}
		campaigns = append(campaigns, c)
	}

	snap := snapshot{campaigns: campaigns, catalog: catalogFromRows(products, images)}
	e.snap.Store(snap)
	log.Debug().
		Int("campaigns", len(campaigns)).
		Int("products", len(snap.catalog.Products)).
		Int("images", len(snap.catalog.Images)).
		Msg("campaign snapshot built")
	return nil
}

func campaignFromRow(r storage.CampaignRow) (Campaign, error) {
	start, err := parseDay(r.ID, "campaignStartDate", r.StartDate)
	if err != nil {
		return Campaign{}, err
	}
	end, err := parseDay(r.ID, "campaignEndDate", r.EndDate)
	if err != nil {
		return Campaign{}, err
	}
	festival, err := parseDay(r.ID, "festivalDate", r.FestivalDate)
	if err != nil {
		return Campaign{}, err
	}
	if end.Before(start) {
		return Campaign{}, fmt.Errorf("campaign %s: end date %s before start date %s",
			r.ID, r.EndDate, r.StartDate)
	}

	subs := make([]SubCategory, 0, len(r.SubCategories))
	for _, s := range r.SubCategories {
		subs = append(subs, SubCategory{ID: s.ID, Name: s.Name, ProductTags: s.ProductTags})
	}
	if len(subs) == 0 {
		subs = nil
	}

	return Campaign{
		ID:                r.ID,
		Name:              r.Name,
		Status:            r.Status,
		StartDate:         start,
		EndDate:           end,
		FestivalDate:      festival,
		Title:             r.Title,
		Subtitle:          r.Subtitle,
		Notification:      r.Notification,
		CollectionID:      r.CollectionID,
		CuratedProductIDs: r.CuratedProductIDs,
		SubCategories:     subs,
		OfferCode:         r.OfferCode,
		Theme: Theme{
			Background:        r.Theme.Background,
			Primary:           r.Theme.Primary,
			PrimaryForeground: r.Theme.PrimaryForeground,
			Accent:            r.Theme.Accent,
			AccentForeground:  r.Theme.AccentForeground,
		},
	}, nil
}

func parseDay(campaignID, field, raw string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("campaign %s: malformed %s %q: %w", campaignID, field, raw, err)
	}
	return t, nil
}

func catalogFromRows(products []storage.ProductRow, images []storage.ImageRow) Catalog {
	cat := Catalog{
		Products: make([]Product, 0, len(products)),
		Images:   make([]ImageAsset, 0, len(images)),
	}
	for _, p := range products {
		refs := make([]ImageRef, 0, len(p.ImageURLs))
		for _, r := range p.ImageURLs {
			refs = append(refs, ImageRef{ID: r.ID, URL: r.URL, Hint: r.Hint})
		}
		cat.Products = append(cat.Products, Product{
			ID:          p.ID,
			ArtisanID:   p.ArtisanID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			ImageURLs:   refs,
			Tags:        p.Tags,
		})
	}
	for _, img := range images {
		cat.Images = append(cat.Images, ImageAsset{ID: img.ID, URL: img.URL, Hint: img.Hint})
	}
	return cat
}

// Current resolves and hydrates the campaign active right now, or nil
// when none is.
func (e *Engine) Current(_ context.Context) *HydratedCampaign {
	s, ok := e.snap.Load()
	if !ok {
		return nil
	}
	c := ResolveActive(s.campaigns, e.now())
	if c == nil {
		return nil
	}
	h := Hydrate(*c, s.catalog)
	return &h
}

// ByCollectionID resolves and hydrates a campaign by collection id,
// regardless of status or date window, or nil when unknown.
func (e *Engine) ByCollectionID(_ context.Context, collectionID string) *HydratedCampaign {
	s, ok := e.snap.Load()
	if !ok {
		return nil
	}
	c := ResolveByCollectionID(s.campaigns, collectionID)
	if c == nil {
		return nil
	}
	h := Hydrate(*c, s.catalog)
	return &h
}
