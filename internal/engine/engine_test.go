package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"festival-campaign-engine/internal/storage"
)

type fakeSource struct {
	campaigns []storage.CampaignRow
	products  []storage.ProductRow
	images    []storage.ImageRow
	err       error
}

func (f *fakeSource) LoadCampaigns(context.Context) ([]storage.CampaignRow, error) {
	return f.campaigns, f.err
}

func (f *fakeSource) LoadCatalog(context.Context) ([]storage.ProductRow, []storage.ImageRow, error) {
	return f.products, f.images, f.err
}

func validRow() storage.CampaignRow {
	return storage.CampaignRow{
		ID:                "diwali-2024",
		Name:              "Diwali",
		Status:            "active",
		StartDate:         "2024-10-15",
		EndDate:           "2024-11-05",
		FestivalDate:      "2024-11-01",
		CollectionID:      "diwali-gifting-2024",
		CuratedProductIDs: []string{"prod-1"},
	}
}

func TestBuildSnapshot_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*storage.CampaignRow)
	}{
		{"malformed start date", func(r *storage.CampaignRow) { r.StartDate = "15-10-2024" }},
		{"malformed end date", func(r *storage.CampaignRow) { r.EndDate = "soon" }},
		{"malformed festival date", func(r *storage.CampaignRow) { r.FestivalDate = "2024-13-40" }},
		{"end before start", func(r *storage.CampaignRow) { r.EndDate = "2024-10-01" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(&row)
			eng := New()
			err := eng.BuildSnapshot(context.Background(), &fakeSource{campaigns: []storage.CampaignRow{row}})
			assert.Error(t, err)
		})
	}
}

func TestBuildSnapshot_UnknownCuratedIDTolerated(t *testing.T) {
	row := validRow()
	row.CuratedProductIDs = []string{"prod-1", "prod-ghost"}
	src := &fakeSource{
		campaigns: []storage.CampaignRow{row},
		products:  []storage.ProductRow{{ID: "prod-1", Name: "Azure Glaze Pot"}},
	}

	eng := NewWithClock(func() time.Time { return day("2024-10-20") })
	assert.NoError(t, eng.BuildSnapshot(context.Background(), src))

	h := eng.Current(context.Background())
	if assert.NotNil(t, h) {
		assert.Len(t, h.Products, 1)
		assert.Equal(t, "prod-1", h.Products[0].ID)
	}
}

func TestEngine_Current(t *testing.T) {
	src := &fakeSource{
		campaigns: []storage.CampaignRow{validRow()},
		products:  []storage.ProductRow{{ID: "prod-1", Name: "Azure Glaze Pot"}},
		images:    []storage.ImageRow{{ID: "banner-diwali", URL: "https://img.example/d.jpg", Hint: "diyas"}},
	}

	tests := []struct {
		name    string
		now     time.Time
		wantHit bool
	}{
		{"inside window", day("2024-10-20"), true},
		{"outside window", day("2024-12-01"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := NewWithClock(func() time.Time { return tt.now })
			assert.NoError(t, eng.BuildSnapshot(context.Background(), src))

			h := eng.Current(context.Background())
			if !tt.wantHit {
				assert.Nil(t, h)
				return
			}
			if assert.NotNil(t, h) {
				assert.Equal(t, "diwali-2024", h.ID)
				assert.Equal(t, "https://img.example/d.jpg", h.BannerImageURL)
				assert.Len(t, h.Products, 1)
			}
		})
	}
}

func TestEngine_ByCollectionID_IgnoresWindow(t *testing.T) {
	row := validRow()
	row.Status = "inactive"
	src := &fakeSource{campaigns: []storage.CampaignRow{row}}

	// clock far outside the window
	eng := NewWithClock(func() time.Time { return day("2030-01-01") })
	assert.NoError(t, eng.BuildSnapshot(context.Background(), src))

	h := eng.ByCollectionID(context.Background(), "diwali-gifting-2024")
	if assert.NotNil(t, h) {
		assert.Equal(t, "diwali-2024", h.ID)
		assert.Equal(t, FallbackBannerURL, h.BannerImageURL)
	}
	assert.Nil(t, eng.ByCollectionID(context.Background(), "no-such-collection"))
}

func TestEngine_EmptySnapshot(t *testing.T) {
	eng := New()
	assert.Nil(t, eng.Current(context.Background()))
	assert.Nil(t, eng.ByCollectionID(context.Background(), "x"))
}
