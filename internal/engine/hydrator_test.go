package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog() Catalog {
	return Catalog{
		Products: []Product{
			{ID: "prod-1", Name: "Azure Glaze Pot", Tags: []string{"diya", "decor"}},
			{ID: "prod-2", Name: "Turquoise Dream Necklace", Tags: []string{"gifts-for-her", "eidi"}},
			{ID: "prod-3", Name: "Earthy Tone Woven Throw", Tags: []string{"decor", "gifts-for-family"}},
		},
		Images: []ImageAsset{
			{ID: "banner-diwali", URL: "https://img.example/banner-diwali.jpg", Hint: "diya lamps at night"},
		},
	}
}

func TestHydrate_PreservesCuratedOrder(t *testing.T) {
	c := Campaign{Name: "Diwali", CuratedProductIDs: []string{"prod-3", "prod-1"}}
	h := Hydrate(c, testCatalog())

	// curated order, not catalog order
	assert.Len(t, h.Products, 2)
	assert.Equal(t, "prod-3", h.Products[0].ID)
	assert.Equal(t, "prod-1", h.Products[1].ID)
}

func TestHydrate_DropsUnknownProductIDs(t *testing.T) {
	c := Campaign{Name: "Diwali", CuratedProductIDs: []string{"prod-1", "prod-missing", "prod-2"}}
	h := Hydrate(c, testCatalog())

	assert.Len(t, h.Products, 2)
	assert.Equal(t, "prod-1", h.Products[0].ID)
	assert.Equal(t, "prod-2", h.Products[1].ID)
}

func TestHydrate_BannerResolution(t *testing.T) {
	tests := []struct {
		name     string
		campaign string
		wantURL  string
		wantHint string
	}{
		{"asset present", "Diwali", "https://img.example/banner-diwali.jpg", "diya lamps at night"},
		{"asset absent falls back", "Rakhi", FallbackBannerURL, FallbackBannerHint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Hydrate(Campaign{Name: tt.campaign}, testCatalog())
			assert.Equal(t, tt.wantURL, h.BannerImageURL)
			assert.Equal(t, tt.wantHint, h.BannerImageHint)
			assert.NotEmpty(t, h.BannerImageURL)
		})
	}
}

func TestHydrate_EmptyCatalog(t *testing.T) {
	c := Campaign{Name: "Diwali", CuratedProductIDs: []string{"prod-1"}}
	h := Hydrate(c, Catalog{})

	assert.Empty(t, h.Products)
	assert.Equal(t, FallbackBannerURL, h.BannerImageURL)
}

func TestSubCategoryProducts(t *testing.T) {
	c := Campaign{
		Name:              "Diwali",
		CuratedProductIDs: []string{"prod-1", "prod-2", "prod-3"},
		SubCategories: []SubCategory{
			{ID: "decor", Name: "Festive Home Decor", ProductTags: []string{"decor"}},
			{ID: "mixed", Name: "Mixed", ProductTags: []string{"eidi", "diya"}},
			{ID: "empty", Name: "Empty", ProductTags: []string{"no-such-tag"}},
		},
	}
	h := Hydrate(c, testCatalog())

	tests := []struct {
		sub     string
		wantIDs []string
	}{
		{"decor", []string{"prod-1", "prod-3"}},
		{"mixed", []string{"prod-1", "prod-2"}}, // any one matching tag qualifies
		{"empty", nil},
		{"unknown-sub", nil},
	}
	for _, tt := range tests {
		t.Run(tt.sub, func(t *testing.T) {
			got := h.SubCategoryProducts(tt.sub)
			var ids []string
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
