package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Loads the repo's actual seed tables so a drifted data file fails here
// rather than at startup.
func TestFileStore_LoadsSeedData(t *testing.T) {
	s := NewFileStore("../../data")
	ctx := context.Background()

	campaigns, err := s.LoadCampaigns(ctx)
	assert.NoError(t, err)
	assert.Len(t, campaigns, 3)
	assert.Equal(t, "diwali-2024", campaigns[0].ID)
	assert.Equal(t, "2024-10-15", campaigns[0].StartDate)
	assert.Equal(t, []string{"prod-1", "prod-4", "prod-5", "prod-3"}, campaigns[0].CuratedProductIDs)
	assert.Len(t, campaigns[0].SubCategories, 4)
	assert.Equal(t, "DIWALI15", campaigns[0].OfferCode)
	assert.NotEmpty(t, campaigns[0].Theme.Primary)

	products, images, err := s.LoadCatalog(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 6)
	assert.Len(t, images, 9)
	assert.Equal(t, "banner-diwali", images[0].ID)
}

func TestFileStore_MissingDir(t *testing.T) {
	s := NewFileStore("no-such-dir")

	_, err := s.LoadCampaigns(context.Background())
	assert.Error(t, err)

	_, _, err = s.LoadCatalog(context.Background())
	assert.Error(t, err)
}
