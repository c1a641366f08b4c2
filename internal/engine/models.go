package engine

import "time"

// Campaign is a time-boxed promotional configuration. Records are
// immutable once a snapshot is built; dates carry day granularity only.
type Campaign struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Status            string        `json:"status"`
	StartDate         time.Time     `json:"campaignStartDate"`
	EndDate           time.Time     `json:"campaignEndDate"`
	FestivalDate      time.Time     `json:"festivalDate"`
	Title             string        `json:"title"`
	Subtitle          string        `json:"subtitle"`
	Notification      string        `json:"notification"`
	CollectionID      string        `json:"collectionId"`
	CuratedProductIDs []string      `json:"curatedProductIds"`
	SubCategories     []SubCategory `json:"subCategories,omitempty"`
	OfferCode         string        `json:"offerCode,omitempty"`
	Theme             Theme         `json:"theme"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// SubCategory partitions a campaign's curated products into a named
// facet by tag membership.
type SubCategory struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ProductTags []string `json:"productTags"`
}

// Theme holds the color roles a campaign page renders with.
type Theme struct {
	Background        string `json:"background"`
	Primary           string `json:"primary"`
	PrimaryForeground string `json:"primaryForeground"`
	Accent            string `json:"accent"`
	AccentForeground  string `json:"accentForeground"`
}

type Product struct {
	ID          string     `json:"id"`
	ArtisanID   string     `json:"artisanId"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	ImageURLs   []ImageRef `json:"imageUrls"`
	Tags        []string   `json:"tags,omitempty"`
}

type ImageRef struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Hint string `json:"hint"`
}

// ImageAsset is a standalone image keyed by id.
type ImageAsset struct {
	ID   string `json:"id"`
	URL  string `json:"imageUrl"`
	Hint string `json:"imageHint"`
}

// Catalog is the read-only product and image collections hydration
// joins against.
type Catalog struct {
	Products []Product
	Images   []ImageAsset
}

// HydratedCampaign is a Campaign joined against the catalog: curated
// product ids resolved to full records and the banner asset resolved
// (or substituted with the documented fallback). It is derived per
// request and never cached.
type HydratedCampaign struct {
	Campaign
	Products        []Product `json:"products"`
	BannerImageURL  string    `json:"bannerImageUrl"`
	BannerImageHint string    `json:"bannerImageHint"`
}
