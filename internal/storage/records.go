package storage

// Raw rows as stored. Dates travel as YYYY-MM-DD strings and are parsed
// and validated when the engine builds its snapshot, so a malformed date
// is caught at load time rather than corrupting interval comparisons.

type CampaignRow struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Status            string           `json:"status"` // "active" | "inactive"
	StartDate         string           `json:"campaignStartDate"`
	EndDate           string           `json:"campaignEndDate"`
	FestivalDate      string           `json:"festivalDate"`
	Title             string           `json:"title"`
	Subtitle          string           `json:"subtitle"`
	Notification      string           `json:"notification"`
	CollectionID      string           `json:"collectionId"`
	CuratedProductIDs []string         `json:"curatedProductIds"`
	SubCategories     []SubCategoryRow `json:"subCategories,omitempty"`
	OfferCode         string           `json:"offerCode,omitempty"`
	Theme             ThemeRow         `json:"theme"`
}

type SubCategoryRow struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ProductTags []string `json:"productTags"`
}

type ThemeRow struct {
	Background        string `json:"background"`
	Primary           string `json:"primary"`
	PrimaryForeground string `json:"primaryForeground"`
	Accent            string `json:"accent"`
	AccentForeground  string `json:"accentForeground"`
}

type ProductRow struct {
	ID          string        `json:"id"`
	ArtisanID   string        `json:"artisanId"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	ImageURLs   []ImageRefRow `json:"imageUrls"`
	Tags        []string      `json:"tags,omitempty"`
}

type ImageRefRow struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Hint string `json:"hint"`
}

// ImageRow is a standalone image asset keyed by id (banner lookups use
// the convention "banner-<campaign name lowercased>").
type ImageRow struct {
	ID   string `json:"id"`
	URL  string `json:"imageUrl"`
	Hint string `json:"imageHint"`
}
