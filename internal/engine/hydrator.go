package engine

import "strings"

// Fallback banner values used when no image asset matches the
// campaign's banner key. A missing banner is expected, not an error.
const (
	FallbackBannerURL  = "https://picsum.photos/seed/default-banner/1920/400"
	FallbackBannerHint = "festival banner"
)

// BannerKey derives the image-asset id a campaign's banner is stored
// under: "banner-" + the campaign name lowercased.
func BannerKey(c Campaign) string {
	return "banner-" + strings.ToLower(c.Name)
}

// Hydrate joins a campaign against the catalog. Products are resolved
// in CuratedProductIDs order — the curator's intended display order,
// which centerpiece and sub-category presentation depend on. Ids with
// no catalog record are silently dropped. Hydration cannot fail.
func Hydrate(c Campaign, catalog Catalog) HydratedCampaign {
	byID := make(map[string]*Product, len(catalog.Products))
	for i := range catalog.Products {
		byID[catalog.Products[i].ID] = &catalog.Products[i]
	}

	products := make([]Product, 0, len(c.CuratedProductIDs))
	for _, id := range c.CuratedProductIDs {
		if p, ok := byID[id]; ok {
			products = append(products, *p)
		}
	}

	bannerURL, bannerHint := FallbackBannerURL, FallbackBannerHint
	key := BannerKey(c)
	for i := range catalog.Images {
		if catalog.Images[i].ID == key {
			bannerURL = catalog.Images[i].URL
			bannerHint = catalog.Images[i].Hint
			break
		}
	}

	return HydratedCampaign{
		Campaign:        c,
		Products:        products,
		BannerImageURL:  bannerURL,
		BannerImageHint: bannerHint,
	}
}

// SubCategoryProducts filters the hydrated products down to those whose
// tags intersect the named sub-category's productTags (any one matching
// tag qualifies). Unknown sub-category ids yield an empty slice.
func (h HydratedCampaign) SubCategoryProducts(subCategoryID string) []Product {
	var sub *SubCategory
	for i := range h.SubCategories {
		if h.SubCategories[i].ID == subCategoryID {
			sub = &h.SubCategories[i]
			break
		}
	}
	if sub == nil {
		return nil
	}

	want := make(map[string]struct{}, len(sub.ProductTags))
	for _, t := range sub.ProductTags {
		want[t] = struct{}{}
	}

	var out []Product
	for _, p := range h.Products {
		for _, tag := range p.Tags {
			if _, ok := want[tag]; ok {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
