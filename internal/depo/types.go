// Package depo implements product search against the online.depo.lv
// GraphQL storefront and the display formatting shared by every front-end.
package depo

// Product is one storefront item as surfaced to callers. Name is always
// populated; every other field may be empty and must then be omitted from
// any rendering.
type Product struct {
	ID           string
	Name         string
	Price        string
	Unit         string
	Availability string
	Barcode      string
	Thumbnail    string
}

// SearchResult holds the products for one search in upstream order, plus
// the upstream total match count.
type SearchResult struct {
	Products   []Product
	TotalCount int
}
