package depo

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// parseProducts maps the raw products payload to a SearchResult. The
// storefront is sloppy about shapes (prices arrives as either an object or
// an array, ids as numbers), so the document is walked with gjson instead of
// decoded into rigid structs.
func parseProducts(raw []byte, limit int) SearchResult {
	doc := gjson.ParseBytes(raw)

	result := SearchResult{
		Products:   []Product{},
		TotalCount: int(doc.Get("pageInfo.totalCount").Int()),
	}

	doc.Get("edges").ForEach(func(_, edge gjson.Result) bool {
		if len(result.Products) >= limit {
			return false
		}
		node := edge.Get("node")
		if !node.Exists() {
			return true
		}

		name := node.Get("name").String()
		if name == "" {
			name = "Unknown Product"
		}
		price, unit := pickPrice(node.Get("prices"))
		thumbnail := node.Get("thumbnailPictureUrl").String()
		if thumbnail == "" {
			thumbnail = node.Get("cardThumbnailPictureUrl").String()
		}

		result.Products = append(result.Products, Product{
			ID:           node.Get("id").String(),
			Name:         name,
			Price:        price,
			Unit:         unit,
			Availability: summarizeStock(node.Get("stockItems")),
			Barcode:      node.Get("primaryBarcode").String(),
			Thumbnail:    thumbnail,
		})
		return true
	})

	return result
}

// pickPrice selects a display price. Yellow (regular) prices win over orange
// (promotional) ones across all price entries.
func pickPrice(prices gjson.Result) (string, string) {
	var items []gjson.Result
	switch {
	case prices.IsArray():
		items = prices.Array()
	case prices.IsObject():
		items = []gjson.Result{prices}
	}

	for _, tier := range []string{"yellow", "orange"} {
		for _, item := range items {
			if v := item.Get(tier + ".priceWithVat"); v.Exists() {
				return "€" + v.String(), item.Get(tier + ".unit").String()
			}
		}
	}
	return "Price not available", ""
}

// summarizeStock folds stock items into a single availability line. No stock
// items at all means availability is unknown and stays empty.
func summarizeStock(stockItems gjson.Result) string {
	if !stockItems.IsArray() || len(stockItems.Array()) == 0 {
		return ""
	}

	var total float64
	for _, item := range stockItems.Array() {
		total += item.Get("quantity").Float()
	}
	if total <= 0 {
		return "Out of stock"
	}
	return fmt.Sprintf("In stock (%d total)", int(total))
}
