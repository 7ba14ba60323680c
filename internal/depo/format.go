package depo

import (
	"fmt"
	"strings"
)

// NoResultsMessage is returned when a search matched nothing.
const NoResultsMessage = "No products found."

// FormatForDisplay renders a SearchResult as a numbered, human-readable
// listing. Absent product fields are left out entirely. The output depends
// only on the SearchResult, so every front-end produces identical text.
func FormatForDisplay(result SearchResult) string {
	if len(result.Products) == 0 {
		return NoResultsMessage
	}

	lines := []string{"Search results from online.depo.lv:", ""}
	for i, p := range result.Products {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, p.Name))
		price := "   Price: " + p.Price
		if p.Unit != "" {
			price += " / " + p.Unit
		}
		lines = append(lines, price)
		if p.Availability != "" {
			lines = append(lines, "   Availability: "+p.Availability)
		}
		if p.Barcode != "" {
			lines = append(lines, "   Barcode: "+p.Barcode)
		}
		if p.Thumbnail != "" {
			lines = append(lines, "   Image: "+p.Thumbnail)
		}
		if i != len(result.Products)-1 {
			lines = append(lines, "")
		}
	}

	if result.TotalCount > len(result.Products) {
		lines = append(lines, "", fmt.Sprintf("(Showing %d results out of %d.)", len(result.Products), result.TotalCount))
	}

	return strings.Join(lines, "\n")
}
