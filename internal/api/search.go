package api

import (
	"net/http"
	"strconv"
)

type productJSON struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	Unit         string `json:"unit,omitempty"`
	Availability string `json:"availability,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Barcode      string `json:"barcode,omitempty"`
}

type searchResponse struct {
	Results []productJSON `json:"results"`
	Total   int           `json:"total"`
}

// Search is the structured variant of Chat: same adapter call, compact JSON
// products instead of display text.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	result, err := h.searcher.Search(r.Context(), query, limit)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	resp := searchResponse{Results: make([]productJSON, 0, len(result.Products)), Total: result.TotalCount}
	for _, p := range result.Products {
		resp.Results = append(resp.Results, productJSON{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			Unit:         p.Unit,
			Availability: p.Availability,
			Thumbnail:    p.Thumbnail,
			Barcode:      p.Barcode,
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}
