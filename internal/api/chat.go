package api

import (
	"encoding/json"
	"net/http"

	"github.com/hephix/backend/internal/depo"
)

type chatRequest struct {
	Message string `json:"message"`
	Limit   *int   `json:"limit"`
}

type chatResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Chat runs a product search for the message and replies with the formatted
// listing.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be valid JSON"})
		return
	}

	limit := 10
	if req.Limit != nil {
		limit = *req.Limit
	}

	result, err := h.searcher.Search(r.Context(), req.Message, limit)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, chatResponse{Message: depo.FormatForDisplay(result)})
}

// writeSearchError maps the adapter error taxonomy onto HTTP statuses.
func (h *Handler) writeSearchError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case depo.IsInvalidInput(err):
		status = http.StatusBadRequest
	case depo.IsUnavailable(err):
		status = http.StatusServiceUnavailable
	case depo.IsUpstream(err):
		status = http.StatusBadGateway
	}
	if status >= http.StatusInternalServerError {
		h.log.Error(err, "search request failed", "status", status)
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error(err, "writing response body")
	}
}
