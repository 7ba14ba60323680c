// Package api exposes the product search capability over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hephix/backend/internal/depo"
	"github.com/hephix/backend/internal/logging"
)

// ProductSearcher is the slice of the depo client the HTTP handlers need.
type ProductSearcher interface {
	Search(ctx context.Context, query string, limit int) (depo.SearchResult, error)
}

type Handler struct {
	searcher ProductSearcher
	log      logging.Logger
}

// NewRouter assembles the HTTP surface: the chat and structured search
// endpoints, health, the MCP capability descriptor and, when given, the
// mounted MCP JSON-RPC handler.
func NewRouter(searcher ProductSearcher, mcpHandler http.Handler, corsOrigins []string, log logging.Logger) http.Handler {
	h := &Handler{searcher: searcher, log: log}

	r := chi.NewRouter()
	r.Use(CORS(corsOrigins))

	r.Get("/health", h.Health)
	r.Get("/mcp/info", h.MCPInfo)
	r.Post("/chat", h.Chat)
	r.Get("/search", h.Search)
	if mcpHandler != nil {
		r.Handle("/mcp/jsonrpc", mcpHandler)
	}

	return r
}
