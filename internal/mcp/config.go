package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/hephix/backend/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

// DefaultConfig wires the search tool to the given product searcher and
// configures the stateless streamable HTTP transport.
func DefaultConfig(searcher tools.ProductSearcher) Config {
	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"search_products": &tools.SearchProductsHandler{Service: searcher},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
