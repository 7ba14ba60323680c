// Package tools holds the tool registry and handlers exposed over MCP.
package tools

import "github.com/mark3labs/mcp-go/mcp"

// ServerName identifies this MCP server to clients.
const ServerName = "depo-store"

// Definitions returns the registry of exposed tools keyed by name. The same
// registry backs MCP tool registration and the HTTP capability descriptor,
// so both surfaces always advertise identical schemas.
func Definitions() map[string]mcp.Tool {
	return map[string]mcp.Tool{
		"search_products": mcp.NewTool("search_products",
			mcp.WithDescription("Search for products on online.depo.lv via GraphQL"),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search query"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results (1-50, default: 10)"),
			),
		),
	}
}
