package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hephix/backend/internal/mcp/tools"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		tools.ServerName,
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	definitions := tools.Definitions()
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := definitions[name]
		if !ok {
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio serves the MCP protocol over stdin/stdout, blocking until the
// stream closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
