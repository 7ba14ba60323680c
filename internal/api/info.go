package api

import (
	"net/http"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hephix/backend/internal/mcp/tools"
)

type healthResponse struct {
	Status string `json:"status"`
}

type toolDescriptor struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	InputSchema mcp.ToolInputSchema `json:"input_schema"`
}

type mcpInfoResponse struct {
	MCPEnabled bool             `json:"mcp_enabled"`
	ServerName string           `json:"server_name"`
	Tools      []toolDescriptor `json:"tools"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

// MCPInfo renders the capability descriptor from the same tool registry the
// MCP server registers from.
func (h *Handler) MCPInfo(w http.ResponseWriter, r *http.Request) {
	definitions := tools.Definitions()

	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	descriptors := make([]toolDescriptor, 0, len(names))
	for _, name := range names {
		tool := definitions[name]
		descriptors = append(descriptors, toolDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		})
	}

	h.writeJSON(w, http.StatusOK, mcpInfoResponse{
		MCPEnabled: true,
		ServerName: tools.ServerName,
		Tools:      descriptors,
	})
}
