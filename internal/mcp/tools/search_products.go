package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hephix/backend/internal/depo"
)

// ProductSearcher is the slice of the depo client the handler needs.
type ProductSearcher interface {
	Search(ctx context.Context, query string, limit int) (depo.SearchResult, error)
}

type SearchProductsHandler struct {
	Service ProductSearcher
}

func (h *SearchProductsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	limit := 10
	if rawLimit, ok := args["limit"].(float64); ok && int(rawLimit) != 0 {
		limit = int(rawLimit)
	}

	result, err := h.Service.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(depo.FormatForDisplay(result)), nil
}
