// Standalone MCP entrypoint serving the search tool over stdio, for clients
// that launch tool servers as subprocesses.
package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/hephix/backend/internal/config"
	"github.com/hephix/backend/internal/depo"
	"github.com/hephix/backend/internal/logging"
	"github.com/hephix/backend/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-server",
		Short: "Product search MCP server (stdio transport)",
		RunE:  run,
	}

	root.PersistentFlags().String("graphql-endpoint", "", "Upstream GraphQL endpoint URL")
	root.PersistentFlags().Duration("upstream-timeout", 10*time.Second, "Upstream call timeout")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// zap writes to stderr, keeping stdout clean for the protocol stream.
	baseLogger := logging.New(logging.NewLogr(config.LogLevel()))

	client := depo.NewClient(config.GraphQLEndpoint(), config.UpstreamTimeout(), baseLogger.WithName("depo"))
	srv := mcp.New(mcp.DefaultConfig(client))

	baseLogger.Info("starting MCP server on stdio")
	return srv.ServeStdio()
}
