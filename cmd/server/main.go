package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hephix/backend/internal/api"
	"github.com/hephix/backend/internal/config"
	"github.com/hephix/backend/internal/depo"
	"github.com/hephix/backend/internal/logging"
	"github.com/hephix/backend/internal/mcp"
	"github.com/hephix/backend/internal/server"
)

func main() {
	root := &cobra.Command{
		Use:   "server",
		Short: "Product search HTTP API and MCP server",
		RunE:  run,
	}

	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("cors-origins", "", "Comma-separated allowed CORS origins")
	root.PersistentFlags().String("graphql-endpoint", "", "Upstream GraphQL endpoint URL")
	root.PersistentFlags().Duration("upstream-timeout", 10*time.Second, "Upstream call timeout")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	baseLogger := logging.New(logging.NewLogr(config.LogLevel()))

	client := depo.NewClient(config.GraphQLEndpoint(), config.UpstreamTimeout(), baseLogger.WithName("depo"))
	mcpServer := mcp.New(mcp.DefaultConfig(client))
	router := api.NewRouter(client, mcpServer.Handler, config.CORSOrigins(), baseLogger.WithName("api"))

	addr := config.HTTPHost() + ":" + strconv.Itoa(config.HTTPPort())
	srv := server.New(addr, router, baseLogger.WithName("http"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	case err := <-errCh:
		return err
	}
}
