package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"blueprint/internal/logging"
	"blueprint/internal/metrics"
	mcpserver "blueprint/internal/mcp"
)

var serveFlags struct {
	metricsAddr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio for agent integration",
	Long: `Starts an MCP server over stdin/stdout. Agent clients connect through
their MCP configuration and call the suite tools directly.

The server monitors for parent process death. When the client disconnects
or restarts, the server self-terminates to prevent zombie processes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.metricsAddr, "metrics-addr", "", "Also serve Prometheus metrics on this address (e.g. :9107)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := logging.New("mcp")
	srv := mcpserver.NewServer(version)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchStdin(ctx, nil, cancel)

	if serveFlags.metricsAddr != "" {
		ms := &http.Server{Addr: serveFlags.metricsAddr, Handler: metrics.Handler()}
		go func() {
			logger.Info("serving metrics", "addr", serveFlags.metricsAddr)
			if err := ms.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
			defer stop()
			_ = ms.Shutdown(shutdownCtx)
		}()
	}

	logger.Info("starting blueprint MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
