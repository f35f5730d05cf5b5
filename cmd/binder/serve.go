package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kian234-lab/smart-pdf-merger/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the binder server",
	Long: `Start the binder HTTP server.

The server hosts the upload form and the bundling API:
  - /            - upload form
  - /health      - server health check
  - /api/limits  - upload limits and option defaults
  - /api/bundle  - POST multipart files, receive the merged PDF

Examples:
  binder serve                   # Start on default port 8080
  binder serve --port 3000       # Start on custom port
  binder serve --host 0.0.0.0    # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		cm, err := loadConfig()
		if err != nil {
			return err
		}

		srv, err := server.New(server.Config{
			Host:          serveHost,
			Port:          servePort,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config)")
}
