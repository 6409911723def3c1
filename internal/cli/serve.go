package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibedispatch/diffview/internal/api"
	"github.com/vibedispatch/diffview/internal/config"
	"github.com/vibedispatch/diffview/internal/render"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server exposing the diffview engine to the dashboard.

Endpoints:
  GET  /health       — Health check
  POST /api/parse    — Parse a diff into structured files
  POST /api/render   — Render a diff as an HTML fragment
  POST /api/stats    — Aggregate change statistics
  GET  /api/ws       — WebSocket live preview`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("addr", "a", "", "address to listen on (overrides config)")
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (overrides config)")
	serveCmd.Flags().String("config", "", "directory to search for diffview.yaml")
}

func runServe(cmd *cobra.Command, args []string) error {
	configDir, _ := cmd.Flags().GetString("config")

	var paths []string
	if configDir != "" {
		paths = append(paths, configDir)
	}
	cfg, err := config.Load(config.LoaderOptions{ConfigPaths: paths})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	listen := fmt.Sprintf("%s:%d", cfg.Server.Addr, cfg.Server.Port)
	srv := api.New(listen, render.Options{EmptyMessage: cfg.Render.EmptyMessage})
	return srv.ListenAndServe()
}
