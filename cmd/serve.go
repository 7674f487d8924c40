// Package cmd — serve command.
// Runs the HTTP API so the conversion pipeline can be used from a
// browser or another service.
package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/markconvert/config"
	"github.com/gaurav-prasanna/markconvert/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conversion HTTP API",
	Long: `Serve starts the HTTP API:

  POST /api/import            multipart upload, returns Markdown
  POST /api/export/{format}   Markdown in, file download out
  GET  /health                liveness check

Example:
  markconvert serve --addr 127.0.0.1:5000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from configuration)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagAddr != "" {
		cfg.Addr = flagAddr
	}

	logger := newLogger()
	srv := server.New(buildImporter(cfg, logger), buildEmitters(cfg), logger)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Routes(),
		// Imports can run long; vision transcription is slow.
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 15 * time.Minute,
	}

	logger.Info("listening", "addr", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
