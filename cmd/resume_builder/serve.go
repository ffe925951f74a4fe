package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort  int
	serveStore string
	serveDBURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes keyword extraction, ATS scoring, suggestions,
and document storage. Document writes require JWT_SECRET to be set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveStore, "store", "", "SQLite file for saved documents (default from config)")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL URL (overrides --store and DATABASE_URL)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := servePort
	if port == 0 {
		port = cfg.Port
	}

	store, err := openStore(context.Background(), cfg, serveStore, serveDBURL)
	if err != nil {
		return err
	}

	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		log.Printf("[http] %v", err)
		jwtCfg = nil
	}

	srv, err := server.New(server.Config{
		Port:         port,
		Store:        store,
		JWT:          jwtCfg,
		MissingLimit: cfg.MissingLimit,
	})
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
