// ABOUTME: Serve command exposing the analysis pipeline over HTTP
// ABOUTME: Wires config, cache, engine, capturer, handlers, and middleware

package cmd

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/scttfrdmn/aws-research-wizard-sub000/cache"
	"github.com/scttfrdmn/aws-research-wizard-sub000/config"
	"github.com/scttfrdmn/aws-research-wizard-sub000/handlers"
	"github.com/scttfrdmn/aws-research-wizard-sub000/middleware"
	"github.com/scttfrdmn/aws-research-wizard-sub000/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP API",
	Long: `Serve exposes the pipeline over HTTP for portal integration:

  GET  /api/health
  GET  /api/catalog
  POST /api/analyze       (EnvironmentSpec in, AnalysisReport out)
  GET  /api/capture?env=  (captures locally, cached for CACHE_TTL)`,
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	cat, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting research-wizard API",
		"catalog_instances", len(cat.Instances),
		"pricing_region", cfg.PricingRegion)

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	snapshots := cache.New(cacheTTL)
	slog.Info("Snapshot cache initialized", "ttl", cacheTTL)

	engine := services.NewEngine(cat)
	capturer := services.NewSpackCapturer(cfg.SpackBin).WithTimeouts(
		time.Duration(cfg.FindTimeoutSeconds)*time.Second,
		time.Duration(cfg.ConfigTimeoutSeconds)*time.Second,
	)

	h := handlers.NewHandler(cfg, cat, engine, capturer, snapshots)

	mux := http.NewServeMux()
	cors := middleware.CORS(cfg.CORSAllowedOrigins)
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Path, middleware.Chain(route.Handler,
			middleware.Recover, middleware.LogRequest, cors))
	}

	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
