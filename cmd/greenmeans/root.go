package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Amankrah/green-means-go-sub001/internal/api"
	"github.com/Amankrah/green-means-go-sub001/internal/archive"
	"github.com/Amankrah/green-means-go-sub001/internal/config"
	"github.com/Amankrah/green-means-go-sub001/internal/lca"
	"github.com/Amankrah/green-means-go-sub001/internal/report"
	"github.com/Amankrah/green-means-go-sub001/internal/store"
	"github.com/Amankrah/green-means-go-sub001/internal/submit"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "greenmeans",
	Short: "GreenMeans - Farm LCA Survey Service",
	RunE:  run,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func run(cmd *cobra.Command, args []string) error {
	// 1. Signal handling
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// 2. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("configuration loaded")

	// 3. Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)
	slog.Info("logger initialized", "level", cfg.Log.Level)

	// 4. Initialize store (migrations, WAL mode)
	db, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	slog.Info("store initialized", "path", cfg.Database.Path)

	// 5. LCA engine client and submission orchestrator
	engine := lca.NewClient(cfg.Engine.BaseURL, time.Duration(cfg.Engine.Timeout))
	orchestrator := submit.NewOrchestrator(engine)
	slog.Info("engine client initialized", "base_url", cfg.Engine.BaseURL)

	// 6. Submission archive (noop unless a bucket is configured)
	uploader, err := archive.FromConfig(cfg.Archive)
	if err != nil {
		return err
	}
	slog.Info("archive initialized", "enabled", cfg.Archive.Enabled())

	// 7. AI report generator (disabled without an API key)
	var reports report.Generator = report.Disabled{}
	if cfg.Report.Enabled() {
		reports = report.NewOpenAI(cfg.Report.APIKey, cfg.Report.Model)
	}
	slog.Info("reports initialized", "enabled", cfg.Report.Enabled())

	// 8. Initialize HTTP router
	handler := api.NewHandler(db, orchestrator, engine, uploader, reports, Version)
	router := api.NewRouter(handler)
	slog.Info("router initialized")

	// 9. Configure HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout),
	}

	// 10. Start HTTP server in goroutine
	go func() {
		slog.Info("server starting", "address", addr)
		// ErrServerClosed is the expected error when Shutdown() is called gracefully.
		// Any other error indicates an actual server failure that should trigger shutdown.
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel() // Trigger shutdown on server failure
		}
	}()

	// 11. Block until signal received
	<-ctx.Done()
	slog.Info("shutdown initiated")

	// 12. Graceful shutdown sequence
	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout))
	defer shutdownCancel()

	// 12a. Stop HTTP server (drains in-flight requests)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// 12b. Close store
	if err := db.Close(); err != nil {
		slog.Error("store close error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
