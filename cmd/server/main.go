// Command server serves the map generator over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cartographer.dev/internal/config"
	"cartographer.dev/internal/export"
	"cartographer.dev/internal/handlers"
	"cartographer.dev/internal/logger"
	"cartographer.dev/internal/render"
	"cartographer.dev/internal/store"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath string
	addr       string
	logLevel   string
)

// rootCmd runs the HTTP server until interrupted
var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the fantasy map generator over HTTP",
	Long: `Starts the HTTP API: map summaries, PNG previews and exports, and saved
parameter presets.

Configuration priority: defaults < --config file < SERVER_ADDR < flags.`,
	Args: cobra.NoArgs,
	RunE: runServer,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&addr, "addr", "", "listen address (overrides config)")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
}

// openStore opens the preset backend named by the config
func openStore(cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return store.NewMemoryStore(), nil
	case config.DriverSQLite:
		return store.NewSQLiteStore(cfg.Path)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

// openSink returns the export archive, or nil when none is configured
func openSink(dir string) (export.Sink, error) {
	if dir == "" {
		return nil, nil
	}
	return export.NewFileSink(dir)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync(log)

	if err := render.FontsReady(); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}

	st, err := openStore(cfg.Store)
	if err != nil {
		return fmt.Errorf("opening preset store: %w", err)
	}
	defer st.Close()

	sink, err := openSink(cfg.Render.ExportDir)
	if err != nil {
		return fmt.Errorf("opening export dir: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handlers.SetupRoutes(cfg, st, sink, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", cfg.Server.Addr), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-cmd.Context().Done():
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
