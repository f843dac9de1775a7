// Command generate renders fantasy maps to PNG files.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cartographer.dev/internal/config"
	"cartographer.dev/internal/export"
	"cartographer.dev/internal/generation"
	"cartographer.dev/internal/logger"
	"cartographer.dev/internal/services"
)

var (
	configPath  string
	logLevel    string
	seed        uint32
	outDir      string
	sizes       []string
	withSummary bool
	paramFlags  map[string]*float64
)

// rootCmd renders one seed at one or more resolutions
var rootCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a fantasy map to PNG",
	Long: `Generates a map from a seed and slider parameters and writes it as PNG.

The same seed and parameters always produce the same map. Each --size renders
the same composition at another resolution; several sizes render concurrently.

Example:
  generate --seed 12345 --water-level 0.5 --size 2048x1536 --size 1024x768 --out maps`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	flags.Uint32Var(&seed, "seed", 0, "map seed (default: derived from the clock)")
	flags.StringVar(&outDir, "out", ".", "output directory")
	flags.StringArrayVar(&sizes, "size", []string{defaultSize}, "output resolution WxH, repeatable")
	flags.BoolVar(&withSummary, "summary", false, "also write a JSON summary of the map")

	paramFlags = make(map[string]*float64)
	for _, c := range generation.Controls() {
		usage := fmt.Sprintf("%s [%g, %g]", c.Label, c.Min, c.Max)
		paramFlags[c.Key] = flags.Float64(flagName(c.Key), c.Default, usage)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync(log)

	p := applyParamFlags(cmd, cfg.Map, paramFlags)
	if !cmd.Flags().Changed("seed") {
		seed = services.RandomSeed()
	}
	targets, err := parseSizes(sizes)
	if err != nil {
		return err
	}

	sink, err := export.NewFileSink(outDir)
	if err != nil {
		return err
	}
	svc := services.NewMapService(cfg, export.NewLogNotifier(log), sink, log)

	ctx := cmd.Context()
	results, err := svc.ExportBatch(ctx, seed, p, targets)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(sink.Dir(), res.Filename))
	}

	if withSummary {
		summary, err := svc.Summary(seed, p)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		name := summaryFilename(seed)
		if err := sink.Write(ctx, name, data); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(sink.Dir(), name))
	}

	log.Info("generation complete", zap.Uint32("seed", seed), zap.Int("files", len(results)))
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
