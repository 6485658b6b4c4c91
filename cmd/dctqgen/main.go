// Package main is the entry point for the dctqgen vector generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Hanbunko/dctqvec/internal/config"
	"github.com/Hanbunko/dctqvec/internal/logger"
	"github.com/Hanbunko/dctqvec/pkg/imaging"
	"github.com/Hanbunko/dctqvec/pkg/vector"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dctqgen [flags] <input-image>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	outputPath := cfg.Output.Path
	if cfg.Output.Compress && !strings.HasSuffix(outputPath, ".zst") {
		outputPath += ".zst"
	}

	logger.Info("loading source image", zap.String("path", inputPath))
	src, err := imaging.Load(inputPath)
	if err != nil {
		logger.Error("failed to load image", zap.Error(err))
		os.Exit(1)
	}
	logger.Sugar.Debugf("source raster: %dx%d", src.Width, src.Height)

	logger.Info("building vectors",
		zap.Int("workers", cfg.Pipeline.Workers),
		zap.Int("rows", vector.Rows),
		zap.Int("words_per_row", vector.WordsPerRow),
	)
	start := time.Now()
	set, stats, err := vector.New(cfg.Pipeline.Workers).Build(src)
	if err != nil {
		logger.Error("failed to build vectors", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("transform complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int32("coef_min", stats.Min),
		zap.Int32("coef_max", stats.Max),
		zap.Int("nonzero", stats.NonZero),
		zap.Int("zero", stats.Zero),
		zap.String("sparsity", fmt.Sprintf("%.2f%%", stats.Sparsity())),
	)

	if err := set.WriteFile(outputPath); err != nil {
		logger.Error("failed to write artifact", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("artifact written", zap.String("path", outputPath))
}
