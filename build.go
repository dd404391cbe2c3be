package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lexandro/indexage/assets"
	"github.com/lexandro/indexage/indexer"
)

// runBuild indexes the tree named on the command line.
func runBuild(args []string, stderr io.Writer) int {
	cfg, err := parseBuildFlags(args, stderr)
	if err != nil {
		return exitCodeForParseError(err)
	}

	logger, closeLog := setupLogger(cfg.logLevel, cfg.logFile, stderr)
	defer closeLog()

	theme, err := assets.LoadTheme(cfg.template, cfg.iconBase)
	if err != nil {
		logger.Error("failed to load theme", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := cfg.options()
	logger.Info("starting indexage",
		"path", cfg.path,
		"output", opts.Output,
		"exclude", cfg.excludes.String(),
		"recursive", opts.Recursive,
		"preview", opts.Preview,
		"link", opts.Link,
	)

	startTime := time.Now()
	ix := indexer.New(theme, logger)
	result, err := ix.Build(context.Background(), cfg.path, opts)
	if err != nil {
		logger.Error("build failed",
			"path", cfg.path,
			"pagesWritten", len(result.Pages),
			"error", err,
		)
		if cfg.logFile != "" {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	logger.Info("build complete",
		"pages", len(result.Pages),
		"dirs", result.Dirs,
		"files", result.Files,
		"duration", time.Since(startTime),
	)
	return 0
}
