package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shanehull/icchain/internal/enrich"
	"github.com/shanehull/icchain/internal/storage"
)

func main() {
	dataDir := flag.String("data", "data", "Directory holding the per-industry CSV files")
	lookup := flag.Bool("lookup", false, "Query Yahoo Finance for names without a mapping")
	lookupURL := flag.String("lookup-url", enrich.DefaultYahooURL, "Yahoo Finance base URL")
	debug := flag.Bool("debug", false, "Enable debug logs")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	if fi, err := os.Stat(*dataDir); err != nil || !fi.IsDir() {
		logger.Error("Data directory not available", "path", *dataDir, "err", err)
		os.Exit(1)
	}

	repo, err := storage.NewDuckDBRepo("", logger)
	if err != nil {
		logger.Error("DB connection failed", "err", err)
		os.Exit(1)
	}
	defer repo.Close()

	ctx := context.Background()

	if _, err := repo.LoadChainFiles(ctx, *dataDir); err != nil {
		logger.Error("Loading chain files failed", "err", err)
		return
	}
	names, err := repo.ForeignNames(ctx)
	if err != nil {
		logger.Error("Listing foreign companies failed", "err", err)
		return
	}
	logger.Info("Foreign companies found", "count", len(names))

	outPath := filepath.Join(*dataDir, storage.ForeignFile)
	prior, err := storage.ReadForeignMappings(outPath)
	if err != nil {
		logger.Warn("Existing mappings unreadable, starting fresh", "path", outPath, "err", err)
		prior = nil
	}
	logger.Info("Loaded existing mappings", "count", len(prior))

	var lookupClient enrich.SymbolLookup
	if *lookup {
		lookupClient = enrich.NewYahooClient(*lookupURL, 0, logger)
	}
	reconciler := enrich.NewReconciler(enrich.KnownMappings(), lookupClient, logger)

	mappings, stats := reconciler.Reconcile(ctx, names, prior)
	if err := storage.WriteForeignMappings(outPath, mappings); err != nil {
		logger.Error("Export failed", "path", outPath, "err", err)
		return
	}

	logger.Info("Reconciliation complete",
		"total", stats.Total,
		"resolved", stats.Resolved,
		"private", stats.Private,
		"acquired", stats.Acquired,
		"unresolved", stats.Unresolved,
		"path", outPath)
	fmt.Println()
	stats.Render(os.Stdout)
}
