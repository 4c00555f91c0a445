package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shanehull/icchain/internal/storage"
)

func main() {
	dataDir := flag.String("data", "data", "Directory holding the per-industry CSV files")
	name := flag.String("name", "", "Search by company name (case-insensitive contains)")
	code := flag.String("code", "", "Filter by stock code")
	chain := flag.String("chain", "", "Filter by chain code (e.g. D000)")
	position := flag.String("position", "", "Filter by position (上游, 中游, 下游)")
	outPath := flag.String("out", "out/search_results.csv", "Output CSV path")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	repo, err := storage.NewDuckDBRepo("", logger)
	if err != nil {
		logger.Error("Failed to open DB", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		logger.Error("Failed to create output directory", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if _, err := repo.LoadChainFiles(ctx, *dataDir); err != nil {
		logger.Error("Failed to load chain files", "error", err)
		os.Exit(1)
	}

	n, err := repo.ExportSearch(ctx, *outPath, storage.SearchFilter{
		Name:     *name,
		Code:     *code,
		Chain:    *chain,
		Position: *position,
	})
	if err != nil {
		logger.Error("Search failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Search complete", "output", *outPath, "rows", n)
}
