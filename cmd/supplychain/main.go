package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shanehull/icchain/internal/chainmap"
	"github.com/shanehull/icchain/internal/model"
	"github.com/shanehull/icchain/internal/source"
	"github.com/shanehull/icchain/internal/storage"
)

type stats struct {
	Chains, Written, Empty, Failed, Records, Foreign int
}

func selectChains(raw string) []model.Chain {
	if raw == "" {
		return model.Chains
	}
	want := make(map[string]bool)
	for _, c := range strings.Split(raw, ",") {
		want[strings.ToUpper(strings.TrimSpace(c))] = true
	}
	var out []model.Chain
	for _, c := range model.Chains {
		if want[c.Code] {
			out = append(out, c)
		}
	}
	return out
}

func main() {
	dataDir := flag.String("data", "data", "Directory for per-industry and map CSV files")
	watchlistPath := flag.String("watchlist", storage.DefaultWatchlist, "Watchlist CSV (代號,名稱)")
	baseURL := flag.String("url", source.DefaultBaseURL, "Industry chain directory base URL")
	delay := flag.Duration("delay", source.DefaultDelay, "Pause after each industry request")
	timeout := flag.Duration("timeout", source.DefaultTimeout, "Per-request timeout")
	chainsRaw := flag.String("chains", "", "Chain codes to download (comma-separated, default all)")
	mapOnly := flag.Bool("map-only", false, "Skip downloading and rebuild the map from existing files")
	debug := flag.Bool("debug", false, "Enable debug logs")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	if _, err := os.Stat(*watchlistPath); err != nil {
		logger.Error("Watchlist not available", "path", *watchlistPath, "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if !*mapOnly {
		seed, err := storage.ReadForeignMappings(filepath.Join(*dataDir, storage.ForeignSeedFile))
		if err != nil {
			logger.Warn("Foreign company reference unreadable, continuing without it", "err", err)
		}
		foreignCodes := storage.ForeignCodes(seed)
		logger.Info("Loaded foreign company reference", "entries", len(foreignCodes))

		scraper, err := source.NewTPExScraper(logger.With("source", "TPEx"), source.TPExOptions{
			BaseURL: *baseURL,
			Timeout: *timeout,
			Delay:   *delay,
		})
		if err != nil {
			logger.Error("Scraper setup failed", "err", err)
			os.Exit(1)
		}

		s := fetchAll(ctx, logger, scraper, selectChains(*chainsRaw), *dataDir, foreignCodes)
		logger.Info("Download complete",
			"chains", s.Chains,
			"written", s.Written,
			"empty", s.Empty,
			"failed", s.Failed,
			"records", s.Records,
			"foreign", s.Foreign)
	}

	if err := buildMap(logger, *dataDir, *watchlistPath); err != nil {
		logger.Error("Supply chain map failed", "err", err)
	}
}

// fetchAll downloads each chain in turn. A failed or empty chain is logged and
// skipped; its previous file, if any, is left in place.
func fetchAll(ctx context.Context, logger *slog.Logger, src source.ChainSource, chains []model.Chain, dataDir string, foreignCodes map[string]string) stats {
	var s stats
	for _, chain := range chains {
		s.Chains++
		chainLogger := logger.With("chain", chain.Code)

		page, err := src.Fetch(ctx, chain)
		if err != nil {
			chainLogger.Error("Fetch failed", "label", chain.Label, "err", err)
			s.Failed++
			continue
		}
		if page.Empty() {
			chainLogger.Warn("No data", "label", chain.Label)
			s.Empty++
			continue
		}

		path := storage.ChainFile(dataDir, chain.Code)
		if err := storage.WriteChainCSV(path, page.Records, foreignCodes); err != nil {
			chainLogger.Error("Export failed", "path", path, "err", err)
			s.Failed++
			continue
		}
		s.Written++
		s.Records += len(page.Records)
		for _, r := range page.Records {
			if r.IsForeign() {
				s.Foreign++
			}
		}
		chainLogger.Info("Exported", "path", path, "records", len(page.Records))
	}
	return s
}

func buildMap(logger *slog.Logger, dataDir, watchlistPath string) error {
	tables, err := storage.ReadChainTables(dataDir)
	if err != nil {
		return fmt.Errorf("read chain files: %w", err)
	}
	watchlist, err := storage.ReadWatchlist(watchlistPath)
	if err != nil {
		return fmt.Errorf("read watchlist: %w", err)
	}
	logger.Info("Building supply chain map", "chains", len(tables), "watchlist", len(watchlist))

	rows := chainmap.NewBuilder().Build(tables, watchlist)

	path := filepath.Join(dataDir, storage.MapFile)
	if err := storage.WriteMapCSV(path, rows); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	logger.Info("Export successful", "path", path, "rows", len(rows))
	return nil
}
