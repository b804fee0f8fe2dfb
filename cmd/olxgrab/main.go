package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"olxgrab/config"
	"olxgrab/export"
	"olxgrab/record"
	"olxgrab/scrape"
	"olxgrab/store"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an int from an environment variable or returns default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat parses a float from an environment variable or returns
// default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func main() {
	// .env is optional; ignore the error when it is absent.
	_ = godotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	// Config file first, so flag defaults (and therefore -h output) show
	// the effective values. Flags and environment variables win over the
	// file.
	cfgPath := getEnv("OLXGRAB_CONFIG", "olxgrab.yaml")
	cfg, err := config.LoadFile(cfgPath, config.Default())
	if err != nil {
		logger.Error("failed to load config", "path", cfgPath, "err", err)
		os.Exit(1)
	}

	baseURL := flag.String("base-url", getEnv("OLXGRAB_BASE_URL", cfg.BaseURL), "Search results URL (OLXGRAB_BASE_URL)")
	pages := flag.Int("pages", getEnvInt("OLXGRAB_PAGES", cfg.MaxPages), "Number of pages to scrape (OLXGRAB_PAGES)")
	delay := flag.Float64("delay", getEnvFloat("OLXGRAB_DELAY", cfg.DelaySeconds), "Delay between requests in seconds (OLXGRAB_DELAY)")
	outputDir := flag.String("output-dir", getEnv("OLXGRAB_OUTPUT_DIR", cfg.OutputDir), "Directory for exported files (OLXGRAB_OUTPUT_DIR)")
	csvName := flag.String("output-csv", getEnv("OLXGRAB_OUTPUT_CSV", cfg.CSVName), "CSV output filename (OLXGRAB_OUTPUT_CSV)")
	jsonName := flag.String("output-json", getEnv("OLXGRAB_OUTPUT_JSON", cfg.JSONName), "JSON output filename (OLXGRAB_OUTPUT_JSON)")
	dbPath := flag.String("db", getEnv("OLXGRAB_DB", cfg.DBPath), "Optional SQLite archive path; empty disables archiving (OLXGRAB_DB)")
	flag.Parse()

	fetcher := scrape.NewFetcher(*baseURL, cfg.UserAgent)
	pause := time.Duration(*delay * float64(time.Second))
	scraper := scrape.NewScraper(fetcher, pause, logger)

	logger.Info("starting scrape", "base_url", fetcher.BaseURL, "pages", *pages, "delay_seconds", *delay)

	records, stats := scraper.ScrapeAll(context.Background(), *pages)
	logger.Info("scrape finished",
		"pages", stats.PagesAttempted, "failed", stats.PagesFailed, "records", stats.Records)

	if len(records) == 0 {
		fmt.Println("No data was scraped. Please check the website structure or network connection.")
		return
	}

	csvPath, err := export.WriteCSV(*outputDir, *csvName, records)
	if err != nil {
		logger.Error("failed to save CSV", "err", err)
		os.Exit(1)
	}
	jsonPath, err := export.WriteJSON(*outputDir, *jsonName, records)
	if err != nil {
		logger.Error("failed to save JSON", "err", err)
		os.Exit(1)
	}

	if *dbPath != "" {
		if err := archiveRun(*dbPath, records, logger); err != nil {
			logger.Error("failed to archive records", "db", *dbPath, "err", err)
			os.Exit(1)
		}
	}

	printSummary(records, csvPath, jsonPath)
}

// archiveRun saves the run's records to the SQLite archive under a fresh
// run id.
func archiveRun(path string, records []record.Record, logger *slog.Logger) error {
	archive, err := store.Open(path)
	if err != nil {
		return err
	}
	defer archive.Close()

	runID := uuid.New()
	if err := archive.SaveAll(runID, records); err != nil {
		return err
	}

	logger.Info("archived records", "run_id", runID, "db", path, "records", len(records))
	return nil
}

// printSummary prints the run total and a sample of the first few records.
func printSummary(records []record.Record, csvPath, jsonPath string) {
	fmt.Printf("\n--- SCRAPING SUMMARY ---\n")
	fmt.Printf("Total items found: %d\n", len(records))
	fmt.Println("Sample items:")

	for i, rec := range records {
		if i >= 3 {
			break
		}
		url := rec.URL
		if len(url) > 50 {
			url = url[:50] + "..."
		}
		fmt.Printf("\n%d. %s\n", i+1, rec.Title)
		fmt.Printf("   Price: %s\n", rec.Price)
		fmt.Printf("   Location: %s\n", rec.Location)
		fmt.Printf("   URL: %s\n", url)
	}

	fmt.Printf("\n--- FILES CREATED ---\n")
	fmt.Printf("CSV: %s\n", csvPath)
	fmt.Printf("JSON: %s\n", jsonPath)
}
