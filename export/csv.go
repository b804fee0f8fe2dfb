// Package export serializes scrape results to CSV and JSON files under an
// output directory, creating the directory on first use.
package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"olxgrab/record"
)

// WriteCSV writes records to dir/name in the fixed column order, header
// row first. An empty record list writes nothing and returns an empty
// path. The returned path is the created file.
func WriteCSV(dir, name string, records []record.Record) (string, error) {
	if len(records) == 0 {
		slog.Warn("no data to save", "format", "csv")
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(record.Columns); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Row()); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("csv write error: %w", err)
	}

	return path, nil
}
