package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"olxgrab/record"
)

// WriteJSON writes records to dir/name as a pretty-printed array with
// 2-space indentation. HTML escaping is disabled so URLs and non-ASCII
// text (currency symbols, place names) stay literal. An empty record list
// writes nothing and returns an empty path.
func WriteJSON(dir, name string, records []record.Record) (string, error) {
	if len(records) == 0 {
		slog.Warn("no data to save", "format", "json")
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create json file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("failed to encode records: %w", err)
	}

	return path, nil
}
