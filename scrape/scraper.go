package scrape

import (
	"context"
	"log/slog"
	"time"

	"olxgrab/record"
)

// Stats summarizes one run's per-page outcomes. It exists so callers see
// more than log lines when pages fail.
type Stats struct {
	PagesAttempted int
	PagesFailed    int
	Records        int
}

// Scraper drives the fetch, locate, extract loop across a page range.
// Execution is strictly sequential: one page at a time, one card at a
// time, with a fixed blocking pause between pages.
type Scraper struct {
	fetcher *Fetcher
	delay   time.Duration
	log     *slog.Logger
}

// NewScraper creates a scraper that pauses for delay between pages.
func NewScraper(fetcher *Fetcher, delay time.Duration, logger *slog.Logger) *Scraper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{fetcher: fetcher, delay: delay, log: logger}
}

// ScrapePage fetches and extracts one page. Only records passing the
// title validity rule are returned.
func (s *Scraper) ScrapePage(ctx context.Context, page int) ([]record.Record, error) {
	s.log.Info("scraping page", "page", page, "url", s.fetcher.PageURL(page))

	doc, err := s.fetcher.FetchPage(ctx, page)
	if err != nil {
		return nil, err
	}

	cards := Locate(doc)
	records := make([]record.Record, 0, len(cards))
	for _, card := range cards {
		rec, ok := ExtractFields(card)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	s.log.Info("extracted listings", "page", page, "cards", len(cards), "kept", len(records))
	return records, nil
}

// ScrapeAll scrapes pages 1 through maxPages sequentially. A failed page
// is logged and contributes zero records; there are no retries and no
// early termination, so every page number is always attempted. The delay
// runs after every page except the last.
func (s *Scraper) ScrapeAll(ctx context.Context, maxPages int) ([]record.Record, Stats) {
	var all []record.Record
	var stats Stats

	for page := 1; page <= maxPages; page++ {
		stats.PagesAttempted++

		records, err := s.ScrapePage(ctx, page)
		switch err.(type) {
		case nil:
			all = append(all, records...)
		case *NetworkError:
			stats.PagesFailed++
			s.log.Error("network error", "page", page, "err", err)
		case *ExtractionError:
			stats.PagesFailed++
			s.log.Error("extraction error", "page", page, "err", err)
		default:
			stats.PagesFailed++
			s.log.Error("page failed", "page", page, "err", err)
		}

		if page < maxPages && s.delay > 0 {
			time.Sleep(s.delay)
		}
	}

	stats.Records = len(all)
	return all, stats
}
