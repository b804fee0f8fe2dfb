// Package scrape fetches classifieds search-result pages and extracts
// listing records from their markup.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultBaseURL is the search-results page the scraper targets when no
// other URL is configured.
const DefaultBaseURL = "https://www.olx.in/items/q-car-cover"

// defaultUserAgent mimics a desktop browser to reduce trivial bot blocking.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const requestTimeout = 15 * time.Second

// Fetcher retrieves search-result pages over HTTP.
type Fetcher struct {
	BaseURL   string
	UserAgent string
	client    *http.Client
}

// NewFetcher creates a fetcher for the given search URL. Empty arguments
// fall back to the defaults.
func NewFetcher(baseURL, userAgent string) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Fetcher{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

// PageURL returns the fetch URL for a page number. Page 1 is the bare
// search URL; later pages append a page query parameter.
func (f *Fetcher) PageURL(page int) string {
	if page <= 1 {
		return f.BaseURL
	}
	return fmt.Sprintf("%s?page=%d", f.BaseURL, page)
}

// FetchPage performs one GET for the given page number and parses the
// response body. A request failure or non-2xx status yields a
// *NetworkError; a body that cannot be parsed yields an *ExtractionError.
func (f *Fetcher) FetchPage(ctx context.Context, page int) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.PageURL(page), nil)
	if err != nil {
		return nil, &NetworkError{Page: page, Err: err}
	}

	// Browser-like headers. Accept-Encoding is left to the transport,
	// which negotiates gzip and hands back a decompressed body.
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Page: page, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{Page: page, Status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ExtractionError{Page: page, Err: err}
	}

	return doc, nil
}
