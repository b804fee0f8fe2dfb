// Package record defines the listing record a scrape run produces.
package record

// Sentinel is the placeholder stored in any field whose selectors all
// failed to resolve.
const Sentinel = "N/A"

// Record is one classifieds listing extracted from a search-result card.
// Records are immutable once created; the run-wide collection is append
// only and lives only for the duration of one run.
type Record struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Location string `json:"location"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
}

// Columns is the fixed CSV column order for exported records.
var Columns = []string{"title", "price", "location", "url", "image_url"}

// Valid reports whether the record should be kept. Only records whose
// title resolved to something other than the sentinel survive a run.
func (r Record) Valid() bool {
	return r.Title != Sentinel
}

// Row returns the record's fields in Columns order.
func (r Record) Row() []string {
	return []string{r.Title, r.Price, r.Location, r.URL, r.ImageURL}
}
