package scrape

import "fmt"

// NetworkError reports a transport failure or non-success status while
// fetching one page. It is contained at page scope: the page contributes
// zero records and the run continues.
type NetworkError struct {
	Page   int
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("page %d: HTTP error: %d", e.Page, e.Status)
	}
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ExtractionError reports a parse or selector failure scoped to one page.
// Like NetworkError, it degrades to zero records for that page.
type ExtractionError struct {
	Page int
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("page %d: failed to parse HTML: %v", e.Page, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
