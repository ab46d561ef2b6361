package jobsift

import "context"

// Fetcher retrieves HTML from URLs. The heuristic core never fetches;
// fetching is a collaborator concern, and fetch failures (timeouts, non-2xx,
// DNS errors) must surface as errors, distinct from a successful-but-empty
// extraction.
type Fetcher interface {
	// Fetch retrieves the HTML content for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
