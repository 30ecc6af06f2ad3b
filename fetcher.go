package advent

import "context"

// Fetcher retrieves page bodies from the puzzle site on behalf of a session.
type Fetcher interface {
	// Fetch performs a GET on url and returns the body.
	// Failures are reported as *FetchError.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases connection resources.
	Close() error
}
