package knacks

import "context"

// Fetcher retrieves static resources: the knack list, the search index, and
// knack documents.
type Fetcher interface {
	// Fetch retrieves the body of the resource at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
