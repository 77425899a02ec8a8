// Package http provides an HTTP-based implementation of knacks.Fetcher for
// reading the static resources of a knacks site.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/redsepro/knacks"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = knacks.DefaultTimeout

// Ensure Fetcher implements knacks.Fetcher at compile time.
var _ knacks.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resources using HTTP GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient replaces the underlying HTTP client. Its Timeout is overridden
// by the fetcher timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch retrieves the body of the resource at url. A 404 response is
// reported as ENOTFOUND and any other non-200 status as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", knacks.Errorf(knacks.EINVALID, "invalid request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", knacks.Errorf(knacks.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	default:
		return "", knacks.Errorf(knacks.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
