package knacks

import (
	"net/url"
	"time"
)

// Config holds the settings of a knacks site and of the browser.
type Config struct {
	// BaseURL is the site serving the catalog, the index, and the knacks.
	BaseURL string

	IndexPath  string
	ListPath   string
	ContentDir string

	// Debounce is the pause after the last keystroke before a search runs.
	Debounce time.Duration

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	DBPath  string
	LogFile string

	Theme Theme
}

// Theme holds terminal colors (ANSI 256 codes or hex values).
type Theme struct {
	Accent string
	Dim    string
	Error  string
}

// Default configuration values.
const (
	DefaultIndexPath = "knacks-index.json"
	DefaultListPath  = "knacks-list.html"
	DefaultDebounce  = 250 * time.Millisecond
	DefaultTimeout   = 10 * time.Second
)

// DefaultConfig returns a Config with every field except BaseURL, DBPath,
// and LogFile set.
func DefaultConfig() Config {
	return Config{
		IndexPath:  DefaultIndexPath,
		ListPath:   DefaultListPath,
		ContentDir: DefaultContentDir,
		Debounce:   DefaultDebounce,
		Timeout:    DefaultTimeout,
		Theme: Theme{
			Accent: "99",
			Dim:    "241",
			Error:  "196",
		},
	}
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return Errorf(EINVALID, "invalid base URL: %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "base URL must be an absolute http(s) URL: %q", c.BaseURL)
	}
	if c.Debounce < 0 {
		return Errorf(EINVALID, "debounce must not be negative")
	}
	return nil
}

// IndexURL returns the URL of the search index.
func (c *Config) IndexURL() string {
	return c.resolve(c.IndexPath)
}

// ListURL returns the URL of the knack list.
func (c *Config) ListURL() string {
	return c.resolve(c.ListPath)
}

// DocumentURL returns the URL of the knack document with the given id.
func (c *Config) DocumentURL(id string) string {
	return c.resolve(c.ContentDir, id)
}

func (c *Config) resolve(elem ...string) string {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return base.JoinPath(elem...).String()
}
