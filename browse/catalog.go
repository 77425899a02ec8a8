package browse

import (
	"context"
	"fmt"

	"github.com/redsepro/knacks"
)

// Ensure Catalog implements knacks.CatalogService at compile time.
var _ knacks.CatalogService = (*Catalog)(nil)

// Catalog reads the knack list published next to the knacks.
type Catalog struct {
	Fetcher knacks.Fetcher
	Parser  knacks.DocumentParser
	URL     string
}

// FindKnacks returns the knacks of the list in document order.
func (c *Catalog) FindKnacks(ctx context.Context) ([]knacks.Knack, error) {
	html, err := c.Fetcher.Fetch(ctx, c.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch knack list: %w", err)
	}
	list, err := c.Parser.ParseCatalog(html)
	if err != nil {
		return nil, fmt.Errorf("parse knack list: %w", err)
	}
	return list, nil
}

// StartKnack picks the knack opened at startup: the last opened one when
// both its file and title are known, else the one marked selected, else the
// first. It reports false when there is nothing to open.
func StartKnack(list []knacks.Knack, last *knacks.Session) (knacks.Knack, bool) {
	if last != nil && last.File != "" && last.Title != "" {
		return knacks.Knack{File: last.File, Title: last.Title}, true
	}
	for _, k := range list {
		if k.Selected {
			return k, true
		}
	}
	if len(list) == 0 {
		return knacks.Knack{}, false
	}
	return list[0], true
}
