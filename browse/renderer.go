// Package browse implements the document side of the knacks browser:
// rendering knacks for the content pane, the catalog, and the navigation
// state around the current document.
package browse

import (
	"context"
	"fmt"
	"time"

	"github.com/redsepro/knacks"
)

// Ensure Renderer implements knacks.DocumentRenderer at compile time.
var _ knacks.DocumentRenderer = (*Renderer)(nil)

// Renderer fetches a knack and prepares it for display.
type Renderer struct {
	Fetcher   knacks.Fetcher
	Parser    knacks.DocumentParser
	Converter knacks.Converter

	// DocumentURL maps a document id to the URL it is served from.
	DocumentURL func(id string) string

	// Now defaults to time.Now.
	Now func() time.Time
}

// RenderDocument fetches the knack id and returns it with ids stripped, the
// title prepended, headings numbered, and the Markdown lines located.
func (r *Renderer) RenderDocument(ctx context.Context, id, title string) (*knacks.Document, error) {
	if id == "" {
		return nil, knacks.Errorf(knacks.EINVALID, "document id required")
	}

	url := r.DocumentURL(id)
	html, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}

	parsed, err := r.Parser.ParseDocument(html, title)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", id, err)
	}

	content, err := r.Converter.Convert(parsed.HTML)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", id, err)
	}

	lines := knacks.SplitLines(content)
	headings := append([]knacks.Heading(nil), parsed.Headings...)
	knacks.LocateHeadings(lines, headings)

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	return &knacks.Document{
		ID:        id,
		Title:     title,
		HTML:      parsed.HTML,
		Content:   content,
		Lines:     lines,
		Headings:  headings,
		SourceURL: url,
		FetchedAt: now(),
	}, nil
}
