package knacks

import (
	"context"
	"strings"
	"time"
)

// DefaultContentDir is the directory segment under which knack documents are
// served. Index entries may name a document with or without it.
const DefaultContentDir = "knacks"

// Knack is an entry of the knack catalog.
type Knack struct {
	File     string `json:"file"`
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
}

// Document is a knack rendered into the content pane.
type Document struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// HTML is the sanitized document: element ids stripped, a title line
	// prepended, and toc-N ids assigned to the headings.
	HTML string `json:"html"`

	// Content is the Markdown rendition shown to the user, split into Lines.
	Content string   `json:"content"`
	Lines   []string `json:"-"`

	Headings []Heading `json:"headings"`

	SourceURL string    `json:"sourceUrl"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document id required")
	}
	return nil
}

// FindText walks the document lines in order and returns the index of the
// first line whose normalized text contains normalizedQuery.
func (d *Document) FindText(normalizedQuery string) (int, bool) {
	if d == nil || normalizedQuery == "" {
		return 0, false
	}
	for i, line := range d.Lines {
		if strings.Contains(Normalize(line), normalizedQuery) {
			return i, true
		}
	}
	return 0, false
}

// Heading returns the heading with the given element id.
func (d *Document) Heading(id string) (Heading, bool) {
	if d == nil {
		return Heading{}, false
	}
	for _, h := range d.Headings {
		if h.ID == id {
			return h, true
		}
	}
	return Heading{}, false
}

// ErrSuperseded is returned by a DocumentLoader when a later load replaced
// the content before this one finished.
var ErrSuperseded = Errorf(ECONFLICT, "document load superseded")

// DocumentLoader loads a knack into the content pane.
type DocumentLoader interface {
	// LoadDocument fetches and renders the knack identified by id. When it
	// returns nil the content pane holds the document and its headings are
	// addressable by id. On failure the loader has already put its own
	// error state into the content pane.
	LoadDocument(ctx context.Context, id, title string) error
}

// ParsedDocument is the result of preparing raw knack HTML for display.
type ParsedDocument struct {
	HTML     string
	Headings []Heading
}

// DocumentParser understands the HTML of the catalog and of knack documents.
type DocumentParser interface {
	// ParseCatalog reads the knack list fragment and returns its entries in
	// document order.
	ParseCatalog(html string) ([]Knack, error)

	// ParseDocument strips embedded element ids, prepends the title, and
	// assigns toc-N ids to the headings in document order.
	ParseDocument(html, title string) (*ParsedDocument, error)
}

// DocumentRenderer turns a knack into a Document without displaying it.
type DocumentRenderer interface {
	RenderDocument(ctx context.Context, id, title string) (*Document, error)
}

// DocumentStore persists rendered knacks with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type DocumentStore interface {
	Save(ctx context.Context, doc *Document) error
	Commit() error
	Abort() error
}

// CatalogService provides the list of available knacks.
type CatalogService interface {
	FindKnacks(ctx context.Context) ([]Knack, error)
}

// DocumentID resolves an index file reference to a document identifier.
// Both "install-docker.html" and "knacks/install-docker.html" (with or
// without a leading slash) resolve to "install-docker.html".
func DocumentID(file string) string {
	if s, ok := strings.CutPrefix(file, "/"+DefaultContentDir+"/"); ok {
		return s
	}
	if s, ok := strings.CutPrefix(file, DefaultContentDir+"/"); ok {
		return s
	}
	return file
}

// CanonicalName returns the history name of a knack file: lowercased,
// spaces replaced with hyphens, colons removed, and .html appended when
// missing. Dots are kept, so "v1.2 notes" becomes "v1.2-notes.html".
func CanonicalName(file string) string {
	name := strings.ToLower(file)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, ":", "")
	if !strings.HasSuffix(name, ".html") {
		name += ".html"
	}
	return name
}
