package browse

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/redsepro/knacks"
	"github.com/redsepro/knacks/search"
	"golang.org/x/sync/errgroup"
)

// ErrorContent replaces the content pane when a knack fails to load.
const ErrorContent = "Error loading content. Please try again."

var (
	_ knacks.DocumentLoader = (*Browser)(nil)
	_ search.ContentView    = (*Browser)(nil)
)

// EventType identifies a change of the content pane.
type EventType int

const (
	// EventLoaded reports a new document, scrolled to the top.
	EventLoaded EventType = iota
	// EventFailed reports that the content pane shows ErrorContent.
	EventFailed
	// EventScrolled reports a scroll to Line.
	EventScrolled
)

// Event describes a change of the content pane.
type Event struct {
	Type     EventType
	Document *knacks.Document
	Line     int
	Err      error
}

// EventFunc receives content pane changes. It is called without the
// browser lock held and may be called from any goroutine.
type EventFunc func(Event)

// HistoryEntry is a visited knack.
type HistoryEntry struct {
	Name  string
	ID    string
	Title string
}

// Browser owns the content pane: the current document, its table of
// contents, and the navigation history.
type Browser struct {
	Renderer knacks.DocumentRenderer
	Catalog  knacks.CatalogService
	Sessions knacks.SessionService
	Logger   *slog.Logger
	OnEvent  EventFunc

	mu      sync.Mutex
	seq     uint64
	doc     *knacks.Document
	toc     []*knacks.TOCItem
	active  string
	history []HistoryEntry
}

// Start loads the catalog and the last session concurrently, then opens
// the startup knack. It returns the catalog.
func (b *Browser) Start(ctx context.Context) ([]knacks.Knack, error) {
	var (
		list []knacks.Knack
		last *knacks.Session
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = b.Catalog.FindKnacks(gctx)
		return err
	})
	if b.Sessions != nil {
		g.Go(func() error {
			s, err := b.Sessions.LastKnack(gctx)
			if err != nil && knacks.ErrorCode(err) != knacks.ENOTFOUND {
				b.logger().Warn("read last knack", "err", err)
			}
			last = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		b.logger().Error("load knacks list", "err", err)
		return nil, err
	}

	k, ok := StartKnack(list, last)
	if !ok {
		b.logger().Warn("knacks list is empty, no content to load")
		return list, nil
	}
	// Load failures are already shown in the content pane.
	_ = b.LoadDocument(ctx, knacks.DocumentID(k.File), k.Title)
	return list, nil
}

// Open loads a knack picked from the catalog and remembers it for the next
// run.
func (b *Browser) Open(ctx context.Context, k knacks.Knack) error {
	if b.Sessions != nil {
		s := &knacks.Session{File: k.File, Title: k.Title, OpenedAt: time.Now()}
		if err := b.Sessions.SaveLastKnack(ctx, s); err != nil {
			b.logger().Warn("save last knack", "file", k.File, "err", err)
		}
	}
	return b.LoadDocument(ctx, knacks.DocumentID(k.File), k.Title)
}

// LoadDocument renders the knack id into the content pane. On failure the
// pane shows ErrorContent and the remembered knack is forgotten.
func (b *Browser) LoadDocument(ctx context.Context, id, title string) error {
	return b.load(ctx, id, title, true)
}

// Back returns to the previously visited knack. It reports false when
// there is none.
func (b *Browser) Back(ctx context.Context) (bool, error) {
	b.mu.Lock()
	if len(b.history) < 2 {
		b.mu.Unlock()
		return false, nil
	}
	b.history = b.history[:len(b.history)-1]
	prev := b.history[len(b.history)-1]
	b.mu.Unlock()

	return true, b.load(ctx, prev.ID, prev.Title, false)
}

func (b *Browser) load(ctx context.Context, id, title string, record bool) error {
	b.mu.Lock()
	b.seq++
	seq := b.seq
	b.mu.Unlock()

	doc, err := b.Renderer.RenderDocument(ctx, id, title)
	if err != nil {
		b.logger().Error("load knack content", "id", id, "err", err)
		if b.Sessions != nil {
			if cerr := b.Sessions.ClearLastKnack(ctx); cerr != nil {
				b.logger().Warn("clear last knack", "err", cerr)
			}
		}
		failed := &knacks.Document{
			ID:      id,
			Title:   title,
			Content: ErrorContent,
			Lines:   []string{ErrorContent},
		}
		if b.apply(seq, failed, false) {
			b.emit(Event{Type: EventFailed, Document: failed, Err: err})
		}
		return err
	}

	if !b.apply(seq, doc, record) {
		return knacks.ErrSuperseded
	}
	b.emit(Event{Type: EventLoaded, Document: doc})
	return nil
}

// apply installs doc unless a later load has already started.
func (b *Browser) apply(seq uint64, doc *knacks.Document, record bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.seq {
		return false
	}
	b.doc = doc
	b.toc = knacks.BuildTOC(doc.Headings)
	b.active = ""
	if record {
		name := knacks.CanonicalName(doc.ID)
		if n := len(b.history); n == 0 || b.history[n-1].Name != name {
			b.history = append(b.history, HistoryEntry{Name: name, ID: doc.ID, Title: doc.Title})
		}
	}
	return true
}

// ScrollToText scrolls to the first line of the current document whose
// normalized text contains normalizedQuery.
func (b *Browser) ScrollToText(normalizedQuery string) bool {
	b.mu.Lock()
	line, ok := b.doc.FindText(normalizedQuery)
	b.mu.Unlock()
	if !ok {
		return false
	}
	b.emit(Event{Type: EventScrolled, Line: line})
	return true
}

// GoToHeading scrolls to the heading with element id and marks it active.
// A heading missing from the current document is logged and ignored.
func (b *Browser) GoToHeading(id string) bool {
	b.mu.Lock()
	h, ok := b.doc.Heading(id)
	if ok {
		b.active = id
	}
	b.mu.Unlock()

	if !ok || h.Line < 0 {
		b.logger().Warn("toc target not found", "id", id)
		return false
	}
	b.emit(Event{Type: EventScrolled, Line: h.Line})
	return true
}

// Current returns the document in the content pane, or nil.
func (b *Browser) Current() *knacks.Document {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc
}

// TOC returns the flattened table of contents of the current document and
// the id of the active heading.
func (b *Browser) TOC() ([]knacks.TOCEntry, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return knacks.FlattenTOC(b.toc), b.active
}

// History returns the visited knacks, oldest first.
func (b *Browser) History() []HistoryEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]HistoryEntry(nil), b.history...)
}

func (b *Browser) emit(e Event) {
	if b.OnEvent != nil {
		b.OnEvent(e)
	}
}

func (b *Browser) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}
