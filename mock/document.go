package mock

import (
	"context"

	"github.com/redsepro/knacks"
)

var (
	_ knacks.DocumentParser   = (*DocumentParser)(nil)
	_ knacks.DocumentRenderer = (*DocumentRenderer)(nil)
	_ knacks.DocumentStore    = (*DocumentStore)(nil)
	_ knacks.CatalogService   = (*CatalogService)(nil)
)

// DocumentParser is a mock implementation of knacks.DocumentParser.
type DocumentParser struct {
	ParseCatalogFn  func(html string) ([]knacks.Knack, error)
	ParseDocumentFn func(html, title string) (*knacks.ParsedDocument, error)
}

func (p *DocumentParser) ParseCatalog(html string) ([]knacks.Knack, error) {
	return p.ParseCatalogFn(html)
}

func (p *DocumentParser) ParseDocument(html, title string) (*knacks.ParsedDocument, error) {
	return p.ParseDocumentFn(html, title)
}

// DocumentRenderer is a mock implementation of knacks.DocumentRenderer.
type DocumentRenderer struct {
	RenderDocumentFn func(ctx context.Context, id, title string) (*knacks.Document, error)
}

func (r *DocumentRenderer) RenderDocument(ctx context.Context, id, title string) (*knacks.Document, error) {
	return r.RenderDocumentFn(ctx, id, title)
}

// DocumentStore is a mock implementation of knacks.DocumentStore.
type DocumentStore struct {
	SaveFn   func(ctx context.Context, doc *knacks.Document) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *DocumentStore) Save(ctx context.Context, doc *knacks.Document) error {
	return s.SaveFn(ctx, doc)
}

func (s *DocumentStore) Commit() error {
	return s.CommitFn()
}

func (s *DocumentStore) Abort() error {
	return s.AbortFn()
}

// CatalogService is a mock implementation of knacks.CatalogService.
type CatalogService struct {
	FindKnacksFn func(ctx context.Context) ([]knacks.Knack, error)
}

func (s *CatalogService) FindKnacks(ctx context.Context) ([]knacks.Knack, error) {
	return s.FindKnacksFn(ctx)
}
