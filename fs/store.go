// Package fs exports rendered knacks as Markdown files.
package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/redsepro/knacks"
)

// DocumentPath converts a document identifier to a relative file path.
// Example: tools/install-docker.html → tools/install-docker.md
func DocumentPath(id string) (string, error) {
	id = knacks.DocumentID(strings.TrimPrefix(id, "/"))
	if id == "" {
		return "", knacks.Errorf(knacks.EINVALID, "document id required")
	}

	clean := path.Clean(id)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", knacks.Errorf(knacks.EINVALID, "document id escapes export directory: %q", id)
	}

	return strings.TrimSuffix(clean, path.Ext(clean)) + ".md", nil
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *knacks.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(quote(doc.Title))
	b.WriteString("\nfetched: ")
	b.WriteString(doc.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	if !strings.HasSuffix(doc.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// yamlEscaper escapes text for a YAML double-quoted scalar.
var yamlEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// quote wraps titles that YAML would otherwise misread.
func quote(s string) string {
	if s == "" || s != strings.TrimSpace(s) || strings.ContainsAny(s, ":#\"'{}[]&*!|>%@`\\\n\r\t") {
		return `"` + yamlEscaper.Replace(s) + `"`
	}
	return s
}

// Ensure Store implements knacks.DocumentStore at compile time.
var _ knacks.DocumentStore = (*Store)(nil)

// Store implements knacks.DocumentStore with atomic update semantics.
// Documents are saved to a temporary directory, then moved into place on
// Commit.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a new Store.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes doc below the temporary directory.
func (s *Store) Save(ctx context.Context, doc *knacks.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := DocumentPath(doc.ID)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}

// Commit replaces the output directory with the saved documents.
func (s *Store) Commit() error {
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		return knacks.Errorf(knacks.EINVALID, "nothing to commit")
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved documents.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
