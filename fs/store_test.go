package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redsepro/knacks"
	"github.com/redsepro/knacks/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{name: "html document", id: "install-docker.html", want: "install-docker.md"},
		{name: "content dir prefix", id: "knacks/install-docker.html", want: "install-docker.md"},
		{name: "leading slash", id: "/knacks/install-docker.html", want: "install-docker.md"},
		{name: "nested document", id: "tools/git.html", want: "tools/git.md"},
		{name: "no extension", id: "notes", want: "notes.md"},
		{name: "empty id", id: "", wantErr: true},
		{name: "escapes directory", id: "../secret.html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.DocumentPath(tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, knacks.EINVALID, knacks.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes frontmatter before content", func(t *testing.T) {
		t.Parallel()

		doc := &knacks.Document{
			ID:        "install-docker.html",
			Title:     "Install Docker",
			Content:   "Install Docker\n\n# Docker",
			SourceURL: "https://example.com/knacks/install-docker.html",
			FetchedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		}

		got := fs.FormatDocument(doc)

		assert.Equal(t, "---\nsource: https://example.com/knacks/install-docker.html\ntitle: Install Docker\nfetched: 2026-03-14\n---\n\nInstall Docker\n\n# Docker\n", got)
	})

	t.Run("quotes titles with yaml indicators", func(t *testing.T) {
		t.Parallel()

		doc := &knacks.Document{ID: "git.html", Title: `Git: the "stupid" tracker`}

		got := fs.FormatDocument(doc)

		assert.Contains(t, got, `title: "Git: the \"stupid\" tracker"`)
	})

	t.Run("escapes backslashes and line breaks in quoted titles", func(t *testing.T) {
		t.Parallel()

		doc := &knacks.Document{ID: "paths.html", Title: "C:\\path\nsecond line"}

		got := fs.FormatDocument(doc)

		assert.Contains(t, got, `title: "C:\\path\nsecond line"`+"\n")
	})
}

func TestStore(t *testing.T) {
	t.Parallel()

	doc := func(id string) *knacks.Document {
		return &knacks.Document{
			ID:        id,
			Title:     "Title of " + id,
			Content:   "# Heading",
			SourceURL: "https://example.com/knacks/" + id,
		}
	}

	t.Run("save writes to the temporary directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewStore(base, "out")

		err := store.Save(context.Background(), doc("tools/git.html"))

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "out.tmp", "tools", "git.md"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "out"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("commit replaces the output directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		stale := filepath.Join(base, "out", "stale.md")
		require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
		require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))
		store := fs.NewStore(base, "out")
		require.NoError(t, store.Save(context.Background(), doc("docker.html")))

		err := store.Commit()

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(base, "out", "docker.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "title: Title of docker.html")
		_, err = os.Stat(stale)
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(base, "out.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("commit without saves leaves output untouched", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		keep := filepath.Join(base, "out", "keep.md")
		require.NoError(t, os.MkdirAll(filepath.Dir(keep), 0755))
		require.NoError(t, os.WriteFile(keep, []byte("keep"), 0644))

		err := fs.NewStore(base, "out").Commit()

		require.Error(t, err)
		assert.Equal(t, knacks.EINVALID, knacks.ErrorCode(err))
		_, err = os.Stat(keep)
		assert.NoError(t, err)
	})

	t.Run("abort removes the temporary directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewStore(base, "out")
		require.NoError(t, store.Save(context.Background(), doc("a.html")))

		err := store.Abort()

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "out.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects documents without id", func(t *testing.T) {
		t.Parallel()

		err := fs.NewStore(t.TempDir(), "out").Save(context.Background(), &knacks.Document{})

		require.Error(t, err)
		assert.Equal(t, knacks.EINVALID, knacks.ErrorCode(err))
	})
}
