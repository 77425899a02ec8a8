package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/redsepro/knacks"
	main "github.com/redsepro/knacks/cmd/knacks"
	"github.com/redsepro/knacks/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportRecorder struct {
	dir       string
	saved     []string
	committed bool
	aborted   bool
}

func (r *exportRecorder) deps(stdout io.Writer, list []knacks.Knack, render func(id, title string) (*knacks.Document, error)) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Logger: slog.New(slog.DiscardHandler),
		Catalog: &mock.CatalogService{
			FindKnacksFn: func(context.Context) ([]knacks.Knack, error) { return list, nil },
		},
		Renderer: &mock.DocumentRenderer{
			RenderDocumentFn: func(_ context.Context, id, title string) (*knacks.Document, error) {
				return render(id, title)
			},
		},
		NewStore: func(dir string) knacks.DocumentStore {
			r.dir = dir
			return &mock.DocumentStore{
				SaveFn: func(_ context.Context, doc *knacks.Document) error {
					r.saved = append(r.saved, doc.ID+"|"+doc.Title)
					return nil
				},
				CommitFn: func() error { r.committed = true; return nil },
				AbortFn:  func() error { r.aborted = true; return nil },
			}
		},
	}
}

func renderOK(id, title string) (*knacks.Document, error) {
	return &knacks.Document{ID: id, Title: title}, nil
}

var exportList = []knacks.Knack{
	{File: "knacks/git.html", Title: "Git"},
	{File: "knacks/install-docker.html", Title: "Install Docker"},
}

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("exports the whole list", func(t *testing.T) {
		t.Parallel()

		r := &exportRecorder{}
		stdout := &bytes.Buffer{}

		err := (&main.ExportCmd{Dir: "/tmp/out"}).Run(r.deps(stdout, exportList, renderOK))

		require.NoError(t, err)
		assert.Equal(t, "/tmp/out", r.dir)
		assert.Equal(t, []string{"git.html|Git", "install-docker.html|Install Docker"}, r.saved)
		assert.True(t, r.committed)
		assert.Contains(t, stdout.String(), "Wrote 2 knacks to /tmp/out")
	})

	t.Run("exports named files with titles from the list", func(t *testing.T) {
		t.Parallel()

		r := &exportRecorder{}

		err := (&main.ExportCmd{Dir: "out", Files: []string{"install-docker.html", "vim.html"}}).Run(r.deps(&bytes.Buffer{}, exportList, renderOK))

		require.NoError(t, err)
		assert.Equal(t, []string{"install-docker.html|Install Docker", "vim.html|vim.html"}, r.saved)
	})

	t.Run("aborts when a knack fails to render", func(t *testing.T) {
		t.Parallel()

		r := &exportRecorder{}
		render := func(id, title string) (*knacks.Document, error) {
			if id == "install-docker.html" {
				return nil, knacks.Errorf(knacks.ENOTFOUND, "HTTP 404 for %s", id)
			}
			return renderOK(id, title)
		}

		err := (&main.ExportCmd{Dir: "out"}).Run(r.deps(&bytes.Buffer{}, exportList, render))

		require.Error(t, err)
		assert.Equal(t, knacks.ENOTFOUND, knacks.ErrorCode(err))
		assert.True(t, r.aborted)
		assert.False(t, r.committed)
	})

	t.Run("nothing to export", func(t *testing.T) {
		t.Parallel()

		r := &exportRecorder{}

		err := (&main.ExportCmd{Dir: "out"}).Run(r.deps(&bytes.Buffer{}, nil, renderOK))

		assert.Equal(t, knacks.EINVALID, knacks.ErrorCode(err))
	})
}
