package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/redsepro/knacks"
	main "github.com/redsepro/knacks/cmd/knacks"
	"github.com/redsepro/knacks/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(entries ...*knacks.IndexEntry) *mock.IndexLoader {
	for _, e := range entries {
		e.Annotate()
	}
	return &mock.IndexLoader{
		LoadFn: func(context.Context) []*knacks.IndexEntry { return entries },
	}
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints matches with snippets", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Index: indexOf(
				&knacks.IndexEntry{File: "knacks/install-docker.html", Title: "Install Docker", Text: "Instala docker en Ubuntu"},
				&knacks.IndexEntry{File: "knacks/git.html", Title: "Git", Text: "git init"},
			),
		}

		err := (&main.SearchCmd{Query: []string{"Dócker"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "install-docker.html  Install Docker\n    docker en Ubuntu\n", stdout.String())
	})

	t.Run("joins query words", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Index:  indexOf(&knacks.IndexEntry{File: "git.html", Title: "Git", Text: "git init creates a repository"}),
		}

		err := (&main.SearchCmd{Query: []string{"git", "init"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "git.html  Git")
	})

	t.Run("reports no results", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Index:  indexOf(),
		}

		err := (&main.SearchCmd{Query: []string{"docker"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No results for \"docker\".\n", stdout.String())
	})

	t.Run("rejects blank query", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}}

		err := (&main.SearchCmd{Query: []string{"  "}}).Run(deps)

		assert.Equal(t, knacks.EINVALID, knacks.ErrorCode(err))
	})

	t.Run("rejects query of only combining marks without loading", func(t *testing.T) {
		t.Parallel()

		loaded := false
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Index: &mock.IndexLoader{
				LoadFn: func(context.Context) []*knacks.IndexEntry {
					loaded = true
					return nil
				},
			},
		}

		err := (&main.SearchCmd{Query: []string{"\u0301"}}).Run(deps)

		assert.Equal(t, knacks.EINVALID, knacks.ErrorCode(err))
		assert.False(t, loaded)
	})
}
