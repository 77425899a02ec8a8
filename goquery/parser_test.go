package goquery_test

import (
	"strings"
	"testing"

	"github.com/redsepro/knacks"
	"github.com/redsepro/knacks/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements knacks.DocumentParser at compile time.
var _ knacks.DocumentParser = (*goquery.Parser)(nil)

func TestParser_ParseCatalog(t *testing.T) {
	t.Parallel()

	t.Run("reads options in document order", func(t *testing.T) {
		t.Parallel()

		fragment := `<optgroup label="Linux">
	<option value="install-docker.html">Install Docker</option>
	<option value="git-basics.html" selected>Git   Basics</option>
</optgroup>
<option value="vim.html">Vim</option>`

		list, err := goquery.NewParser().ParseCatalog(fragment)

		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, knacks.Knack{File: "install-docker.html", Title: "Install Docker"}, list[0])
		assert.Equal(t, knacks.Knack{File: "git-basics.html", Title: "Git Basics", Selected: true}, list[1])
		assert.Equal(t, "vim.html", list[2].File)
	})

	t.Run("skips options without value", func(t *testing.T) {
		t.Parallel()

		fragment := `<option value="">Choose a knack</option><option value="a.html">A</option>`

		list, err := goquery.NewParser().ParseCatalog(fragment)

		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "a.html", list[0].File)
	})

	t.Run("returns empty for fragment without options", func(t *testing.T) {
		t.Parallel()

		list, err := goquery.NewParser().ParseCatalog(`<p>nothing here</p>`)

		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestParser_ParseDocument(t *testing.T) {
	t.Parallel()

	t.Run("strips embedded ids", func(t *testing.T) {
		t.Parallel()

		fragment := `<div id="wrapper"><p id='intro'>Hello</p><span id="x">y</span></div>`

		doc, err := goquery.NewParser().ParseDocument(fragment, "Greeting")

		require.NoError(t, err)
		assert.NotContains(t, doc.HTML, "wrapper")
		assert.NotContains(t, doc.HTML, "intro")
		assert.NotContains(t, doc.HTML, `id="x"`)
		assert.Contains(t, doc.HTML, "<p>Hello</p>")
	})

	t.Run("prepends the escaped title", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().ParseDocument(`<p>Body</p>`, "Docker <& Compose>")

		require.NoError(t, err)
		assert.Contains(t, doc.HTML, `<p class="title">Docker &lt;&amp; Compose&gt;</p>`)
		assert.Less(t, strings.Index(doc.HTML, "title"), strings.Index(doc.HTML, "Body"))
	})

	t.Run("numbers headings in document order", func(t *testing.T) {
		t.Parallel()

		fragment := `<h1 id="old">Docker</h1>
<p>Intro</p>
<h2>Install</h2>
<h3>On  Ubuntu</h3>
<h2>Run</h2>`

		doc, err := goquery.NewParser().ParseDocument(fragment, "Docker")

		require.NoError(t, err)
		require.Len(t, doc.Headings, 4)
		assert.Equal(t, knacks.Heading{ID: "toc-0", Level: 1, Title: "Docker", Line: -1}, doc.Headings[0])
		assert.Equal(t, knacks.Heading{ID: "toc-1", Level: 2, Title: "Install", Line: -1}, doc.Headings[1])
		assert.Equal(t, knacks.Heading{ID: "toc-2", Level: 3, Title: "On Ubuntu", Line: -1}, doc.Headings[2])
		assert.Equal(t, "toc-3", doc.Headings[3].ID)
		assert.Contains(t, doc.HTML, `<h1 id="toc-0">Docker</h1>`)
		assert.NotContains(t, doc.HTML, "old")
	})

	t.Run("returns no headings for flat content", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().ParseDocument(`<p>Just text</p>`, "Flat")

		require.NoError(t, err)
		assert.Empty(t, doc.Headings)
	})
}

