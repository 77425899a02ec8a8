// Package bubbletea is the interactive terminal surface of the knacks
// browser.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/redsepro/knacks"
	"github.com/redsepro/knacks/browse"
	"github.com/redsepro/knacks/search"
)

type pane int

const (
	paneSearch pane = iota
	paneList
	paneTOC
	paneContent
	paneCount
)

const maxLeftWidth = 42

// Model is the Bubble Tea model of the browser. Search and document loads
// run in commands; their outcomes come back through the Notifier.
type Model struct {
	ctx        context.Context
	controller *search.Controller
	browser    *browse.Browser

	keys    keyMap
	styles  Styles
	help    help.Model
	input   textinput.Model
	content viewport.Model

	focus  pane
	width  int
	height int

	catalog    []knacks.Knack
	results    []knacks.MatchResult
	query      string
	noResults  bool
	listCursor int

	toc       []knacks.TOCEntry
	active    string
	tocCursor int

	doc    *knacks.Document
	failed bool
	status string
}

// NewModel creates the browser model.
func NewModel(ctx context.Context, controller *search.Controller, browser *browse.Browser, theme knacks.Theme) *Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "Search knacks"
	input.Focus()

	return &Model{
		ctx:        ctx,
		controller: controller,
		browser:    browser,
		keys:       defaultKeyMap(),
		styles:     NewStyles(theme),
		help:       help.New(),
		input:      input,
		content:    viewport.New(80, 20),
		focus:      paneSearch,
	}
}

// Init loads the catalog and the startup knack.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg {
		list, err := m.browser.Start(m.ctx)
		return catalogMsg{list: list, err: err}
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case catalogMsg:
		m.catalog = msg.list
		if msg.err != nil {
			m.status = "Could not load the knacks list: " + knacks.ErrorMessage(msg.err)
		}

	case ResultsMsg:
		m.showResults(msg.Query, msg.Results, false)

	case NoResultsMsg:
		m.showResults(msg.Query, nil, true)

	case ClearResultsMsg:
		m.showResults("", nil, false)

	case ContentMsg:
		m.applyContent(msg.Event)

	case statusMsg:
		m.status = string(msg)

	default:
		if m.focus == paneSearch {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || (m.focus != paneSearch && key.Matches(msg, m.keys.Quit)) {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % paneCount)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + paneCount - 1) % paneCount)
		return m, nil
	case m.focus != paneSearch && key.Matches(msg, m.keys.Search):
		m.setFocus(paneSearch)
		return m, nil
	}

	switch m.focus {
	case paneSearch:
		return m.updateSearch(msg)
	case paneList:
		return m.updateList(msg)
	case paneTOC:
		return m.updateTOC(msg)
	default:
		return m.updateContent(msg)
	}
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m, m.submit(m.input.Value())
	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		return m, m.submit("")
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.controller.Input(m.ctx, v)
	}
	return m, cmd
}

func (m *Model) submit(query string) tea.Cmd {
	return func() tea.Msg {
		m.controller.Submit(m.ctx, query)
		return nil
	}
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.catalog)
	if m.showingResults() {
		n = len(m.results)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.listCursor = clamp(m.listCursor-1, n)
	case key.Matches(msg, m.keys.Down):
		m.listCursor = clamp(m.listCursor+1, n)
	case key.Matches(msg, m.keys.Enter):
		if n == 0 {
			return m, nil
		}
		if m.showingResults() {
			result, query := m.results[m.listCursor], m.query
			return m, func() tea.Msg {
				// A failed load is already shown in the content pane.
				_ = m.controller.Select(m.ctx, result, query)
				return nil
			}
		}
		k := m.catalog[m.listCursor]
		return m, func() tea.Msg {
			_ = m.browser.Open(m.ctx, k)
			return nil
		}
	}
	return m, nil
}

func (m *Model) updateTOC(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.tocCursor = clamp(m.tocCursor-1, len(m.toc))
	case key.Matches(msg, m.keys.Down):
		m.tocCursor = clamp(m.tocCursor+1, len(m.toc))
	case key.Matches(msg, m.keys.Enter):
		if len(m.toc) == 0 {
			return m, nil
		}
		id := m.toc[m.tocCursor].Heading.ID
		return m, func() tea.Msg {
			m.browser.GoToHeading(id)
			return nil
		}
	}
	return m, nil
}

func (m *Model) updateContent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		return m, func() tea.Msg {
			ok, _ := m.browser.Back(m.ctx)
			if !ok {
				return statusMsg("No previous knack")
			}
			return nil
		}
	}
	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m *Model) showResults(query string, results []knacks.MatchResult, none bool) {
	m.query = query
	m.results = results
	m.noResults = none
	m.listCursor = 0
}

func (m *Model) showingResults() bool {
	return m.query != ""
}

func (m *Model) applyContent(e browse.Event) {
	switch e.Type {
	case browse.EventLoaded, browse.EventFailed:
		m.doc = e.Document
		m.failed = e.Type == browse.EventFailed
		m.content.SetContent(m.renderDocument())
		m.content.GotoTop()
		m.tocCursor = 0
		m.status = ""
	case browse.EventScrolled:
		m.content.SetYOffset(e.Line)
	}
	m.toc, m.active = m.browser.TOC()
}

func (m *Model) setFocus(p pane) {
	m.focus = p
	if p == paneSearch {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) renderDocument() string {
	if m.doc == nil {
		return ""
	}
	lines := make([]string, len(m.doc.Lines))
	for i, line := range m.doc.Lines {
		line = plain(line)
		switch {
		case m.failed:
			line = m.styles.Error.Render(line)
		case i == 0, strings.HasPrefix(line, "#"):
			line = m.styles.Title.Render(line)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// layout returns the outer width of the left column, the inner heights of
// the list and TOC panes, and the inner size of the content pane.
func (m *Model) layout() (leftWidth, listHeight, tocHeight, contentWidth, contentHeight int) {
	leftWidth = min(maxLeftWidth, m.width/3)
	body := max(m.height-2, 6)
	rest := body - 3
	listOuter := rest / 2
	tocOuter := rest - listOuter
	return leftWidth, max(listOuter-2, 1), max(tocOuter-2, 1), max(m.width-leftWidth-4, 1), max(body-2, 1)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	_, _, _, cw, ch := m.layout()
	m.content.Width = cw
	m.content.Height = ch
	m.input.Width = max(min(maxLeftWidth, width/3)-7, 1)
}

// View renders the browser.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}
	leftWidth, listHeight, tocHeight, _, contentHeight := m.layout()
	inner := leftWidth - 4

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.pane(paneSearch, m.input.View(), leftWidth, 1),
		m.pane(paneList, m.listView(inner, listHeight), leftWidth, listHeight),
		m.pane(paneTOC, m.tocView(inner, tocHeight), leftWidth, tocHeight),
	)
	right := m.pane(paneContent, m.content.View(), m.width-leftWidth, contentHeight)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		m.styles.Status.Render(m.statusLine()),
		m.help.View(m.keys),
	)
}

func (m *Model) pane(p pane, body string, outerWidth, innerHeight int) string {
	style := m.styles.Pane
	if m.focus == p {
		style = m.styles.FocusedPane
	}
	return style.Width(max(outerWidth-2, 1)).Height(innerHeight).Render(body)
}

func (m *Model) listView(width, height int) string {
	if m.showingResults() && m.noResults {
		return m.styles.Dim.Render(truncate(fmt.Sprintf("No results for %q", plain(m.query)), width))
	}

	var rows []string
	if m.showingResults() {
		for _, r := range m.results {
			row := plain(r.Title)
			if r.Snippet != "" {
				row += "  " + plain(r.Snippet)
			}
			rows = append(rows, row)
		}
	} else {
		for _, k := range m.catalog {
			rows = append(rows, plain(k.Title))
		}
	}
	return m.window(rows, m.listCursor, width, height, m.focus == paneList, nil)
}

func (m *Model) tocView(width, height int) string {
	rows := make([]string, len(m.toc))
	active := make([]bool, len(m.toc))
	for i, e := range m.toc {
		rows[i] = strings.Repeat("  ", e.Depth) + plain(e.Heading.Title)
		active[i] = e.Heading.ID == m.active
	}
	return m.window(rows, m.tocCursor, width, height, m.focus == paneTOC, active)
}

// window renders the rows around cursor that fit in height.
func (m *Model) window(rows []string, cursor, width, height int, focused bool, active []bool) string {
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := min(start+height, len(rows))

	var b strings.Builder
	for i := start; i < end; i++ {
		row := truncate(rows[i], width-2)
		switch {
		case i == cursor && focused:
			row = m.styles.Selected.Render("> " + row)
		case active != nil && active[i]:
			row = "  " + m.styles.Active.Render(row)
		default:
			row = "  " + row
		}
		b.WriteString(row)
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	if m.doc != nil {
		return plain(m.doc.Title)
	}
	return ""
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
