package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/redsepro/knacks/browse"
	"github.com/redsepro/knacks/bubbletea"
	"github.com/redsepro/knacks/search"
	knacksslog "github.com/redsepro/knacks/slog"
)

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	notifier := &bubbletea.Notifier{}

	browser := &browse.Browser{
		Renderer: deps.Renderer,
		Catalog:  deps.Catalog,
		Sessions: deps.Sessions,
		Logger:   deps.Logger,
		OnEvent:  notifier.BrowserEvent,
	}

	controller := &search.Controller{
		Index:     deps.Index,
		Documents: knacksslog.NewLoggingDocumentLoader(browser, deps.Logger),
		Results:   notifier,
		Content:   browser,
		Debouncer: search.NewDebouncer(search.SystemClock, deps.Config.Debounce),
	}
	defer controller.Debouncer.Cancel()

	model := bubbletea.NewModel(deps.Ctx, controller, browser, deps.Config.Theme)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(deps.Ctx),
		tea.WithOutput(deps.Stdout),
	)
	notifier.Attach(p)

	_, err := p.Run()
	if err != nil && deps.Ctx.Err() != nil {
		// Interrupted by a signal.
		return nil
	}
	return err
}
