package main

import (
	"fmt"

	"github.com/redsepro/knacks"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	list, err := deps.Catalog.FindKnacks(deps.Ctx)
	if err != nil {
		if len(c.Files) == 0 {
			fmt.Fprintf(deps.Stderr, "error: %s\n", knacks.ErrorMessage(err))
			return err
		}
		deps.Logger.Warn("knack titles unavailable", "err", err)
	}

	targets := list
	if len(c.Files) > 0 {
		titles := make(map[string]string, len(list))
		for _, k := range list {
			titles[knacks.DocumentID(k.File)] = k.Title
		}
		targets = nil
		for _, file := range c.Files {
			id := knacks.DocumentID(file)
			title, ok := titles[id]
			if !ok {
				title = id
			}
			targets = append(targets, knacks.Knack{File: file, Title: title})
		}
	}
	if len(targets) == 0 {
		return knacks.Errorf(knacks.EINVALID, "nothing to export")
	}

	store := deps.NewStore(c.Dir)
	for _, k := range targets {
		id := knacks.DocumentID(k.File)
		doc, err := deps.Renderer.RenderDocument(deps.Ctx, id, k.Title)
		if err == nil {
			err = store.Save(deps.Ctx, doc)
		}
		if err != nil {
			_ = store.Abort()
			return fmt.Errorf("export %s: %w", id, err)
		}
		fmt.Fprintf(deps.Stdout, "Exported %s\n", id)
	}

	if err := store.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d knacks to %s\n", len(targets), c.Dir)
	return nil
}
