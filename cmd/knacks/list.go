package main

import (
	"fmt"

	"github.com/redsepro/knacks"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	list, err := deps.Catalog.FindKnacks(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knacks.ErrorMessage(err))
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(deps.Stdout, "No knacks found.")
		return nil
	}

	for _, k := range list {
		marker := " "
		if k.Selected {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s\n", marker, knacks.DocumentID(k.File), k.Title)
	}

	return nil
}
