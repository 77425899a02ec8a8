package main

import (
	"fmt"
	"strings"

	"github.com/redsepro/knacks"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")
	if knacks.Normalize(strings.TrimSpace(query)) == "" {
		return knacks.Errorf(knacks.EINVALID, "search query required")
	}

	results := knacks.Search(query, deps.Index.Load(deps.Ctx))
	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", query)
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", knacks.DocumentID(r.File), r.Title)
		if r.Snippet != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", r.Snippet)
		}
	}
	return nil
}
