package main

import (
	"fmt"
	"os"
)

// SearchCmd represents the search command
type SearchCmd struct {
	Pattern string `arg:"" help:"Regular expression matched against entry names and descriptions"`
	Limit   int    `help:"Maximum number of results (0 means unlimited, overriding any configured limit)" default:"-1"`
}

// Run executes the search command
func (cmd *SearchCmd) Run(ctx *Context) error {
	catalog, config, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	matches, err := catalog.Search(cmd.Pattern)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		if !ctx.Quiet {
			fmt.Fprintf(os.Stderr, "no entries match %q\n", cmd.Pattern)
		}

		return nil
	}

	// A negative value means the flag was not given, so the configured limit
	// applies; an explicit 0 turns any configured limit off.
	limit := cmd.Limit
	if limit < 0 {
		limit = config.Search.Limit
	}

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	formatter, err := newFormatter(ctx, config)
	if err != nil {
		return err
	}

	return formatter.Render(matches, ctx.Out)
}
