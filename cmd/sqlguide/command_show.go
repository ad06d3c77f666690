package main

import (
	"fmt"
	"os"
)

// ShowCmd represents the show command
type ShowCmd struct {
	Name string `arg:"" help:"Entry name (case-insensitive, e.g. SELECT or 'inner join')"`
}

// Run executes the show command. A name with no matching entry is a normal
// empty result, not an error: the command reports it and exits zero.
func (cmd *ShowCmd) Run(ctx *Context) error {
	catalog, config, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	entry, ok := catalog.Lookup(cmd.Name)
	if !ok {
		if !ctx.Quiet {
			fmt.Fprintf(os.Stderr, "no entry found for %q\n", cmd.Name)
		}

		return nil
	}

	formatter, err := newFormatter(ctx, config)
	if err != nil {
		return err
	}

	return formatter.RenderEntry(entry, ctx.Out)
}
