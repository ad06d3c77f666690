package main

import (
	"github.com/fatih/color"

	"github.com/isaac-evs/sqlguide"
	"github.com/isaac-evs/sqlguide/guide"
	"github.com/isaac-evs/sqlguide/guideparser"
)

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Source string `arg:"" optional:"" help:"Catalog source file (defaults to the configured source)"`
}

// Run executes the validate command. A malformed source fails the command,
// so the exit code reports catalog health.
func (cmd *ValidateCmd) Run(ctx *Context) error {
	config, err := sqlguide.LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	applyColorMode(config)

	source := cmd.Source
	if source == "" {
		source = ctx.Source
	}

	if source == "" {
		source = config.Source
	}

	if source == "" {
		// Nothing configured; validate the built-in guide so the command
		// still exercises the full load path.
		catalog, err := guide.Catalog()
		if err != nil {
			return err
		}

		return cmd.report(ctx, "built-in guide", catalog)
	}

	catalog, err := guideparser.ParseFile(source)
	if err != nil {
		return err
	}

	return cmd.report(ctx, source, catalog)
}

func (cmd *ValidateCmd) report(ctx *Context, source string, catalog *sqlguide.Catalog) error {
	if ctx.Quiet {
		return nil
	}

	color.New(color.FgGreen).Fprintf(ctx.Out, "OK: %s\n", source)

	if ctx.Verbose {
		color.New(color.Faint).Fprintf(ctx.Out, "%d entries in %d categories\n", catalog.Len(), len(catalog.Categories()))
	}

	return nil
}
