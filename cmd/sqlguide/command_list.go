package main

import (
	"fmt"
	"os"

	"github.com/isaac-evs/sqlguide"
)

// ListCmd represents the list command
type ListCmd struct {
	Category string `arg:"" optional:"" help:"Restrict the listing to one category"`
}

// Run executes the list command
func (cmd *ListCmd) Run(ctx *Context) error {
	catalog, config, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	var entries []sqlguide.Entry
	if cmd.Category == "" {
		entries = catalog.List()
	} else {
		entries = catalog.ListCategory(cmd.Category)
		if len(entries) == 0 {
			// An unknown category is an empty result, not an error
			if !ctx.Quiet {
				fmt.Fprintf(os.Stderr, "no entries in category %q\n", cmd.Category)
			}

			return nil
		}
	}

	formatter, err := newFormatter(ctx, config)
	if err != nil {
		return err
	}

	return formatter.Render(entries, ctx.Out)
}

// CategoriesCmd represents the categories command
type CategoriesCmd struct{}

// Run executes the categories command
func (cmd *CategoriesCmd) Run(ctx *Context) error {
	catalog, _, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	for _, category := range catalog.Categories() {
		fmt.Fprintf(ctx.Out, "%s (%d)\n", category, len(catalog.ListCategory(category)))
	}

	return nil
}
