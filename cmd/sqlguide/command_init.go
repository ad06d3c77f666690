package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/isaac-evs/sqlguide/guide"
)

// InitCmd represents the init command
type InitCmd struct{}

const sampleConfig = `# sqlguide configuration
source: guide.md
output: text
color: auto
search:
  limit: 0
`

// Run executes the init command, scaffolding a config file and a starter
// catalog seeded from the built-in guide. Existing files are left alone.
func (cmd *InitCmd) Run(ctx *Context) error {
	if ctx.Verbose {
		color.Blue("Initializing sqlguide project")
	}

	files := []struct {
		path    string
		content string
	}{
		{"sqlguide.yaml", sampleConfig},
		{"guide.md", guide.Document()},
	}

	for _, file := range files {
		if _, err := os.Stat(file.path); err == nil {
			if ctx.Verbose {
				color.Yellow("Skipping existing file: %s", file.path)
			}

			continue
		}

		err := os.WriteFile(file.path, []byte(file.content), 0o644)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", file.path, err)
		}

		if ctx.Verbose {
			color.Green("Created file: %s", file.path)
		}
	}

	if !ctx.Quiet {
		fmt.Fprintln(ctx.Out, "sqlguide project initialized")
	}

	return nil
}
