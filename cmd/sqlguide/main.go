package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Source  string
	Format  string
	Verbose bool
	Quiet   bool
	Out     io.Writer
}

// CLI represents the command-line interface
var CLI struct {
	Config     string        `help:"Configuration file path" default:"sqlguide.yaml"`
	Source     string        `help:"Catalog source file (overrides config; empty uses the built-in guide)" short:"s"`
	Format     string        `help:"Output format (text, table, json, yaml, csv, markdown, xml)" short:"f"`
	Verbose    bool          `help:"Enable verbose output" short:"v"`
	Quiet      bool          `help:"Suppress output" short:"q"`
	NoColor    bool          `help:"Disable colored output"`
	Show       ShowCmd       `cmd:"" help:"Show a single entry by name"`
	List       ListCmd       `cmd:"" help:"List entries, optionally filtered by category"`
	Categories CategoriesCmd `cmd:"" help:"List catalog categories"`
	Search     SearchCmd     `cmd:"" help:"Search entries by regular expression"`
	Validate   ValidateCmd   `cmd:"" help:"Validate a catalog source file"`
	Init       InitCmd       `cmd:"" help:"Initialize a sqlguide project in the current directory"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, "sqlguide v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &Context{
		Config:  CLI.Config,
		Source:  CLI.Source,
		Format:  CLI.Format,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Out:     os.Stdout,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
