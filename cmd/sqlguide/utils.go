package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/isaac-evs/sqlguide"
	"github.com/isaac-evs/sqlguide/guide"
	"github.com/isaac-evs/sqlguide/guideparser"
	"github.com/isaac-evs/sqlguide/render"
)

// loadCatalog resolves the catalog source and loads it. Precedence: --source
// flag, then the config file's source, then the embedded reference guide.
func loadCatalog(ctx *Context) (*sqlguide.Catalog, *sqlguide.Config, error) {
	config, err := sqlguide.LoadConfig(ctx.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	applyColorMode(config)

	source := ctx.Source
	if source == "" {
		source = config.Source
	}

	if source == "" {
		catalog, err := guide.Catalog()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load built-in catalog: %w", err)
		}

		return catalog, config, nil
	}

	catalog, err := guideparser.ParseFile(source)
	if err != nil {
		return nil, nil, err
	}

	return catalog, config, nil
}

// newFormatter resolves the output format. Precedence: --format flag, then
// the config file's output setting.
func newFormatter(ctx *Context, config *sqlguide.Config) (*render.Formatter, error) {
	format := ctx.Format
	if format == "" {
		format = config.Output
	}

	if !render.IsValidFormat(format) {
		return nil, fmt.Errorf("%w: %s", render.ErrInvalidFormat, format)
	}

	return render.NewFormatter(render.Format(format)), nil
}

func applyColorMode(config *sqlguide.Config) {
	switch {
	case CLI.NoColor || config.Color == "never":
		color.NoColor = true
	case config.Color == "always":
		color.NoColor = false
	}
}
