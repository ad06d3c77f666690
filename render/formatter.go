// Package render formats catalog entries for display.
package render

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/isaac-evs/sqlguide"
)

// ErrInvalidFormat is returned when an unknown output format is requested
var ErrInvalidFormat = errors.New("invalid output format")

// Format identifies an output format
type Format string

const (
	FormatText     Format = "text"
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatXML      Format = "xml"
)

// IsValidFormat checks if the output format is valid
func IsValidFormat(format string) bool {
	f := Format(strings.ToLower(format))
	return f == FormatText || f == FormatTable || f == FormatJSON ||
		f == FormatYAML || f == FormatCSV || f == FormatMarkdown || f == FormatXML
}

// Formatter formats catalog entries. Rendering never fails for well-formed
// entries; malformed entries are rejected at catalog load time.
type Formatter struct {
	Format Format
}

// NewFormatter creates a new entry formatter
func NewFormatter(format Format) *Formatter {
	return &Formatter{
		Format: format,
	}
}

// Render formats a sequence of entries, preserving their order.
func (f *Formatter) Render(entries []sqlguide.Entry, output io.Writer) error {
	switch f.Format {
	case FormatText:
		return f.renderText(entries, output)
	case FormatTable:
		return f.renderTable(entries, output)
	case FormatJSON:
		return f.renderJSON(entries, output)
	case FormatYAML:
		return f.renderYAML(entries, output)
	case FormatCSV:
		return f.renderCSV(entries, output)
	case FormatMarkdown:
		return f.renderMarkdown(entries, output)
	case FormatXML:
		return f.renderXML(entries, output)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, f.Format)
	}
}

// RenderEntry formats a single entry.
func (f *Formatter) RenderEntry(entry sqlguide.Entry, output io.Writer) error {
	return f.Render([]sqlguide.Entry{entry}, output)
}

// renderText writes one block per entry: colored name and category line,
// description, then the indented example snippet.
func (f *Formatter) renderText(entries []sqlguide.Entry, output io.Writer) error {
	nameColor := color.New(color.FgCyan, color.Bold)
	categoryColor := color.New(color.Faint)

	for i, entry := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(output); err != nil {
				return err
			}
		}

		if _, err := nameColor.Fprint(output, entry.Name); err != nil {
			return err
		}

		if _, err := categoryColor.Fprintf(output, "  (%s)\n", entry.Category); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(output, entry.Description); err != nil {
			return err
		}

		for _, line := range strings.Split(entry.Example, "\n") {
			if _, err := fmt.Fprintf(output, "    %s\n", line); err != nil {
				return err
			}
		}
	}

	return nil
}

// renderTable writes a summary table without example snippets.
func (f *Formatter) renderTable(entries []sqlguide.Entry, output io.Writer) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(output, "(0 entries)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(output)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Category", "Description"})

	for _, entry := range entries {
		t.AppendRow(table.Row{entry.Name, entry.Category, entry.Description})
	}

	t.Render()

	_, err := fmt.Fprintf(output, "(%d entries)\n", len(entries))

	return err
}

func (f *Formatter) renderJSON(entries []sqlguide.Entry, output io.Writer) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	return encoder.Encode(entries)
}

func (f *Formatter) renderYAML(entries []sqlguide.Entry, output io.Writer) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal entries to YAML: %w", err)
	}

	_, err = output.Write(data)

	return err
}

func (f *Formatter) renderCSV(entries []sqlguide.Entry, output io.Writer) error {
	writer := csv.NewWriter(output)
	defer writer.Flush()

	if err := writer.Write([]string{"name", "category", "description", "example"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		record := []string{entry.Name, entry.Category, entry.Description, entry.Example}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// renderMarkdown emits the same document shape guideparser reads, so a
// rendered catalog can be parsed back into an equal one.
func (f *Formatter) renderMarkdown(entries []sqlguide.Entry, output io.Writer) error {
	var category string

	for _, entry := range entries {
		if entry.Category != category {
			category = entry.Category

			if _, err := fmt.Fprintf(output, "## %s\n\n", category); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(output, "### %s\n\n%s\n\n```sql\n%s\n```\n\n", entry.Name, entry.Description, entry.Example); err != nil {
			return err
		}
	}

	return nil
}

func (f *Formatter) renderXML(entries []sqlguide.Entry, output io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalog")

	for _, entry := range entries {
		el := root.CreateElement("entry")
		el.CreateAttr("name", entry.Name)
		el.CreateAttr("category", entry.Category)
		el.CreateElement("description").SetText(entry.Description)
		el.CreateElement("example").SetText(entry.Example)
	}

	doc.Indent(2)

	_, err := doc.WriteTo(output)

	return err
}
