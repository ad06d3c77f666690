// Package guideparser loads SQL reference documents into a sqlguide.Catalog.
//
// The primary source format is a markdown reference guide: level-2 headings
// name categories, level-3 headings name entries, and each entry carries a
// prose description followed by a fenced code example. A YAML record format
// is also supported for catalogs maintained as plain data files.
package guideparser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/isaac-evs/sqlguide"
)

// Sentinel errors
var (
	ErrInvalidFrontMatter = fmt.Errorf("invalid front matter")
	ErrNoCategory         = fmt.Errorf("entry defined before any category heading")
	ErrUnsupportedSource  = fmt.Errorf("unsupported source file extension")
)

// Parse parses a markdown reference document and returns the loaded catalog.
// It fails if the document defines no entries, if an entry appears before the
// first category heading, or if the entries themselves are invalid (duplicate
// names, missing fields).
func Parse(reader io.Reader) (*sqlguide.Catalog, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	frontMatter, body, err := parseFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	doc := md.Parser().Parse(text.NewReader([]byte(body)))

	entries, title, err := extractEntriesFromAST(doc, []byte(body))
	if err != nil {
		return nil, err
	}

	meta := metadataFromFrontMatter(frontMatter)
	if meta.Title == "" {
		meta.Title = title
	}

	return sqlguide.NewCatalog(entries, meta)
}

// ParseFile loads a catalog from a file, choosing the parser by extension:
// .md/.markdown for markdown guides, .yaml/.yml for YAML catalogs.
func ParseFile(path string) (*sqlguide.Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog source: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		catalog, err := Parse(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}

		return catalog, nil
	case ".yaml", ".yml":
		catalog, err := ParseYAML(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}

		return catalog, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, filepath.Ext(path))
	}
}

// entryBuilder accumulates one entry while walking the document.
type entryBuilder struct {
	name        string
	category    string
	description []string
	example     string
}

func (b *entryBuilder) build() sqlguide.Entry {
	return sqlguide.Entry{
		Name:        b.name,
		Category:    b.category,
		Description: strings.Join(b.description, "\n\n"),
		Example:     b.example,
	}
}

// extractEntriesFromAST walks the markdown AST and collects entries in
// document order. The first level-1 heading becomes the catalog title.
func extractEntriesFromAST(doc ast.Node, content []byte) ([]sqlguide.Entry, string, error) {
	var (
		entries  []sqlguide.Entry
		title    string
		category string
		current  *entryBuilder
		walkErr  error
	)

	flush := func() {
		if current != nil {
			entries = append(entries, current.build())
			current = nil
		}
	}

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			headingText := extractTextFromHeadingNode(node, content)

			switch {
			case node.Level == 1:
				if title == "" {
					title = headingText
				}
			case node.Level == 2:
				flush()

				category = headingText
			case node.Level == 3:
				flush()

				if category == "" {
					walkErr = fmt.Errorf("%w: %q", ErrNoCategory, headingText)
					return ast.WalkStop, nil
				}

				current = &entryBuilder{name: headingText, category: category}
			}

			return ast.WalkSkipChildren, nil

		case *ast.Paragraph:
			if current != nil {
				if block := extractBlockText(node, content); block != "" {
					current.description = append(current.description, block)
				}
			}

			return ast.WalkSkipChildren, nil

		case *ast.List:
			if current != nil {
				if block := extractListText(node, content); block != "" {
					current.description = append(current.description, block)
				}
			}

			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			if current != nil && current.example == "" {
				current.example = extractCodeBlockContent(node, content)
			}

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	if walkErr != nil {
		return nil, "", walkErr
	}

	flush()

	return entries, title, nil
}

// extractTextFromHeadingNode extracts text content from a heading AST node
func extractTextFromHeadingNode(heading ast.Node, content []byte) string {
	var result strings.Builder

	ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			segment := node.Segment
			result.Write(content[segment.Start:segment.Stop])
		case *ast.String:
			result.Write(node.Value)
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(result.String())
}

// extractBlockText joins the raw source lines of a block node, collapsing
// soft line wraps into single spaces.
func extractBlockText(node ast.Node, content []byte) string {
	if node.Lines() == nil {
		return ""
	}

	lines := make([]string, 0, node.Lines().Len())

	for i := 0; i < node.Lines().Len(); i++ {
		segment := node.Lines().At(i)
		lines = append(lines, strings.TrimSpace(string(content[segment.Start:segment.Stop])))
	}

	return strings.TrimSpace(strings.Join(lines, " "))
}

// extractListText renders a list node back into plain "- item" lines so list
// content survives as part of an entry description.
func extractListText(list ast.Node, content []byte) string {
	var items []string

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var parts []string

		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if block := extractBlockText(child, content); block != "" {
				parts = append(parts, block)
			}
		}

		if len(parts) > 0 {
			items = append(items, "- "+strings.Join(parts, " "))
		}
	}

	return strings.Join(items, "\n")
}

// extractCodeBlockContent extracts the actual content from a code block AST node
func extractCodeBlockContent(codeBlock ast.Node, content []byte) string {
	var result strings.Builder

	if codeBlock.Lines() != nil {
		for i := 0; i < codeBlock.Lines().Len(); i++ {
			line := codeBlock.Lines().At(i)
			result.Write(content[line.Start:line.Stop])
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// metadataFromFrontMatter maps recognized front matter keys onto catalog
// metadata. Unknown keys are ignored.
func metadataFromFrontMatter(frontMatter map[string]any) sqlguide.Metadata {
	var meta sqlguide.Metadata

	if title, ok := frontMatter["title"].(string); ok {
		meta.Title = title
	}

	if version, ok := frontMatter["version"]; ok && version != nil {
		meta.Version = strings.TrimSpace(fmt.Sprintf("%v", version))
	}

	return meta
}
