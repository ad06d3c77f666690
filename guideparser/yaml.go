package guideparser

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/isaac-evs/sqlguide"
)

// yamlCatalog mirrors the on-disk YAML catalog format.
type yamlCatalog struct {
	Title   string           `yaml:"title"`
	Version string           `yaml:"version"`
	Entries []sqlguide.Entry `yaml:"entries"`
}

// ParseYAML parses a YAML catalog file. The document carries optional title
// and version fields plus an entries list; each record must supply all four
// entry fields. Entry order in the file is preserved.
func ParseYAML(reader io.Reader) (*sqlguide.Catalog, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	// Strict mode so typoed field names fail the load instead of silently
	// producing incomplete entries.
	var doc yamlCatalog

	err = yaml.UnmarshalWithOptions(content, &doc, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
	}

	meta := sqlguide.Metadata{
		Title:   doc.Title,
		Version: doc.Version,
	}

	return sqlguide.NewCatalog(doc.Entries, meta)
}
