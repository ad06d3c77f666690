package sqlguide

import (
	"fmt"
	"regexp"

	"golang.org/x/text/cases"
)

// Entry represents one documented SQL term.
type Entry struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	Example     string `json:"example" yaml:"example"`
}

// Metadata holds catalog-level information taken from the source document.
type Metadata struct {
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Catalog is the full ordered collection of entries loaded from a source
// document. It is immutable after construction and safe for concurrent reads.
type Catalog struct {
	meta    Metadata
	entries []Entry
	byName  map[string]int
	folded  map[string]int
}

// NewCatalog validates the entries and builds a catalog. Entry order is
// preserved as given. It fails if any entry lacks a required field or if two
// entries share a name.
func NewCatalog(entries []Entry, meta Metadata) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	fold := cases.Fold()
	byName := make(map[string]int, len(entries))
	folded := make(map[string]int, len(entries))

	for i, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}

		if _, exists := byName[entry.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntry, entry.Name)
		}

		byName[entry.Name] = i

		// First occurrence wins for case-insensitive lookup so that folding
		// never shadows an exact name.
		key := fold.String(entry.Name)
		if _, exists := folded[key]; !exists {
			folded[key] = i
		}
	}

	return &Catalog{
		meta:    meta,
		entries: entries,
		byName:  byName,
		folded:  folded,
	}, nil
}

func validateEntry(entry Entry) error {
	switch {
	case entry.Name == "":
		return fmt.Errorf("%w: name", ErrMissingField)
	case entry.Category == "":
		return fmt.Errorf("%w: category (entry %q)", ErrMissingField, entry.Name)
	case entry.Description == "":
		return fmt.Errorf("%w: description (entry %q)", ErrMissingField, entry.Name)
	case entry.Example == "":
		return fmt.Errorf("%w: example (entry %q)", ErrMissingField, entry.Name)
	}

	return nil
}

// Metadata returns the catalog-level metadata.
func (c *Catalog) Metadata() Metadata {
	return c.meta
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get performs an exact-match lookup by name. A missing name is not an
// error; the second return value reports whether the entry exists.
func (c *Catalog) Get(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}

	return c.entries[i], true
}

// Lookup is like Get but matches names case-insensitively, so "join types"
// style user input finds "JOIN" entries. Exact matches take precedence.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	if entry, ok := c.Get(name); ok {
		return entry, true
	}

	i, ok := c.folded[cases.Fold().String(name)]
	if !ok {
		return Entry{}, false
	}

	return c.entries[i], true
}

// List returns all entries in document order.
func (c *Catalog) List() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// ListCategory returns the entries whose category matches the argument
// (case-insensitively), preserving document order. An unknown category
// yields an empty slice, not an error.
func (c *Catalog) ListCategory(category string) []Entry {
	fold := cases.Fold()
	want := fold.String(category)

	var out []Entry

	for _, entry := range c.entries {
		if fold.String(entry.Category) == want {
			out = append(out, entry)
		}
	}

	return out
}

// Categories returns the distinct category names in first-appearance order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)

	var out []string

	for _, entry := range c.entries {
		if !seen[entry.Category] {
			seen[entry.Category] = true

			out = append(out, entry.Category)
		}
	}

	return out
}

// Search returns the entries whose name or description matches the regular
// expression, case-insensitively, in document order. An empty result is not
// an error; an invalid pattern is.
func (c *Catalog) Search(pattern string) ([]Entry, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern: %w", err)
	}

	var out []Entry

	for _, entry := range c.entries {
		if re.MatchString(entry.Name) || re.MatchString(entry.Description) {
			out = append(out, entry)
		}
	}

	return out, nil
}
