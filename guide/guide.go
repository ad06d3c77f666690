// Package guide ships the built-in SQL reference catalog so the tool works
// without any configured source file.
package guide

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/isaac-evs/sqlguide"
	"github.com/isaac-evs/sqlguide/guideparser"
)

//go:embed sqlguide.md
var document string

var load = sync.OnceValues(func() (*sqlguide.Catalog, error) {
	return guideparser.Parse(strings.NewReader(document))
})

// Catalog returns the embedded reference catalog. The document is parsed on
// first use and shared afterwards; the catalog is immutable.
func Catalog() (*sqlguide.Catalog, error) {
	return load()
}

// Document returns the raw embedded markdown, used by the init command as a
// starter catalog file.
func Document() string {
	return document
}
