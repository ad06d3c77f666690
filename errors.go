package sqlguide

import "errors"

// Common errors used throughout the sqlguide package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")

	// Catalog errors

	// ErrDuplicateEntry indicates two catalog entries share the same name.
	ErrDuplicateEntry = errors.New("duplicate entry name in catalog")
	// ErrMissingField indicates an entry lacks one of the required fields.
	ErrMissingField = errors.New("entry is missing a required field")
	// ErrEmptyCatalog indicates a source document defined no entries at all.
	ErrEmptyCatalog = errors.New("catalog contains no entries")
)
