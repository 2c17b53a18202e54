// Package model provides domain models and DTOs for importer module.
package model

import "errors"

// Importer module errors.
var (
	ErrMissingFile    = errors.New("spreadsheet file is required")
	ErrInvalidFile    = errors.New("file is not a readable spreadsheet")
	ErrInvalidMapping = errors.New("column mapping is invalid")
	ErrUnknownField   = errors.New("mapping references an unknown field")
	ErrNoRows         = errors.New("spreadsheet has no data rows")
	ErrNameNotMapped  = errors.New("mapping must include the name field")
)
