// SPDX-License-Identifier: MIT
// Package biome: sentinel errors and the structured ParseError.
// Every message is prefixed with "biome: ..."; match with errors.Is.

package biome

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrBadShape indicates a matrix with fewer than one row or column.
	ErrBadShape = errors.New("biome: matrix shape must be at least 1x1")

	// ErrInvalidBiome indicates an empty name or an inverted/non-finite range.
	ErrInvalidBiome = errors.New("biome: invalid biome definition")

	// ErrDivisionUndefined indicates normalization against a range of zero
	// width, or against ranges not yet established by any insertion.
	ErrDivisionUndefined = errors.New("biome: normalization over zero-width range")

	// ErrNoBiome indicates a climate point that maps to no biome.
	ErrNoBiome = errors.New("biome: no biome for climate point")

	// ErrDuplicateName indicates a biome name already present in either catalog.
	ErrDuplicateName = errors.New("biome: duplicate biome name")

	// ErrDuplicateID indicates a biome id already present in the catalog.
	ErrDuplicateID = errors.New("biome: duplicate biome id")

	// ErrBiomeNotFound indicates a name or id absent from both catalogs.
	ErrBiomeNotFound = errors.New("biome: biome not found")

	// ErrParse classifies every *ParseError.
	ErrParse = errors.New("biome: malformed source")

	// ErrMissingField indicates a required source field is absent.
	ErrMissingField = errors.New("biome: missing required field")

	// ErrWrongKind indicates a source node of the wrong shape (e.g. a list
	// where a mapping is required).
	ErrWrongKind = errors.New("biome: unexpected node kind")
)

// ParseError locates a malformed record in a biome source.
// It matches ErrParse via errors.Is and unwraps to the underlying cause.
type ParseError struct {
	Category string // top-level key, empty for document-level problems
	Biome    string // biome key, empty for category-level problems
	Field    string // field key, empty for record-level problems
	Line     int    // 1-based source line, 0 if unknown
	Err      error
}

// Error formats "biome: malformed source at Category/Biome.field (line N): cause".
func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrParse.Error())
	if loc := e.location(); loc != "" {
		sb.WriteString(" at ")
		sb.WriteString(loc)
	}
	if e.Line > 0 {
		sb.WriteString(" (line ")
		sb.WriteString(strconv.Itoa(e.Line))
		sb.WriteString(")")
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

func (e *ParseError) location() string {
	loc := e.Category
	if e.Biome != "" {
		loc += "/" + e.Biome
	}
	if e.Field != "" {
		loc += "." + e.Field
	}
	return loc
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
