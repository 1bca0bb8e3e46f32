package engine

import (
	"errors"

	"github.com/dshills/quarry/internal/engine/doc"
)

// Errors returned by engine operations.
var (
	// ErrStaleTransaction indicates a transaction built from a state that is no longer current.
	ErrStaleTransaction = errors.New("transaction does not start from the current state")

	// ErrOffsetOutOfRange indicates an offset is outside the valid document range.
	ErrOffsetOutOfRange = doc.ErrOffsetOutOfRange

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = doc.ErrRangeInvalid

	// ErrNotTextblock indicates a text edit spanning more than one textblock.
	ErrNotTextblock = doc.ErrNotTextblock
)
