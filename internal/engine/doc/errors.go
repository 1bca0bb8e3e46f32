package doc

import "errors"

// Errors returned by document operations.
var (
	// ErrOffsetOutOfRange indicates a position outside the document content.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates a range whose end precedes its start.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrNotTextblock indicates a text edit that does not lie inside a single textblock.
	ErrNotTextblock = errors.New("range is not inside a single textblock")

	// ErrNotBlockBoundary indicates a block edit whose ends are not sibling block boundaries.
	ErrNotBlockBoundary = errors.New("range does not span sibling block boundaries")

	// ErrInlineBlock indicates a text node was supplied where a block was expected.
	ErrInlineBlock = errors.New("text node is not a block")
)
