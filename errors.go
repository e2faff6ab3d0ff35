// Package rsam contains the pieces shared by the sprite sheet and bitmap font
// decoders: the error taxonomy and a bounds-checked big-endian cursor over an
// already materialized archive entry.
package rsam

import (
	"github.com/pkg/errors"
)

var (
	// ErrTruncatedData is returned whenever a cursor read or skip would run
	// past the end of the supplied buffer.
	//
	// Bulk sprite decoding relies on this to find the end of a sheet, so it
	// is not necessarily a fault.
	ErrTruncatedData = errors.New("truncated data")

	// ErrMissingEntry is returned when a named archive entry does not exist.
	ErrMissingEntry = errors.New("missing archive entry")

	// ErrInvalidLayoutType is returned for a pixel layout byte other than
	// row-major (0) or column-major (1).
	ErrInvalidLayoutType = errors.New("invalid layout type")
)
