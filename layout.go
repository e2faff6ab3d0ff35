package rsam

import (
	"github.com/pkg/errors"
)

// Layout selects the order in which a bitmap's pixel bytes are stored.
type Layout int

const (
	LayoutRowMajor    Layout = 0 // x varies fastest
	LayoutColumnMajor Layout = 1 // y varies fastest
)

func (l Layout) String() string {
	switch l {
	case LayoutRowMajor:
		return "row-major"
	case LayoutColumnMajor:
		return "column-major"
	default:
		return "invalid"
	}
}

// Valid reports whether l is one of the two defined layouts.
func (l Layout) Valid() bool {
	return l == LayoutRowMajor || l == LayoutColumnMajor
}

// ReadPixels consumes width*height bytes from buf, stored in the given layout,
// and returns them in row-major order (index x+y*width).
//
// Running out of data takes precedence over an invalid layout, so that
// walking past the last record of a sheet reads as the end of the sheet.
// Nothing is consumed on error.
func ReadPixels(buf *Buffer, width, height int, layout Layout) ([]byte, error) {
	if err := buf.need(width * height); err != nil {
		return nil, err
	}
	if !layout.Valid() {
		return nil, errors.Wrapf(ErrInvalidLayoutType, "layout byte %d", int(layout))
	}
	raw, err := buf.Bytes(width * height)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	if layout == LayoutRowMajor {
		copy(out, raw)
		return out, nil
	}
	i := 0
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			out[x+y*width] = raw[i]
			i++
		}
	}
	return out, nil
}
