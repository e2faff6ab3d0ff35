// Package font decodes bitmap fonts: 256 glyph stencils, one per byte value,
// plus the layout metrics needed to set text with them.
//
// Like sprite sheets, a font is split between its own data entry (the ink
// bytes of every glyph) and the archive-wide metadata entry (each glyph's
// offsets, size and pixel layout).
package font

import (
	"image"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-rsam"
	"badc0de.net/pkg/go-rsam/archive"
)

// GlyphCount is the number of glyph slots in a font.
const GlyphCount = 256

// Glyph is a single character's stencil and metrics.
type Glyph struct {
	Width, Height int

	// Draw position adjustment, relative to the pen position.
	HorizontalOffset, VerticalOffset int

	// Spacing is how far the pen advances after the glyph.
	Spacing int

	// Mask holds Width*Height ink bytes in row-major order. 0 is
	// transparent, anything else is ink.
	Mask []byte
}

// Image returns the glyph's stencil as an alpha mask.
func (g *Glyph) Image() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, g.Width, g.Height))
	for i, ink := range g.Mask {
		if ink != 0 {
			img.Pix[i] = 0xFF
		}
	}
	return img
}

// GlyphSet is a decoded font.
type GlyphSet struct {
	Glyphs [GlyphCount]Glyph

	// VerticalSpace is the height of the tallest glyph among the first 128.
	// Text is drawn this far above the requested y so that baselines line
	// up.
	VerticalSpace int
}

// Glyph returns the glyph for r, or nil if r has no slot in the font.
func (gs *GlyphSet) Glyph(r rune) *Glyph {
	if r < 0 || r >= GlyphCount {
		return nil
	}
	return &gs.Glyphs[r]
}

// Spacing returns the advance for r, or 0 if r has no slot.
func (gs *GlyphSet) Spacing(r rune) int {
	if g := gs.Glyph(r); g != nil {
		return g.Spacing
	}
	return 0
}

// Decode decodes a font out of its data entry and the archive-wide metadata
// entry. If wideSpace is set, the space character advances as far as 'I';
// otherwise as far as 'i'.
func Decode(meta, data []byte, wideSpace bool) (*GlyphSet, error) {
	d := rsam.NewBuffer(data)
	m := rsam.NewBuffer(meta)

	off, err := d.U16()
	if err != nil {
		return nil, errors.Wrap(err, "could not read font metadata offset")
	}
	if err := m.Seek(off + 4); err != nil {
		return nil, errors.Wrap(err, "could not seek to font metadata")
	}

	marker, err := m.U8()
	if err != nil {
		return nil, errors.Wrap(err, "could not read legacy marker")
	}
	if marker > 0 {
		// Older revisions carry 3-byte records here that are not used.
		if err := m.Skip(3 * (marker - 1)); err != nil {
			return nil, errors.Wrapf(err, "could not skip legacy records (marker %d)", marker)
		}
	}
	glog.V(2).Infof("font metadata at %d, marker %d, glyphs at %d", off+4, marker, m.Pos())

	gs := &GlyphSet{}
	for c := 0; c < GlyphCount; c++ {
		g := &gs.Glyphs[c]
		if err := readGlyph(m, d, g); err != nil {
			return nil, errors.Wrapf(err, "glyph %d", c)
		}
		if c < 128 && g.Height > gs.VerticalSpace {
			gs.VerticalSpace = g.Height
		}
		kern(g)
		glog.V(3).Infof("glyph %d: %dx%d, offset %d,%d, spacing %d", c, g.Width, g.Height, g.HorizontalOffset, g.VerticalOffset, g.Spacing)
	}

	if wideSpace {
		gs.Glyphs[' '].Spacing = gs.Glyphs['I'].Spacing
	} else {
		gs.Glyphs[' '].Spacing = gs.Glyphs['i'].Spacing
	}
	return gs, nil
}

func readGlyph(m, d *rsam.Buffer, g *Glyph) error {
	var err error
	if g.HorizontalOffset, err = m.U8(); err != nil {
		return errors.Wrap(err, "could not read horizontal offset")
	}
	if g.VerticalOffset, err = m.U8(); err != nil {
		return errors.Wrap(err, "could not read vertical offset")
	}
	if g.Width, err = m.U16(); err != nil {
		return errors.Wrap(err, "could not read width")
	}
	if g.Height, err = m.U16(); err != nil {
		return errors.Wrap(err, "could not read height")
	}
	format, err := m.U8()
	if err != nil {
		return errors.Wrap(err, "could not read format")
	}
	if g.Mask, err = rsam.ReadPixels(d, g.Width, g.Height, rsam.Layout(format)); err != nil {
		return errors.Wrap(err, "could not read ink")
	}
	return nil
}

// kern replaces the glyph's stored horizontal offset and computes its
// spacing. A glyph whose left edge is (nearly) empty below the top seventh
// is pulled one pixel to the left and advances one pixel less; the same
// test on the right edge takes away another pixel of advance.
func kern(g *Glyph) {
	g.HorizontalOffset = 1
	g.Spacing = g.Width + 2

	threshold := g.Height / 7
	if columnInk(g, 0) <= threshold {
		g.Spacing--
		g.HorizontalOffset = 0
	}
	if columnInk(g, g.Width-1) <= threshold {
		g.Spacing--
	}
}

// columnInk sums the ink bytes of column x from row Height/7 down, treating
// each byte as a signed value.
func columnInk(g *Glyph, x int) int {
	if x < 0 || x >= g.Width {
		return 0
	}
	sum := 0
	for y := g.Height / 7; y < g.Height; y++ {
		sum += int(int8(g.Mask[x+y*g.Width]))
	}
	return sum
}

// FromArchive decodes the font stored in the entry name+".dat".
func FromArchive(a archive.Archive, name string, wideSpace bool) (*GlyphSet, error) {
	data, err := a.ReadNamedEntry(name + ".dat")
	if err != nil {
		return nil, errors.Wrapf(err, "could not read font %q", name)
	}
	meta, err := a.ReadEntry(archive.IndexHash)
	if err != nil {
		return nil, errors.Wrap(err, "could not read font metadata")
	}
	gs, err := Decode(meta, data, wideSpace)
	if err != nil {
		return nil, errors.Wrapf(err, "font %q", name)
	}
	return gs, nil
}
