// Package raster implements a software pixel surface with a clip rectangle,
// and the blits used to draw font glyphs and sprites onto it.
//
// Pixels are 24-bit RGB values stored as int. Drawing never fails: anything
// that falls outside the clip rectangle is trimmed, and degenerate input is
// silently ignored.
//
// A Surface is not safe for concurrent use; draws to the same surface must
// be serialized by the caller.
package raster

import (
	"image"
	"image/color"
)

// Rect is a half-open rectangle: Left <= x < Right, Top <= y < Bottom.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Intersect returns the largest rectangle contained by both r and o.
func (r Rect) Intersect(o Rect) Rect {
	if o.Left > r.Left {
		r.Left = o.Left
	}
	if o.Top > r.Top {
		r.Top = o.Top
	}
	if o.Right < r.Right {
		r.Right = o.Right
	}
	if o.Bottom < r.Bottom {
		r.Bottom = o.Bottom
	}
	return r
}

// Surface is a destination pixel buffer.
type Surface struct {
	// Width is also the buffer stride.
	Width, Height int

	// Pixels holds at least Width*Height RGB values, row-major.
	Pixels []int

	// Clip is the drawable area. Blits only ever write inside it.
	Clip Rect
}

// NewSurface allocates a black surface with the clip rectangle covering all
// of it.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s := &Surface{
		Width:  width,
		Height: height,
		Pixels: make([]int, width*height),
	}
	s.ResetClip()
	return s
}

// Rect returns the full extent of the surface.
func (s *Surface) Rect() Rect {
	return Rect{Right: s.Width, Bottom: s.Height}
}

// SetClip sets the clip rectangle, trimmed to the surface.
func (s *Surface) SetClip(r Rect) {
	s.Clip = r.Intersect(s.Rect())
}

// ResetClip makes the whole surface drawable.
func (s *Surface) ResetClip() {
	s.Clip = s.Rect()
}

// effectiveClip trims Clip to what the pixel buffer can hold, in case the
// fields were set directly.
func (s *Surface) effectiveClip() Rect {
	if s.Width <= 0 {
		return Rect{}
	}
	rows := len(s.Pixels) / s.Width
	if rows > s.Height {
		rows = s.Height
	}
	return s.Clip.Intersect(Rect{Right: s.Width, Bottom: rows})
}

// Fill paints the clip rectangle with colour.
func (s *Surface) Fill(colour int) {
	c := s.effectiveClip()
	for y := c.Top; y < c.Bottom; y++ {
		row := s.Pixels[y*s.Width : (y+1)*s.Width]
		for x := c.Left; x < c.Right; x++ {
			row[x] = colour
		}
	}
}

// DrawHorizontal draws a horizontal line of the given length starting at
// (x, y).
func (s *Surface) DrawHorizontal(x, y, length, colour int) {
	c := s.effectiveClip()
	if y < c.Top || y >= c.Bottom {
		return
	}
	if x < c.Left {
		length -= c.Left - x
		x = c.Left
	}
	if x+length > c.Right {
		length = c.Right - x
	}
	off := x + y*s.Width
	for i := 0; i < length; i++ {
		s.Pixels[off+i] = colour
	}
}

// RGB returns the pixel at (x, y) as 24-bit RGB, or 0 outside the surface.
func (s *Surface) RGB(x, y int) int {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height || x+y*s.Width >= len(s.Pixels) {
		return 0
	}
	return s.Pixels[x+y*s.Width]
}

// Image returns a view of the surface as an image.Image. The view shares
// the pixel buffer.
func (s *Surface) Image() image.Image {
	return surfaceImage{s}
}

type surfaceImage struct {
	s *Surface
}

func (i surfaceImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (i surfaceImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.s.Width, i.s.Height)
}

func (i surfaceImage) At(x, y int) color.Color {
	return RGBColor(i.s.RGB(x, y), true)
}

// RGBColor converts a 24-bit RGB value into a color.RGBA. If opaqueBlack is false,
// 0 is returned as fully transparent instead of black.
func RGBColor(rgb int, opaqueBlack bool) color.RGBA {
	if rgb == 0 && !opaqueBlack {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xFF,
	}
}
