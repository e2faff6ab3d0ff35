package sprite

// This file contains functions related to using a decoded sprite as an
// image.Image, and to drawing it onto a raster surface.

import (
	"image"
	"image/color"

	"badc0de.net/pkg/go-rsam/raster"
)

// Image returns a view of the sprite as an image.Image. Transparent pixels
// have zero alpha.
func (s *Sprite) Image() image.Image {
	return spriteImage{s}
}

type spriteImage struct {
	s *Sprite
}

func (i spriteImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (i spriteImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.s.Width, i.s.Height)
}

func (i spriteImage) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= i.s.Width || y >= i.s.Height {
		return color.RGBA{}
	}
	return raster.RGBColor(i.s.Pixels[x+y*i.s.Width], false)
}

// Draw blits the sprite onto dst, adjusting (x, y) by the sprite's
// placement offsets.
func (s *Sprite) Draw(dst *raster.Surface, x, y int) {
	dst.BlitPixels(s.Pixels, x+s.OffsetX, y+s.OffsetY, s.Width, s.Height)
}
