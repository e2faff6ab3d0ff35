package raster

// span is the result of clipping a width x height source rectangle against
// a surface: where to start reading and writing, how much to copy, and how
// far to jump after each row to get to the start of the next one.
type span struct {
	src, dst         int
	width, height    int
	srcSkip, dstSkip int
}

// clip computes the span for a source of the given size drawn with its top
// left corner at (x, y). ok is false when nothing would be drawn.
func (s *Surface) clip(x, y, width, height int) (sp span, ok bool) {
	if width <= 0 || height <= 0 {
		return span{}, false
	}
	c := s.effectiveClip()
	if c.Empty() {
		return span{}, false
	}

	sp = span{
		dst:     x + y*s.Width,
		width:   width,
		height:  height,
		dstSkip: s.Width - width,
	}

	if y < c.Top {
		dy := c.Top - y
		sp.height -= dy
		y = c.Top
		sp.src += dy * width
		sp.dst += dy * s.Width
	}
	if y+sp.height > c.Bottom {
		sp.height = c.Bottom - y
	}
	if x < c.Left {
		dx := c.Left - x
		sp.width -= dx
		x = c.Left
		sp.src += dx
		sp.dst += dx
		sp.srcSkip += dx
		sp.dstSkip += dx
	}
	if x+sp.width > c.Right {
		dx := x + sp.width - c.Right
		sp.width -= dx
		sp.srcSkip += dx
		sp.dstSkip += dx
	}

	if sp.width <= 0 || sp.height <= 0 {
		return span{}, false
	}
	return sp, true
}

// BlitMask uses mask (width*height ink bytes, row-major) as a stencil: every
// pixel with non-zero ink is set to colour, every other pixel is left alone.
func (s *Surface) BlitMask(mask []byte, x, y, width, height, colour int) {
	if len(mask) < width*height {
		return
	}
	sp, ok := s.clip(x, y, width, height)
	if !ok {
		return
	}
	src, dst := sp.src, sp.dst
	for row := 0; row < sp.height; row++ {
		for col := 0; col < sp.width; col++ {
			if mask[src] != 0 {
				s.Pixels[dst] = colour
			}
			src++
			dst++
		}
		src += sp.srcSkip
		dst += sp.dstSkip
	}
}

// BlitMaskAlpha is BlitMask, but blends colour over the existing pixels
// with the given alpha (0 leaves the surface unchanged, 255 is nearly
// opaque).
func (s *Surface) BlitMaskAlpha(mask []byte, x, y, width, height, colour, alpha int) {
	if len(mask) < width*height {
		return
	}
	sp, ok := s.clip(x, y, width, height)
	if !ok {
		return
	}
	a := clampAlpha(alpha)
	fg := premultiply(uint32(colour), a)
	inv := 256 - a
	src, dst := sp.src, sp.dst
	for row := 0; row < sp.height; row++ {
		for col := 0; col < sp.width; col++ {
			if mask[src] != 0 {
				s.Pixels[dst] = int(premultiply(uint32(s.Pixels[dst]), inv) + fg)
			}
			src++
			dst++
		}
		src += sp.srcSkip
		dst += sp.dstSkip
	}
}

// BlitPixels copies width*height RGB pixels (row-major) onto the surface,
// skipping pixels equal to 0, which are transparent.
func (s *Surface) BlitPixels(pixels []int, x, y, width, height int) {
	if len(pixels) < width*height {
		return
	}
	sp, ok := s.clip(x, y, width, height)
	if !ok {
		return
	}
	src, dst := sp.src, sp.dst
	for row := 0; row < sp.height; row++ {
		for col := 0; col < sp.width; col++ {
			if p := pixels[src]; p != 0 {
				s.Pixels[dst] = p
			}
			src++
			dst++
		}
		src += sp.srcSkip
		dst += sp.dstSkip
	}
}

// Blend returns colour blended over dst with the given alpha, using the
// same fixed-point arithmetic as BlitMaskAlpha.
func Blend(dst, colour, alpha int) int {
	a := clampAlpha(alpha)
	return int(premultiply(uint32(dst), 256-a) + premultiply(uint32(colour), a))
}

func clampAlpha(alpha int) uint32 {
	if alpha < 0 {
		return 0
	}
	if alpha > 255 {
		return 255
	}
	return uint32(alpha)
}

// premultiply scales each channel of rgb by a/256. Red and blue are scaled
// together in one multiplication, green separately; the masks keep the
// channels from bleeding into each other.
func premultiply(rgb, a uint32) uint32 {
	rb := ((rgb & 0xff00ff) * a) & 0xff00ff00
	g := ((rgb & 0x00ff00) * a) & 0x00ff0000
	return (rb + g) >> 8
}
