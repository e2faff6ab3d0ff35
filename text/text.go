// Package text sets strings with a decoded bitmap font onto a raster
// surface, with a handful of effects: drop shadows, inline colour markup,
// strikethrough, translucent jittered text, and shaking or waving text
// animated by a caller-supplied tick.
//
// Drawing never fails. Characters without a glyph slot are skipped, and
// anything outside the surface's clip rectangle is trimmed.
package text

import (
	"math"
	"math/rand"

	"badc0de.net/pkg/go-rsam/font"
	"badc0de.net/pkg/go-rsam/raster"
)

const (
	// ShadowColour is used for drop shadows.
	ShadowColour = 0x000000
	// StrikethroughColour is used for the strikethrough line.
	StrikethroughColour = 0x800000

	randomShadowAlpha = 192
)

// Printer draws text in one font onto one surface.
//
// A Printer holds no state between calls; concurrent use is only as safe as
// concurrent use of Dst.
type Printer struct {
	Font *font.GlyphSet
	Dst  *raster.Surface
}

func (p Printer) valid() bool {
	return p.Font != nil && p.Dst != nil
}

func (p Printer) blit(g *font.Glyph, x, y, colour int) {
	p.Dst.BlitMask(g.Mask, x+g.HorizontalOffset, y+g.VerticalOffset, g.Width, g.Height, colour)
}

func (p Printer) blitAlpha(g *font.Glyph, x, y, colour, alpha int) {
	p.Dst.BlitMaskAlpha(g.Mask, x+g.HorizontalOffset, y+g.VerticalOffset, g.Width, g.Height, colour, alpha)
}

// offsetFunc returns the extra displacement of the i-th character.
type offsetFunc func(i int) (dx, dy int)

// draw is the common loop behind the markup-free effects. The pen starts at
// (x, y-VerticalSpace) and advances by each glyph's spacing; spaces advance
// without drawing.
func (p Printer) draw(s string, x, y, colour int, offset offsetFunc) {
	if !p.valid() {
		return
	}
	y -= p.Font.VerticalSpace
	for i, r := range []rune(s) {
		g := p.Font.Glyph(r)
		if g == nil {
			continue
		}
		if r != ' ' {
			dx, dy := 0, 0
			if offset != nil {
				dx, dy = offset(i)
			}
			p.blit(g, x+dx, y+dy, colour)
		}
		x += g.Spacing
	}
}

// Draw draws s with its left edge at x and its baseline at y.
func (p Printer) Draw(s string, x, y, colour int) {
	p.draw(s, x, y, colour, nil)
}

// DrawCentre draws s centred on x.
func (p Printer) DrawCentre(s string, x, y, colour int) {
	if !p.valid() {
		return
	}
	p.Draw(s, x-p.Font.TextWidth(s)/2, y, colour)
}

// DrawRight draws s with its right edge at x.
func (p Printer) DrawRight(s string, x, y, colour int) {
	if !p.valid() {
		return
	}
	p.Draw(s, x-p.Font.TextWidth(s), y, colour)
}

// markupState is the per-call state changed by inline tags.
type markupState struct {
	colour int
	strike bool
}

func (m *markupState) apply(code string) {
	tag := font.ParseTag(code)
	switch tag.Kind {
	case font.TagColour:
		m.colour = tag.Colour
	case font.TagStrikethrough:
		m.strike = true
	case font.TagEndStrikethrough:
		m.strike = false
	}
}

func (p Printer) strikethrough(m *markupState, startX, endX, y int) {
	if !m.strike {
		return
	}
	p.Dst.DrawHorizontal(startX, y+int(float64(p.Font.VerticalSpace)*0.7), endX-startX, StrikethroughColour)
}

// DrawShadowed draws s interpreting @xyz@ markup. If shadow is set, every
// glyph is first drawn one pixel down and to the right in ShadowColour.
//
// If strikethrough is still on once the whole string is drawn, a line is
// drawn through all of it, 0.7 of VerticalSpace below the top of the text
// (truncated toward zero).
func (p Printer) DrawShadowed(s string, x, y, colour int, shadow bool) {
	if !p.valid() {
		return
	}
	m := markupState{colour: colour}
	startX := x
	y -= p.Font.VerticalSpace

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if code, ok := font.TagAt(rs, i); ok {
			m.apply(code)
			i += 4
			continue
		}
		g := p.Font.Glyph(rs[i])
		if g == nil {
			continue
		}
		if rs[i] != ' ' {
			if shadow {
				p.blit(g, x+1, y+1, ShadowColour)
			}
			p.blit(g, x, y, m.colour)
		}
		x += g.Spacing
	}
	p.strikethrough(&m, startX, x, y)
}

// DrawShadowedCentre is DrawShadowed centred on x. Markup takes up no width.
func (p Printer) DrawShadowedCentre(s string, x, y, colour int, shadow bool) {
	if !p.valid() {
		return
	}
	p.DrawShadowed(s, x-p.Font.ColouredTextWidth(s)/2, y, colour, shadow)
}

// DrawRandomAlpha draws s translucently, interpreting markup. The alpha, and
// a random extra pixel of advance after roughly every fourth glyph, come from
// a generator seeded with seed, so the same seed always draws the same way.
//
// If shadow is set, each glyph gets a translucent black shadow first.
func (p Printer) DrawRandomAlpha(s string, x, y, colour int, shadow bool, seed int64) {
	if !p.valid() {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	alpha := 192 + int(rng.Uint32()&0x1f)
	m := markupState{colour: colour}
	startX := x
	y -= p.Font.VerticalSpace

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if code, ok := font.TagAt(rs, i); ok {
			m.apply(code)
			i += 4
			continue
		}
		g := p.Font.Glyph(rs[i])
		if g == nil {
			continue
		}
		if rs[i] != ' ' {
			if shadow {
				p.blitAlpha(g, x+1, y+1, ShadowColour, randomShadowAlpha)
			}
			p.blitAlpha(g, x, y, m.colour, alpha)
		}
		x += g.Spacing
		if rng.Uint32()&3 == 0 {
			x++
		}
	}
	p.strikethrough(&m, startX, x, y)
}

// DrawShaking draws s centred on x, each glyph bobbing vertically. The
// amplitude starts at 7 pixels and decays to nothing once elapsed reaches
// 56; tick drives the phase. Offsets are truncated toward zero, not
// rounded.
func (p Printer) DrawShaking(s string, x, y, colour, elapsed, tick int) {
	if !p.valid() {
		return
	}
	amplitude := 7 - float64(elapsed)/8
	if amplitude < 0 {
		amplitude = 0
	}
	p.draw(s, x-p.Font.TextWidth(s)/2, y, colour, func(i int) (int, int) {
		return 0, int(math.Sin(float64(i)/1.5+float64(tick)) * amplitude)
	})
}

// DrawWave draws s centred on x as a vertical sine wave travelling with
// tick. Offsets are truncated toward zero, not rounded.
func (p Printer) DrawWave(s string, x, y, colour, tick int) {
	if !p.valid() {
		return
	}
	p.draw(s, x-p.Font.TextWidth(s)/2, y, colour, func(i int) (int, int) {
		return 0, int(math.Sin(float64(i)/2+float64(tick)/5) * 5)
	})
}

// DrawWave2 is DrawWave with an additional horizontal wobble of a different
// frequency. Both offsets are truncated toward zero.
func (p Printer) DrawWave2(s string, x, y, colour, tick int) {
	if !p.valid() {
		return
	}
	p.draw(s, x-p.Font.TextWidth(s)/2, y, colour, func(i int) (int, int) {
		dx := int(math.Sin(float64(i)/5+float64(tick)/5) * 5)
		dy := int(math.Sin(float64(i)/3+float64(tick)/5) * 5)
		return dx, dy
	})
}
