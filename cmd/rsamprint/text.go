package main

import (
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-rsam/archive"
	"badc0de.net/pkg/go-rsam/font"
	"badc0de.net/pkg/go-rsam/raster"
	rtext "badc0de.net/pkg/go-rsam/text"
)

// margin leaves room around rendered text for shadows and wave offsets.
const margin = 8

func parseColour(flagName, s string) (int, error) {
	v, err := strconv.ParseUint(s, 16, 24)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing -%s", flagName)
	}
	return int(v), nil
}

func glyphHandler(a archive.Archive, name string, code int) bool {
	gs, err := font.FromArchive(a, name, *wideSpace)
	if err != nil {
		glog.Errorf("error decoding font %q: %v", name, err)
		return false
	}
	g := gs.Glyph(rune(code))
	if g == nil {
		glog.Errorf("no glyph %d in font %q", code, name)
		return false
	}
	glog.V(1).Infof("glyph %d of %q: %dx%d offset %d,%d spacing %d", code, name, g.Width, g.Height, g.HorizontalOffset, g.VerticalOffset, g.Spacing)

	out(g.Image())
	return true
}

// render draws s onto a fresh surface sized to fit it, applying -effect at
// the given animation tick.
func render(gs *font.GlyphSet, s string, fg, bg, tick, elapsed int) (*raster.Surface, error) {
	surf := raster.NewSurface(gs.ColouredTextWidth(s)+2*margin, gs.VerticalSpace+2*margin)
	surf.Fill(bg)
	p := rtext.Printer{Font: gs, Dst: surf}

	baseline := margin + gs.VerticalSpace
	centre := surf.Width / 2
	switch *effect {
	case "plain":
		p.Draw(s, margin, baseline, fg)
	case "centre":
		p.DrawCentre(s, centre, baseline, fg)
	case "right":
		p.DrawRight(s, surf.Width-margin, baseline, fg)
	case "shadow":
		p.DrawShadowed(s, margin, baseline, fg, true)
	case "random":
		p.DrawRandomAlpha(s, margin, baseline, fg, true, *seed+int64(tick))
	case "shake":
		p.DrawShaking(s, centre, baseline, fg, elapsed, tick)
	case "wave":
		p.DrawWave(s, centre, baseline, fg, tick)
	case "wave2":
		p.DrawWave2(s, centre, baseline, fg, tick)
	default:
		return nil, errors.Errorf("unknown effect %q", *effect)
	}
	return surf, nil
}

func loadText(a archive.Archive, name string) (gs *font.GlyphSet, fg, bg int, err error) {
	if gs, err = font.FromArchive(a, name, *wideSpace); err != nil {
		return nil, 0, 0, err
	}
	if fg, err = parseColour("colour", *colour); err != nil {
		return nil, 0, 0, err
	}
	if bg, err = parseColour("background", *bgColour); err != nil {
		return nil, 0, 0, err
	}
	return gs, fg, bg, nil
}

func textHandler(a archive.Archive, name, s string) bool {
	gs, fg, bg, err := loadText(a, name)
	if err != nil {
		glog.Errorf("error preparing text: %v", err)
		return false
	}
	surf, err := render(gs, s, fg, bg, *tick, *elapsed)
	if err != nil {
		glog.Error(err)
		return false
	}

	out(surf.Image())
	return true
}
