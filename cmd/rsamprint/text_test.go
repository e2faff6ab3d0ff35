package main

import (
	"testing"

	"badc0de.net/pkg/go-rsam/font"
	"badc0de.net/pkg/go-rsam/ttesting"
)

func TestParseColour(t *testing.T) {
	for s, want := range map[string]int{
		"ffff00": 0xffff00,
		"0":      0,
		"800000": 0x800000,
	} {
		got, err := parseColour("colour", s)
		if err != nil {
			t.Errorf("parseColour(%q): %v", s, err)
			continue
		}
		ttesting.AssertEqualInt(t, s, got, want)
	}
	for _, s := range []string{"", "fffffff", "zz"} {
		if _, err := parseColour("colour", s); err == nil {
			t.Errorf("parseColour(%q): expected error", s)
		}
	}
}

func testGlyphSet() *font.GlyphSet {
	gs := &font.GlyphSet{VerticalSpace: 4}
	gs.Glyphs['A'] = font.Glyph{Width: 2, Height: 2, Spacing: 3, Mask: []byte{0xff, 0xff, 0xff, 0xff}}
	return gs
}

func TestRender(t *testing.T) {
	surf, err := render(testGlyphSet(), "A", 0xff0000, 0x000080, 0, 0)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	ttesting.AssertEqualInt(t, "width", surf.Width, 3+2*margin)
	ttesting.AssertEqualInt(t, "height", surf.Height, 4+2*margin)
	ttesting.AssertEqualInt(t, "glyph", surf.RGB(margin, margin), 0xff0000)
	ttesting.AssertEqualInt(t, "background", surf.RGB(0, 0), 0x000080)
}

func TestRenderUnknownEffect(t *testing.T) {
	old := *effect
	defer func() { *effect = old }()
	*effect = "sparkle"
	if _, err := render(testGlyphSet(), "A", 0xff0000, 0, 0, 0); err == nil {
		t.Errorf("expected error for unknown effect")
	}
}
