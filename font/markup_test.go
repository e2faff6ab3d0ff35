package font

import (
	"strings"
	"testing"

	"badc0de.net/pkg/go-rsam/ttesting"
)

func TestParseTag(t *testing.T) {
	for _, tc := range []struct {
		code   string
		kind   TagKind
		colour int
	}{
		{"red", TagColour, 0xff0000},
		{"gre", TagColour, 0x00ff00},
		{"blu", TagColour, 0x0000ff},
		{"yel", TagColour, 0xffff00},
		{"cya", TagColour, 0x00ffff},
		{"mag", TagColour, 0xff00ff},
		{"whi", TagColour, 0xffffff},
		{"bla", TagColour, 0x000000},
		{"lre", TagColour, 0xff9040},
		{"dre", TagColour, 0x800000},
		{"dbl", TagColour, 0x000080},
		{"or1", TagColour, 0xffb000},
		{"or2", TagColour, 0xff7000},
		{"or3", TagColour, 0xff3000},
		{"gr1", TagColour, 0xc0ff00},
		{"gr2", TagColour, 0x80ff00},
		{"gr3", TagColour, 0x40ff00},
		{"str", TagStrikethrough, 0},
		{"end", TagEndStrikethrough, 0},
		{"xyz", TagUnknown, 0},
		{"RED", TagUnknown, 0},
	} {
		tag := ParseTag(tc.code)
		ttesting.AssertEqualInt(t, tc.code+" kind", int(tag.Kind), int(tc.kind))
		ttesting.AssertEqualInt(t, tc.code+" colour", tag.Colour, tc.colour)
	}
}

func TestTagAt(t *testing.T) {
	rs := []rune("a@red@b@gre")
	if _, ok := TagAt(rs, 0); ok {
		t.Errorf("no tag at 0")
	}
	code, ok := TagAt(rs, 1)
	if !ok || code != "red" {
		t.Errorf("TagAt(1) = %q, %v; want \"red\", true", code, ok)
	}
	if _, ok := TagAt(rs, 7); ok {
		t.Errorf("unterminated tag at 7")
	}
	if _, ok := TagAt([]rune("@red@"), 0); !ok {
		t.Errorf("tag at the very end of the text should count")
	}
	if _, ok := TagAt([]rune("@red"), 0); ok {
		t.Errorf("short text should not count as a tag")
	}
	for _, i := range []int{-1, len(rs), len(rs) + 10} {
		if _, ok := TagAt(rs, i); ok {
			t.Errorf("TagAt(%d) outside the text reported a tag", i)
		}
	}
	if _, ok := TagAt(nil, 0); ok {
		t.Errorf("TagAt on empty text reported a tag")
	}
}

func testSet() *GlyphSet {
	gs := &GlyphSet{}
	for i := range gs.Glyphs {
		gs.Glyphs[i].Spacing = 5
	}
	gs.Glyphs[' '].Spacing = 3
	gs.Glyphs['@'].Spacing = 7
	return gs
}

func TestTextWidth(t *testing.T) {
	gs := testSet()
	ttesting.AssertEqualInt(t, "empty", gs.TextWidth(""), 0)
	ttesting.AssertEqualInt(t, "spaces", gs.TextWidth(strings.Repeat(" ", 9)), 9*gs.Glyph(' ').Spacing)
	ttesting.AssertEqualInt(t, "mixed", gs.TextWidth("a b"), 5+3+5)
	ttesting.AssertEqualInt(t, "tags are plain text", gs.TextWidth("@red@a"), 7+5+5+5+7+5)
	ttesting.AssertEqualInt(t, "no slot", gs.TextWidth("a€"), 5)
}

func TestColouredTextWidth(t *testing.T) {
	gs := testSet()
	ttesting.AssertEqualInt(t, "empty", gs.ColouredTextWidth(""), 0)
	ttesting.AssertEqualInt(t, "tag skipped", gs.ColouredTextWidth("@red@a"), 5)
	ttesting.AssertEqualInt(t, "two tags", gs.ColouredTextWidth("a@str@b b@end@c"), 5+5+3+5+5)
	ttesting.AssertEqualInt(t, "trailing tag", gs.ColouredTextWidth("a@red@"), 5)
	ttesting.AssertEqualInt(t, "unterminated tag", gs.ColouredTextWidth("a@red"), 5+7+5+5+5)
	ttesting.AssertEqualInt(t, "lone at sign", gs.ColouredTextWidth("a@b"), 5+7+5)
}
