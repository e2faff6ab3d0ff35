package font

// Text may carry inline tags of the form @xyz@, where xyz is a three letter
// code. Most codes select a colour; "str" and "end" switch strikethrough on
// and off.

// TagKind says what a markup tag does.
type TagKind int

const (
	TagUnknown          TagKind = iota // no effect
	TagColour                          // change the active colour
	TagStrikethrough                   // start striking through
	TagEndStrikethrough                // stop striking through
)

// Tag is a parsed markup tag.
type Tag struct {
	Kind   TagKind
	Colour int // only for TagColour
}

var tagColours = map[string]int{
	"red": 0xff0000,
	"gre": 0x00ff00,
	"blu": 0x0000ff,
	"yel": 0xffff00,
	"cya": 0x00ffff,
	"mag": 0xff00ff,
	"whi": 0xffffff,
	"bla": 0x000000,
	"lre": 0xff9040,
	"dre": 0x800000,
	"dbl": 0x000080,
	"or1": 0xffb000,
	"or2": 0xff7000,
	"or3": 0xff3000,
	"gr1": 0xc0ff00,
	"gr2": 0x80ff00,
	"gr3": 0x40ff00,
}

// ParseTag interprets a three letter tag code.
func ParseTag(code string) Tag {
	if c, ok := tagColours[code]; ok {
		return Tag{Kind: TagColour, Colour: c}
	}
	switch code {
	case "str":
		return Tag{Kind: TagStrikethrough}
	case "end":
		return Tag{Kind: TagEndStrikethrough}
	}
	return Tag{Kind: TagUnknown}
}

// TagAt reports whether a tag starts at text[i], and returns its code. An i
// outside text never starts a tag.
func TagAt(text []rune, i int) (string, bool) {
	if i < 0 || i >= len(text) || text[i] != '@' || i+4 >= len(text) || text[i+4] != '@' {
		return "", false
	}
	return string(text[i+1 : i+4]), true
}

// TextWidth returns how far the pen advances when drawing text, without
// interpreting markup.
func (gs *GlyphSet) TextWidth(text string) int {
	w := 0
	for _, r := range text {
		w += gs.Spacing(r)
	}
	return w
}

// ColouredTextWidth is TextWidth, but tags take up no space.
func (gs *GlyphSet) ColouredTextWidth(text string) int {
	rs := []rune(text)
	w := 0
	for i := 0; i < len(rs); i++ {
		if _, ok := TagAt(rs, i); ok {
			i += 4
			continue
		}
		w += gs.Spacing(rs[i])
	}
	return w
}
