package sprite

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"

	"badc0de.net/pkg/go-rsam"
	"badc0de.net/pkg/go-rsam/archive"
	"badc0de.net/pkg/go-rsam/ttesting"
)

var smallSheet = []testSprite{
	{width: 2, height: 2, layout: 1, indices: []byte{1, 1, 0, 1}},
}

func testArchive(t *testing.T) *archive.Mem {
	t.Helper()
	meta, dataA := encodeSheet(nil, testPalette, testSprites)
	meta, dataB := encodeSheet(meta, []int{0xffffff}, smallSheet)

	a := &archive.Mem{}
	a.Add(archive.IndexName, meta)
	a.Add("a.dat", dataA)
	a.Add("empty.dat", nil)
	a.Add("b.dat", dataB)
	a.Add("elsewhere.dat", u16(nil, len(meta)+100))
	return a
}

func TestDecodeSheet(t *testing.T) {
	meta, data := encodeSheet(nil, testPalette, testSprites)
	sprites, err := DecodeSheet(meta, data)
	if err != nil {
		t.Fatalf("DecodeSheet: %v", err)
	}
	ttesting.AssertEqualInt(t, "sprite count", len(sprites), len(testSprites))
	for i, s := range sprites {
		ttesting.AssertEqualInts(t, fmt.Sprintf("sprite %d pixels", i), s.Pixels, expectedPixels(testPalette, testSprites[i].indices))
	}
}

func TestDecodeAll(t *testing.T) {
	set, err := DecodeAll(testArchive(t))
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}

	keys := set.Keys()
	ttesting.AssertEqualInt(t, "sheet count", len(keys), 4)
	ttesting.AssertEqualInt(t, "index excluded", set.Len(), 4)
	want := []string{"a.dat", "empty.dat", "b.dat", "elsewhere.dat"}
	for i, name := range want {
		ttesting.AssertEqualInt(t, "order of "+name, int(keys[i]), int(archive.NameHash(name)))
	}

	for _, tc := range []struct {
		name  string
		count int
	}{
		{"a.dat", len(testSprites)},
		{"empty.dat", 0},
		{"b.dat", len(smallSheet)},
		{"elsewhere.dat", 0},
	} {
		sprites, ok := set.Sheet(archive.NameHash(tc.name))
		if !ok {
			t.Errorf("sheet %q missing", tc.name)
			continue
		}
		if sprites == nil {
			t.Errorf("sheet %q: got nil; want empty slice", tc.name)
		}
		ttesting.AssertEqualInt(t, "sprites in "+tc.name, len(sprites), tc.count)
	}

	s, err := set.Sprite(archive.NameHash("b.dat"), 0)
	if err != nil {
		t.Fatalf("Sprite: %v", err)
	}
	ttesting.AssertEqualInts(t, "b.dat sprite pixels", s.Pixels, []int{0xffffff, 0xffffff, 0, 0xffffff})

	_, err = set.Sprite(archive.NameHash("nope.dat"), 0)
	ttesting.AssertErrorIs(t, "unknown sheet", err, rsam.ErrMissingEntry)
	if _, err := set.Sprite(archive.NameHash("a.dat"), len(testSprites)); err == nil {
		t.Errorf("expected error for sprite index past the end")
	}
}

func TestDecodeAllInvalidLayout(t *testing.T) {
	sprites := append([]testSprite(nil), testSprites...)
	sprites[2].layout = 7
	meta, broken := encodeSheet(nil, testPalette, sprites)
	meta, good := encodeSheet(meta, []int{0xffffff}, smallSheet)

	a := &archive.Mem{}
	a.Add(archive.IndexName, meta)
	a.Add("good.dat", good)
	a.Add("broken.dat", broken)

	set, err := DecodeAll(a)
	ttesting.AssertErrorIs(t, "invalid layout reported", err, rsam.ErrInvalidLayoutType)
	if set == nil {
		t.Fatalf("DecodeAll returned no set alongside %v", err)
	}
	ttesting.AssertEqualInt(t, "sheet count", set.Len(), 2)

	var sheetErrs SheetErrors
	if !errors.As(err, &sheetErrs) {
		t.Fatalf("got %T; want SheetErrors", err)
	}
	ttesting.AssertEqualInt(t, "failed sheets", len(sheetErrs), 1)
	ttesting.AssertEqualInt(t, "failed sheet hash", int(sheetErrs[0].Hash), int(archive.NameHash("broken.dat")))

	goodSprites, _ := set.Sheet(archive.NameHash("good.dat"))
	ttesting.AssertEqualInt(t, "good sheet intact", len(goodSprites), len(smallSheet))
	if err := set.Err(archive.NameHash("good.dat")); err != nil {
		t.Errorf("good sheet: unexpected error %v", err)
	}

	brokenSprites, _ := set.Sheet(archive.NameHash("broken.dat"))
	ttesting.AssertEqualInt(t, "sprites before bad record", len(brokenSprites), 2)
	for i, s := range brokenSprites {
		ttesting.AssertEqualInts(t, fmt.Sprintf("broken sprite %d pixels", i), s.Pixels, expectedPixels(testPalette, testSprites[i].indices))
	}
	ttesting.AssertErrorIs(t, "per-sheet error", set.Err(archive.NameHash("broken.dat")), rsam.ErrInvalidLayoutType)
}

func TestDecodeSheetKeepsSpritesBeforeError(t *testing.T) {
	sprites := append([]testSprite(nil), testSprites...)
	sprites[1].layout = 3
	meta, data := encodeSheet(nil, testPalette, sprites)

	got, err := DecodeSheet(meta, data)
	ttesting.AssertErrorIs(t, "invalid layout", err, rsam.ErrInvalidLayoutType)
	ttesting.AssertEqualInt(t, "sprites before bad record", len(got), 1)
}

func TestDecodeAllWithoutIndex(t *testing.T) {
	a := &archive.Mem{}
	a.Add("a.dat", []byte{0, 0})
	_, err := DecodeAll(a)
	ttesting.AssertErrorIs(t, "no index.dat", err, rsam.ErrMissingEntry)
}
