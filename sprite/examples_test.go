package sprite

import (
	"fmt"

	"badc0de.net/pkg/go-rsam/archive"
)

// ExampleDecodeAll decodes every sheet in an archive and prints out the
// sprite sizes.
func ExampleDecodeAll() {
	meta, data := encodeSheet(nil, testPalette, testSprites)
	a := &archive.Mem{}
	a.Add(archive.IndexName, meta)
	a.Add("buttons.dat", data)

	set, err := DecodeAll(a)
	if err != nil {
		fmt.Printf("failed to decode sheets: %s", err)
		return
	}
	sprites, _ := set.Sheet(archive.NameHash("buttons.dat"))
	for i, s := range sprites {
		fmt.Printf("sprite %d: %dx%d\n", i, s.Width, s.Height)
	}
	// Output:
	// sprite 0: 3x2
	// sprite 1: 2x3
	// sprite 2: 4x1
	// sprite 3: 1x4
}
