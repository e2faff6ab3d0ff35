package sprite

// Helpers to synthesize sheets for the tests in this package.

func u16(b []byte, v int) []byte {
	return append(b, byte(v>>8), byte(v))
}

func u24(b []byte, v int) []byte {
	return append(b, byte(v>>16), byte(v>>8), byte(v))
}

type testSprite struct {
	offsetX, offsetY int
	width, height    int
	layout           byte
	indices          []byte // palette indices, row-major
}

// stored returns the indices in the order they are written to the data
// entry.
func (s testSprite) stored() []byte {
	if s.layout != 1 {
		return s.indices
	}
	out := make([]byte, 0, len(s.indices))
	for x := 0; x < s.width; x++ {
		for y := 0; y < s.height; y++ {
			out = append(out, s.indices[x+y*s.width])
		}
	}
	return out
}

// encodeSheet appends a sheet header and its sprite records to meta, and
// returns the extended metadata along with the sheet's data entry.
//
// palette lists slots 1 and up.
func encodeSheet(meta []byte, palette []int, sprites []testSprite) ([]byte, []byte) {
	data := u16(nil, len(meta))

	lw, lh := 0, 0
	for _, s := range sprites {
		if s.width > lw {
			lw = s.width
		}
		if s.height > lh {
			lh = s.height
		}
	}
	meta = u16(meta, lw)
	meta = u16(meta, lh)
	meta = append(meta, byte(len(palette)+1))
	for _, c := range palette {
		meta = u24(meta, c)
	}
	for _, s := range sprites {
		meta = append(meta, byte(s.offsetX), byte(s.offsetY))
		meta = u16(meta, s.width)
		meta = u16(meta, s.height)
		meta = append(meta, s.layout)
		data = append(data, s.stored()...)
	}
	return meta, data
}

// expectedPixels resolves indices the way the decoder should.
func expectedPixels(palette []int, indices []byte) []int {
	out := make([]int, len(indices))
	for i, idx := range indices {
		if idx == 0 {
			continue
		}
		c := palette[idx-1]
		if c == 0 {
			c = 1
		}
		out[i] = c
	}
	return out
}

var (
	testPalette = []int{0xff0000, 0x00ff00, 0x0000ff, 0x000000, 0x123456}

	testSprites = []testSprite{
		{
			offsetX: 1, offsetY: 2, width: 3, height: 2, layout: 0,
			indices: []byte{
				1, 2, 3,
				0, 4, 5,
			},
		},
		{
			offsetX: 0, offsetY: 7, width: 2, height: 3, layout: 1,
			indices: []byte{
				5, 0,
				1, 2,
				3, 4,
			},
		},
		{
			offsetX: 9, offsetY: 0, width: 4, height: 1, layout: 0,
			indices: []byte{2, 2, 0, 1},
		},
		{
			offsetX: 3, offsetY: 3, width: 1, height: 4, layout: 1,
			indices: []byte{1, 0, 5, 4},
		},
	}
)
