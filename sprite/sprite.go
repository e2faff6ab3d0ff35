package sprite

// This file contains code directly related to decoding a single sprite
// out of a sheet.

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-rsam"
	"badc0de.net/pkg/go-rsam/archive"
)

// Palette maps raw pixel bytes to 24-bit RGB values.
//
// Slot 0 is always 0 and means transparent. No other slot is ever 0.
type Palette []int

// Resolve returns the RGB value for a raw pixel byte. Bytes outside the
// palette resolve to transparent.
func (p Palette) Resolve(idx byte) int {
	if int(idx) >= len(p) {
		return 0
	}
	return p[idx]
}

// Header is the sheet-wide part of a sheet's metadata.
type Header struct {
	// Bounds of the largest sprite in the sheet. Informational only.
	LargestWidth, LargestHeight int

	Palette Palette
}

// Sprite is a single decoded sprite.
type Sprite struct {
	Width, Height int

	// Offsets used when placing the sprite inside a containing interface.
	OffsetX, OffsetY int

	// Copied from the sheet header.
	LargestWidth, LargestHeight int

	// Pixels holds Width*Height RGB values in row-major order. 0 is
	// transparent.
	Pixels []int
}

func readHeader(meta *rsam.Buffer) (*Header, error) {
	var h Header
	var err error
	if h.LargestWidth, err = meta.U16(); err != nil {
		return nil, errors.Wrap(err, "could not read largest width")
	}
	if h.LargestHeight, err = meta.U16(); err != nil {
		return nil, errors.Wrap(err, "could not read largest height")
	}
	colors, err := meta.U8()
	if err != nil {
		return nil, errors.Wrap(err, "could not read color count")
	}

	h.Palette = make(Palette, colors)
	for i := 1; i < colors; i++ {
		rgb, err := meta.U24()
		if err != nil {
			return nil, errors.Wrapf(err, "could not read palette entry %d of %d", i, colors)
		}
		// 0 is reserved for transparency.
		if rgb == 0 {
			rgb = 1
		}
		h.Palette[i] = rgb
	}
	return &h, nil
}

// sheetReader walks the sprite records of one sheet. It keeps one cursor in
// the metadata entry and one in the sheet's data entry.
type sheetReader struct {
	meta, data *rsam.Buffer
	header     *Header
	next       int
}

func newSheetReader(meta, data []byte) (*sheetReader, error) {
	r := &sheetReader{
		meta: rsam.NewBuffer(meta),
		data: rsam.NewBuffer(data),
	}
	off, err := r.data.U16()
	if err != nil {
		return nil, errors.Wrap(err, "could not read sheet header offset")
	}
	if err := r.meta.Seek(off); err != nil {
		return nil, errors.Wrap(err, "could not seek to sheet header")
	}
	if r.header, err = readHeader(r.meta); err != nil {
		return nil, err
	}
	glog.V(2).Infof("sheet header at %d: largest %dx%d, %d colors", off, r.header.LargestWidth, r.header.LargestHeight, len(r.header.Palette))
	return r, nil
}

// skip moves both cursors past the next sprite without decoding it.
func (r *sheetReader) skip() error {
	if err := r.meta.Skip(2); err != nil {
		return errors.Wrapf(err, "could not skip offsets of sprite %d", r.next)
	}
	width, err := r.meta.U16()
	if err != nil {
		return errors.Wrapf(err, "could not read width of sprite %d", r.next)
	}
	height, err := r.meta.U16()
	if err != nil {
		return errors.Wrapf(err, "could not read height of sprite %d", r.next)
	}
	if err := r.data.Skip(width * height); err != nil {
		return errors.Wrapf(err, "could not skip %dx%d pixels of sprite %d", width, height, r.next)
	}
	if err := r.meta.Skip(1); err != nil {
		return errors.Wrapf(err, "could not skip layout of sprite %d", r.next)
	}
	r.next++
	return nil
}

// decode decodes the next sprite.
func (r *sheetReader) decode() (*Sprite, error) {
	s := &Sprite{
		LargestWidth:  r.header.LargestWidth,
		LargestHeight: r.header.LargestHeight,
	}
	var err error
	if s.OffsetX, err = r.meta.U8(); err != nil {
		return nil, errors.Wrapf(err, "could not read x offset of sprite %d", r.next)
	}
	if s.OffsetY, err = r.meta.U8(); err != nil {
		return nil, errors.Wrapf(err, "could not read y offset of sprite %d", r.next)
	}
	if s.Width, err = r.meta.U16(); err != nil {
		return nil, errors.Wrapf(err, "could not read width of sprite %d", r.next)
	}
	if s.Height, err = r.meta.U16(); err != nil {
		return nil, errors.Wrapf(err, "could not read height of sprite %d", r.next)
	}
	layout, err := r.meta.U8()
	if err != nil {
		return nil, errors.Wrapf(err, "could not read layout of sprite %d", r.next)
	}
	glog.V(3).Infof("sprite %d: %dx%d at +%d+%d, %s, data at %d", r.next, s.Width, s.Height, s.OffsetX, s.OffsetY, rsam.Layout(layout), r.data.Pos())

	raw, err := rsam.ReadPixels(r.data, s.Width, s.Height, rsam.Layout(layout))
	if err != nil {
		return nil, errors.Wrapf(err, "could not read pixels of sprite %d", r.next)
	}
	s.Pixels = make([]int, len(raw))
	for i, idx := range raw {
		s.Pixels[i] = r.header.Palette.Resolve(idx)
	}
	r.next++
	return s, nil
}

// DecodeOne decodes sprite number index (counting from 0) of the sheet whose
// data entry is data, using the archive-wide metadata entry meta.
//
// An error wrapping rsam.ErrTruncatedData means the sheet has no such sprite
// (or is damaged).
func DecodeOne(meta, data []byte, index int) (*Sprite, error) {
	if index < 0 {
		return nil, errors.Errorf("negative sprite index %d", index)
	}
	r, err := newSheetReader(meta, data)
	if err != nil {
		return nil, err
	}
	for r.next < index {
		if err := r.skip(); err != nil {
			return nil, err
		}
	}
	return r.decode()
}

// Decode reads the sheet with the given name hash, and the metadata entry,
// from a, and decodes sprite number index.
func Decode(a archive.Archive, hash int32, index int) (*Sprite, error) {
	meta, err := a.ReadEntry(archive.IndexHash)
	if err != nil {
		return nil, errors.Wrap(err, "could not read sheet metadata")
	}
	data, err := a.ReadEntry(hash)
	if err != nil {
		return nil, errors.Wrap(err, "could not read sheet data")
	}
	return DecodeOne(meta, data, index)
}

// DecodeNamed is Decode with the sheet's entry name instead of its hash.
func DecodeNamed(a archive.Archive, name string, index int) (*Sprite, error) {
	s, err := Decode(a, archive.NameHash(name), index)
	if err != nil {
		return nil, errors.Wrapf(err, "sheet %q", name)
	}
	return s, nil
}
