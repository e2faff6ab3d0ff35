package rsam

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Buffer is a read cursor over a byte slice. All multi-byte reads are
// big-endian. Reads never go past the end of the slice; instead they fail with
// ErrTruncatedData and leave the cursor where it was.
type Buffer struct {
	b   []byte
	pos int
}

// NewBuffer returns a cursor positioned at the start of b.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{b: b}
}

// Len returns the total length of the underlying slice.
func (buf *Buffer) Len() int {
	return len(buf.b)
}

// Pos returns the current cursor position.
func (buf *Buffer) Pos() int {
	return buf.pos
}

// Remaining returns the number of unread bytes.
func (buf *Buffer) Remaining() int {
	return len(buf.b) - buf.pos
}

// Seek moves the cursor to an absolute position. Positioning exactly at the
// end is allowed; any further read will then fail.
func (buf *Buffer) Seek(pos int) error {
	if pos < 0 || pos > len(buf.b) {
		return errors.Wrapf(ErrTruncatedData, "seek to %d in buffer of %d bytes", pos, len(buf.b))
	}
	buf.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (buf *Buffer) Skip(n int) error {
	if n < 0 || n > buf.Remaining() {
		return errors.Wrapf(ErrTruncatedData, "skip %d bytes at %d in buffer of %d bytes", n, buf.pos, len(buf.b))
	}
	buf.pos += n
	return nil
}

func (buf *Buffer) need(n int) error {
	if n > buf.Remaining() {
		glog.V(3).Infof("short read: want %d bytes at %d, have %d", n, buf.pos, buf.Remaining())
		return errors.Wrapf(ErrTruncatedData, "read %d bytes at %d in buffer of %d bytes", n, buf.pos, len(buf.b))
	}
	return nil
}

// U8 reads one unsigned byte.
func (buf *Buffer) U8() (int, error) {
	if err := buf.need(1); err != nil {
		return 0, err
	}
	v := int(buf.b[buf.pos])
	buf.pos++
	return v, nil
}

// U16 reads an unsigned big-endian 16 bit integer.
func (buf *Buffer) U16() (int, error) {
	if err := buf.need(2); err != nil {
		return 0, err
	}
	v := int(buf.b[buf.pos])<<8 | int(buf.b[buf.pos+1])
	buf.pos += 2
	return v, nil
}

// U24 reads an unsigned big-endian 24 bit integer.
func (buf *Buffer) U24() (int, error) {
	if err := buf.need(3); err != nil {
		return 0, err
	}
	v := int(buf.b[buf.pos])<<16 | int(buf.b[buf.pos+1])<<8 | int(buf.b[buf.pos+2])
	buf.pos += 3
	return v, nil
}

// Bytes returns the next n bytes. The returned slice aliases the buffer and
// must not be modified.
func (buf *Buffer) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("negative read length %d", n)
	}
	if err := buf.need(n); err != nil {
		return nil, err
	}
	v := buf.b[buf.pos : buf.pos+n]
	buf.pos += n
	return v, nil
}
