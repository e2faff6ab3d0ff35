package sprite

import (
	"fmt"
	"runtime"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-rsam"
	"badc0de.net/pkg/go-rsam/archive"
)

// SpriteSet holds every decoded sheet of an archive, keyed by the sheet's
// name hash. Sheets keep archive order.
type SpriteSet struct {
	keys   []int32
	sheets map[int32][]*Sprite
	errs   map[int32]error
}

// Keys returns the sheet hashes in archive order.
func (s *SpriteSet) Keys() []int32 {
	out := make([]int32, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of sheets.
func (s *SpriteSet) Len() int {
	return len(s.keys)
}

// Sheet returns the sprites of a sheet, in sheet order. For a sheet that
// failed to decode, these are the sprites before the failing record.
func (s *SpriteSet) Sheet(hash int32) ([]*Sprite, bool) {
	sprites, ok := s.sheets[hash]
	return sprites, ok
}

// Err returns the error that stopped decoding of a sheet early, or nil.
func (s *SpriteSet) Err(hash int32) error {
	return s.errs[hash]
}

// Sprite returns a single sprite.
func (s *SpriteSet) Sprite(hash int32, index int) (*Sprite, error) {
	sprites, ok := s.sheets[hash]
	if !ok {
		return nil, errors.Wrapf(rsam.ErrMissingEntry, "no sheet with hash %d", hash)
	}
	if index < 0 || index >= len(sprites) {
		return nil, errors.Errorf("sheet %d has %d sprites; no sprite %d", hash, len(sprites), index)
	}
	return sprites[index], nil
}

// SheetError is a sheet that stopped decoding for a reason other than
// running out of data.
type SheetError struct {
	Hash int32
	Name string
	Err  error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %d (%q): %v", e.Hash, e.Name, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// SheetErrors lists every sheet that failed in one DecodeAll call.
type SheetErrors []*SheetError

func (e SheetErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("%d sheets failed to decode; first: %v", len(e), e[0])
}

func (e SheetErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// probe is the outcome of attempting to decode the next sprite of a sheet.
type probe int

const (
	probeSprite probe = iota // a sprite was decoded
	probeEnd                 // the sheet ran out of data
)

// probe decodes the next sprite, reporting the end of the sheet as probeEnd
// rather than as an error.
func (r *sheetReader) probe() (*Sprite, probe, error) {
	s, err := r.decode()
	if errors.Is(err, rsam.ErrTruncatedData) {
		glog.V(3).Infof("end of sheet after %d sprites: %v", r.next, err)
		return nil, probeEnd, nil
	}
	if err != nil {
		return nil, probeEnd, err
	}
	return s, probeSprite, nil
}

// DecodeSheet decodes sprites 0, 1, 2, ... of one sheet until the data runs
// out. A sheet whose header cannot be read decodes as empty.
//
// On any other error, the sprites decoded before the failing record are
// returned along with the error.
func DecodeSheet(meta, data []byte) ([]*Sprite, error) {
	r, err := newSheetReader(meta, data)
	if errors.Is(err, rsam.ErrTruncatedData) {
		glog.V(2).Infof("sheet has no readable header: %v", err)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sprites []*Sprite
	for {
		s, p, err := r.probe()
		if err != nil {
			return sprites, err
		}
		if p == probeEnd {
			return sprites, nil
		}
		sprites = append(sprites, s)
	}
}

// DecodeAll decodes every sheet in a. The metadata entry itself is skipped.
//
// Sheets are decoded concurrently. A sheet failing for a reason other than
// running out of data (for instance an invalid layout byte) keeps the
// sprites before the failing record; the failures are reported together as
// SheetErrors next to the complete set. Only a missing metadata entry yields
// no set at all.
func DecodeAll(a archive.Archive) (*SpriteSet, error) {
	meta, err := a.ReadEntry(archive.IndexHash)
	if err != nil {
		return nil, errors.Wrap(err, "could not read sheet metadata")
	}

	var entries []archive.Entry
	for _, e := range a.Entries() {
		if e.Hash == archive.IndexHash {
			continue
		}
		entries = append(entries, e)
	}

	decoded := make([][]*Sprite, len(entries))
	failed := make([]error, len(entries))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			sprites, err := DecodeSheet(meta, e.Data)
			if err != nil {
				glog.Warningf("sheet %d (%q): kept %d sprites: %v", e.Hash, e.Name, len(sprites), err)
				failed[i] = err
			} else {
				glog.V(1).Infof("sheet %d (%q): %d sprites", e.Hash, e.Name, len(sprites))
			}
			decoded[i] = sprites
			return nil
		})
	}
	g.Wait()

	set := &SpriteSet{
		sheets: make(map[int32][]*Sprite, len(entries)),
		errs:   make(map[int32]error),
	}
	var errs SheetErrors
	for i, e := range entries {
		if _, ok := set.sheets[e.Hash]; !ok {
			set.keys = append(set.keys, e.Hash)
		}
		sprites := decoded[i]
		if sprites == nil {
			sprites = []*Sprite{}
		}
		set.sheets[e.Hash] = sprites
		delete(set.errs, e.Hash)
		if failed[i] != nil {
			se := &SheetError{Hash: e.Hash, Name: e.Name, Err: failed[i]}
			set.errs[e.Hash] = se
			errs = append(errs, se)
		}
	}
	if len(errs) > 0 {
		return set, errs
	}
	return set, nil
}
