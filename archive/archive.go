// Package archive defines the container that supplies the raw, already
// decompressed entries that sprite sheets and fonts are decoded from.
//
// Entries are keyed by the legacy name hash. The container format itself
// (and any compression it uses) is not implemented here; Mem and FromDir are
// simple stand-ins that are good enough for tools and tests.
package archive

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-rsam"
)

// IndexName is the entry holding the shared metadata of every sprite sheet
// and font in an archive.
const IndexName = "index.dat"

// IndexHash is NameHash(IndexName).
var IndexHash = NameHash(IndexName)

// Entry is a single raw archive entry.
type Entry struct {
	Hash int32
	Name string // may be empty if only the hash is known
	Data []byte
}

// Archive supplies raw named byte buffers.
type Archive interface {
	// ReadEntry returns the entry with the given name hash, or an error
	// wrapping rsam.ErrMissingEntry.
	ReadEntry(hash int32) ([]byte, error)
	// ReadNamedEntry is ReadEntry(NameHash(name)).
	ReadNamedEntry(name string) ([]byte, error)
	// Entries lists every entry in archive order.
	Entries() []Entry
}

// NameHash computes the case-insensitive name hash entries are keyed by.
//
// Arithmetic wraps around at 32 bits.
func NameHash(name string) int32 {
	var h int32
	for _, c := range strings.ToUpper(name) {
		h = h*61 + int32(c) - 32
	}
	return h
}

// Mem is an in-memory Archive. The zero value is empty and ready to use.
type Mem struct {
	entries []Entry
	byHash  map[int32]int
}

// Add appends or replaces a named entry.
func (m *Mem) Add(name string, data []byte) {
	m.put(Entry{Hash: NameHash(name), Name: name, Data: data})
}

// AddHash appends or replaces an entry known only by its hash.
func (m *Mem) AddHash(hash int32, data []byte) {
	m.put(Entry{Hash: hash, Data: data})
}

func (m *Mem) put(e Entry) {
	if m.byHash == nil {
		m.byHash = make(map[int32]int)
	}
	if i, ok := m.byHash[e.Hash]; ok {
		m.entries[i] = e
		return
	}
	m.byHash[e.Hash] = len(m.entries)
	m.entries = append(m.entries, e)
}

func (m *Mem) ReadEntry(hash int32) ([]byte, error) {
	i, ok := m.byHash[hash]
	if !ok {
		return nil, errors.Wrapf(rsam.ErrMissingEntry, "hash %d", hash)
	}
	return m.entries[i].Data, nil
}

func (m *Mem) ReadNamedEntry(name string) ([]byte, error) {
	b, err := m.ReadEntry(NameHash(name))
	if err != nil {
		return nil, errors.Wrapf(err, "entry %q", name)
	}
	return b, nil
}

func (m *Mem) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// FromDir builds a Mem archive out of the regular files of a directory, one
// entry per file, named after the file. Files are added in lexical order.
//
// This is useful for entries that were already extracted from a real
// archive by some other tool.
func FromDir(dir string) (*Mem, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading archive dir %q", dir)
	}
	m := &Mem{}
	for _, de := range des {
		if !de.Type().IsRegular() {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, de.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "reading archive entry %q", de.Name())
		}
		glog.V(2).Infof("archive %s: entry %q (%d bytes, hash %d)", dir, de.Name(), len(b), NameHash(de.Name()))
		m.Add(de.Name(), b)
	}
	return m, nil
}
