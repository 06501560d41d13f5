package tagscan

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/tagscan/tag"
)

// memPackage is an in-memory Package for tests.
type memPackage struct {
	id        uint16
	entries   []EntryInfo
	data      map[uint16][]byte
	failReads map[uint16]error
}

func (p *memPackage) ID() uint16 { return p.id }

func (p *memPackage) Entries(entryType uint8) []EntryInfo {
	var out []EntryInfo
	for _, e := range p.entries {
		if e.Type == entryType {
			out = append(out, e)
		}
	}
	return out
}

func (p *memPackage) ReadEntry(index uint16) ([]byte, error) {
	if err, ok := p.failReads[index]; ok {
		return nil, err
	}
	data, ok := p.data[index]
	if !ok {
		return nil, errors.New("no such entry")
	}
	return data, nil
}

// memSource is an in-memory PackageSource for tests.
type memSource struct {
	pkgs     map[string]*memPackage
	hash64   map[uint64]tag.TagHash
	failOpen map[string]error
}

func newMemSource() *memSource {
	return &memSource{
		pkgs:   map[string]*memPackage{},
		hash64: map[uint64]tag.TagHash{},
	}
}

// addPackage registers a package whose entries are all content-bearing
// (type 8) and returns it for further setup.
func (s *memSource) addPackage(id uint16, blobs ...[]byte) *memPackage {
	p := &memPackage{
		id:        id,
		data:      map[uint16][]byte{},
		failReads: map[uint16]error{},
	}
	for i, blob := range blobs {
		idx := uint16(i)
		p.entries = append(p.entries, EntryInfo{Index: idx, Type: EntryTypeTag})
		p.data[idx] = blob
	}
	s.pkgs[fmt.Sprintf("pkg_%04x.bin", id)] = p
	return p
}

func (s *memSource) PackagePaths() []string {
	paths := make([]string, 0, len(s.pkgs))
	for path := range s.pkgs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (s *memSource) EntryCounts() map[uint16]int {
	counts := make(map[uint16]int, len(s.pkgs))
	for _, p := range s.pkgs {
		counts[p.id] = len(p.entries)
	}
	return counts
}

func (s *memSource) Hash64Table() map[uint64]tag.TagHash { return s.hash64 }

func (s *memSource) Open(path string) (Package, error) {
	if err, ok := s.failOpen[path]; ok {
		return nil, err
	}
	p, ok := s.pkgs[path]
	if !ok {
		return nil, errors.New("no such package")
	}
	return p, nil
}

// newTestContext builds a Context directly from literal hash sets.
func newTestContext(valid []tag.TagHash, valid64 []tag.TagHash64, stringHashes []uint32) *Context {
	v := roaring.New()
	for _, h := range valid {
		v.Add(uint32(h))
	}
	v64 := roaring64.New()
	for _, h := range valid64 {
		v64.Add(uint64(h))
	}
	s := roaring.New()
	s.AddMany(stringHashes)
	return &Context{validHashes: v, validHashes64: v64, knownStringHashes: s}
}

// le32 appends a little-endian uint32 to a buffer under construction.
func le32(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}

// le64 appends a little-endian uint64.
func le64(buf []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(buf, v)
}
