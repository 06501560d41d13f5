package tagscan

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/tagscan/tag"
)

// Context is the immutable hash universe shared by all scan workers: the
// sets of values that are candidates for being real references. It is built
// once per cache build, before any entry is scanned, and is read-only
// afterwards.
type Context struct {
	validHashes       *roaring.Bitmap
	validHashes64     *roaring64.Bitmap
	knownStringHashes *roaring.Bitmap
}

// NewContext builds the scanner context from the package source: one
// synthesized TagHash per entry of every package, plus every key of the
// 64-bit resolution table.
//
// knownStringHashes may be nil; the set is an extension point and empty by
// default.
func NewContext(src PackageSource, knownStringHashes []uint32) (*Context, error) {
	counts := src.EntryCounts()
	if len(counts) == 0 {
		return nil, &ErrContextCreation{cause: ErrNoPackages}
	}

	valid := roaring.New()
	for pkgID, n := range counts {
		for i := 0; i < n; i++ {
			valid.Add(uint32(tag.NewTagHash(pkgID, uint16(i))))
		}
	}

	valid64 := roaring64.New()
	for h := range src.Hash64Table() {
		valid64.Add(h)
	}

	strings := roaring.New()
	strings.AddMany(knownStringHashes)

	return &Context{
		validHashes:       valid,
		validHashes64:     valid64,
		knownStringHashes: strings,
	}, nil
}

// IsValidHash reports whether h names an entry that exists in the package
// set.
func (c *Context) IsValidHash(h tag.TagHash) bool {
	return c.validHashes.Contains(uint32(h))
}

// IsValidHash64 reports whether h is a known 64-bit alternate identifier.
func (c *Context) IsValidHash64(h tag.TagHash64) bool {
	return c.validHashes64.Contains(uint64(h))
}

// IsKnownStringHash reports whether v is in the known-string-hash set.
// The empty-string sentinel is handled separately by the scanner.
func (c *Context) IsKnownStringHash(v uint32) bool {
	return c.knownStringHashes.Contains(v)
}
