package tagscan

import (
	"encoding/binary"

	"github.com/hupe1980/tagscan/tag"
)

// EmptyStringHash is the FNV-1a hash of the empty string, used as a
// sentinel for string references even when the known-string-hash set is
// empty.
const EmptyStringHash uint32 = 0x811c9dc5

// ScannedHash is one candidate match. See tag.ScannedHash.
type ScannedHash[T tag.TagHash | tag.TagHash64 | uint32] = tag.ScannedHash[T]

// ScanResult holds everything the scanner found in one entry.
// See tag.ScanResult.
type ScanResult = tag.ScanResult

// TagCache maps every scanned entry to its scan result. It is the primary
// artifact of this package.
type TagCache = tag.Cache

// Scan scans one entry's raw bytes against the hash universe. It is pure:
// identical input always yields an identical result, nothing is mutated and
// no I/O happens, so it can run on any number of workers sharing one
// Context.
//
// The buffer is walked twice: in non-overlapping 4-byte little-endian
// windows for 32-bit candidates, and in non-overlapping 8-byte windows for
// 64-bit candidates. Trailing bytes that do not fill a window are ignored.
func Scan(ctx *Context, data []byte) *ScanResult {
	r := &ScanResult{}

	for i := 0; i+4 <= len(data); i += 4 {
		value := binary.LittleEndian.Uint32(data[i:])
		offset := uint64(i)

		h := tag.TagHash(value)
		if h.IsPkgFile() && ctx.IsValidHash(h) {
			r.FileHashes = append(r.FileHashes, tag.ScannedHash[tag.TagHash]{Offset: offset, Hash: h})
		}

		// A window can be both a file hash and a string hash; the
		// passes are independent.
		if value == EmptyStringHash || ctx.IsKnownStringHash(value) {
			r.StringHashes = append(r.StringHashes, tag.ScannedHash[uint32]{Offset: offset, Hash: value})
		}
	}

	for i := 0; i+8 <= len(data); i += 8 {
		value := binary.LittleEndian.Uint64(data[i:])

		h := tag.TagHash64(value)
		if ctx.IsValidHash64(h) {
			r.FileHashes64 = append(r.FileHashes64, tag.ScannedHash[tag.TagHash64]{Offset: uint64(i), Hash: h})
		}
	}

	return r
}
