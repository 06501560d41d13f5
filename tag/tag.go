// Package tag defines the identifier types used throughout the tag cache:
// the 32-bit TagHash that names one package entry, and the 64-bit TagHash64
// alternate name that resolves to a TagHash through an external table.
package tag

import "fmt"

const (
	// pkgFileBase is the lowest value a package-entry TagHash can take.
	pkgFileBase = 0x80800000
	// pkgFileEnd is one past the highest package-entry TagHash.
	pkgFileEnd = 0x81800000

	entryBits = 13
	entryMask = (1 << entryBits) - 1
)

// None is the zero TagHash; it never names a package entry.
const None = TagHash(0)

// TagHash is the primary 32-bit identifier of one package entry. It encodes
// the package id and the in-package entry index, but callers should treat it
// as opaque outside of this package.
type TagHash uint32

// NewTagHash builds the TagHash for entry entryIndex of package pkgID.
func NewTagHash(pkgID uint16, entryIndex uint16) TagHash {
	return TagHash(pkgFileBase | uint32(pkgID)<<entryBits | uint32(entryIndex)&entryMask)
}

// PkgID returns the package id encoded in the hash. Only meaningful when
// IsPkgFile reports true.
func (t TagHash) PkgID() uint16 {
	return uint16((uint32(t) - pkgFileBase) >> entryBits)
}

// EntryIndex returns the in-package entry index encoded in the hash. Only
// meaningful when IsPkgFile reports true.
func (t TagHash) EntryIndex() uint16 {
	return uint16(uint32(t) & entryMask)
}

// IsPkgFile reports whether the value is structurally a plausible
// package-entry identifier. This is independent of whether the entry
// actually exists; existence is the hash universe's concern.
func (t TagHash) IsPkgFile() bool {
	return uint32(t) >= pkgFileBase && uint32(t) < pkgFileEnd
}

func (t TagHash) String() string {
	return fmt.Sprintf("%08X", uint32(t))
}

// TagHash64 is the 64-bit alternate identifier some entries carry. It has no
// internal structure; its only use is resolution to a TagHash via the
// package source's resolution table.
type TagHash64 uint64

func (t TagHash64) String() string {
	return fmt.Sprintf("%016X", uint64(t))
}
