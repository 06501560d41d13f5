package tag

// ScannedHash is one candidate match: the value found and the byte offset
// it was found at, relative to the start of the entry.
type ScannedHash[T TagHash | TagHash64 | uint32] struct {
	Offset uint64
	Hash   T
}

// ScanResult holds everything the scanner found in one entry. The three
// match lists are in scan order (ascending offset per pass). References is
// empty until the transform phase fills it in; it may contain the same
// referencer more than once, once per reference site.
type ScanResult struct {
	FileHashes   []ScannedHash[TagHash]
	FileHashes64 []ScannedHash[TagHash64]
	StringHashes []ScannedHash[uint32]

	// References from other entries, populated by the transform.
	References []TagHash
}

// Cache maps every scanned entry to its scan result.
type Cache map[TagHash]*ScanResult
