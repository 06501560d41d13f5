package persistence

import "errors"

const (
	// MagicNumber identifies tag cache artifacts (ASCII: "TGC1")
	MagicNumber = 0x54474331
	// Version is the current artifact format version
	Version = 0x00010000
)

var (
	// ErrCacheAbsent means there is no artifact at the given path.
	ErrCacheAbsent = errors.New("cache artifact absent")
	// ErrInvalidMagic means the file is not a tag cache artifact.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrInvalidVersion means the artifact was written by an
	// incompatible format version.
	ErrInvalidVersion = errors.New("unsupported version")
	// ErrInvalidCompression means the header names an unknown codec.
	ErrInvalidCompression = errors.New("unknown compression codec")
	// ErrChecksumMismatch means the payload does not match the checksum
	// recorded in the header (torn write or corruption).
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
	// ErrTruncated means the payload ended before the codec expected.
	ErrTruncated = errors.New("truncated cache payload")
)

// Compression selects the codec applied to the serialized payload.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionZSTD is the default: good ratio at moderate cost.
	CompressionZSTD Compression = 1
	// CompressionLZ4 trades ratio for faster writes.
	CompressionLZ4 Compression = 2
)

// FileHeader is the 32-byte header at the start of every cache artifact.
type FileHeader struct {
	Magic       uint32 // 0x54474331 ("TGC1")
	Version     uint32 // Artifact format version
	Compression uint8  // Compression codec of the payload
	Padding     [3]byte
	EntryCount  uint64 // Number of cache entries in the payload
	Checksum    uint32 // CRC32 (IEEE) of the compressed payload
	Reserved    [8]byte
}
