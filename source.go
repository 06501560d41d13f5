package tagscan

import "github.com/hupe1980/tagscan/tag"

// Content-bearing entry types. Only entries of these types are scanned;
// everything else in a package is raw payload (textures, audio, ...) that
// cannot hold tag references.
const (
	EntryTypeTag     uint8 = 8
	EntryTypeTagWide uint8 = 16
)

// EntryInfo describes one entry of a package, as enumerated by the source.
type EntryInfo struct {
	Index   uint16
	Type    uint8
	Subtype uint8
}

// Package is one opened package archive. Implementations are not required
// to be safe for concurrent use; the walker opens each package on exactly
// one worker.
type Package interface {
	// ID returns the package id encoded into this package's entry hashes.
	ID() uint16

	// Entries returns the entries of the given type, in no particular
	// order.
	Entries(entryType uint8) []EntryInfo

	// ReadEntry returns the raw bytes of one entry.
	ReadEntry(index uint16) ([]byte, error)
}

// PackageSource is the collaborator that owns the package set. The scanner
// never parses package files itself; it only consumes entry boundaries and
// raw bytes through this interface.
//
// PackagePaths, EntryCounts and Hash64Table must be safe to call
// concurrently; Open is called once per package per build.
type PackageSource interface {
	// PackagePaths enumerates every package, in source-defined order.
	PackagePaths() []string

	// EntryCounts maps every package id to the number of entries the
	// package currently holds. Used to synthesize the hash universe.
	EntryCounts() map[uint16]int

	// Hash64Table is the global resolution table from 64-bit alternate
	// identifiers to primary identifiers.
	Hash64Table() map[uint64]tag.TagHash

	// Open opens one package by path.
	Open(path string) (Package, error)
}
