// Package persistence serializes the tag cache to a compact binary form and
// persists it as a single compressed artifact on disk.
//
// The on-disk layout is a fixed-size little-endian header followed by the
// compressed payload. The header carries a magic number, a format version,
// the compression codec and a CRC32 of the payload, so a torn write or a
// stale schema is detected on load and reported as an invalid artifact; the
// caller then rebuilds from scratch. Writes go through a temp file and an
// atomic rename.
package persistence
