package persistence

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/tagscan/tag"
)

// Save serializes, compresses and atomically writes the cache to path.
// The write goes through a temp file in the same directory followed by a
// rename, so a crash mid-write leaves either the old artifact or none.
func Save(path string, c tag.Cache, comp Compression) error {
	payload, err := compress(Marshal(c), comp)
	if err != nil {
		return fmt.Errorf("compress cache: %w", err)
	}

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(comp),
		EntryCount:  uint64(len(c)),
		Checksum:    crc32.ChecksumIEEE(payload),
	}

	return saveToFile(path, func(w io.Writer) error {
		if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
			return err
		}
		_, err := w.Write(payload)
		return err
	})
}

// Load reads an artifact written by Save. A missing file yields
// ErrCacheAbsent; any malformed artifact yields one of the format errors.
// Callers treat every failure the same way: no cache, rebuild.
func Load(path string) (tag.Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCacheAbsent, path)
		}
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, 256*1024)

	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	payload := buf.Bytes()

	if crc32.ChecksumIEEE(payload) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	raw, err := decompress(payload, Compression(header.Compression))
	if err != nil {
		return nil, err
	}

	c, err := Unmarshal(raw)
	if err != nil {
		return nil, err
	}
	if uint64(len(c)) != header.EntryCount {
		return nil, fmt.Errorf("%w: entry count mismatch", ErrTruncated)
	}

	return c, nil
}

// saveToFile writes through a temp file in the target directory so the
// final rename is atomic.
func saveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	// Match typical file permissions (best-effort).
	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	// Success: prevent deferred cleanup from removing the final file.
	tmpName = ""
	return nil
}
