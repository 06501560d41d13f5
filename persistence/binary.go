package persistence

import (
	"encoding/binary"

	"github.com/hupe1980/tagscan/tag"
)

// Marshal encodes a tag cache into the compact binary payload format:
// a uvarint entry count followed by one record per entry. Each record is
// the entry's hash, then its four lists, each as a uvarint length and
// fixed-width little-endian items. List order is preserved.
func Marshal(c tag.Cache) []byte {
	// Rough guess to avoid some growth: hash + list headers + a handful
	// of matches per entry.
	buf := make([]byte, 0, 16+len(c)*64)

	buf = binary.AppendUvarint(buf, uint64(len(c)))

	for h, r := range c {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(h))

		buf = binary.AppendUvarint(buf, uint64(len(r.FileHashes)))
		for _, m := range r.FileHashes {
			buf = binary.AppendUvarint(buf, m.Offset)
			buf = binary.LittleEndian.AppendUint32(buf, uint32(m.Hash))
		}

		buf = binary.AppendUvarint(buf, uint64(len(r.FileHashes64)))
		for _, m := range r.FileHashes64 {
			buf = binary.AppendUvarint(buf, m.Offset)
			buf = binary.LittleEndian.AppendUint64(buf, uint64(m.Hash))
		}

		buf = binary.AppendUvarint(buf, uint64(len(r.StringHashes)))
		for _, m := range r.StringHashes {
			buf = binary.AppendUvarint(buf, m.Offset)
			buf = binary.LittleEndian.AppendUint32(buf, m.Hash)
		}

		buf = binary.AppendUvarint(buf, uint64(len(r.References)))
		for _, ref := range r.References {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(ref))
		}
	}

	return buf
}

// Unmarshal decodes a payload produced by Marshal.
func Unmarshal(data []byte) (tag.Cache, error) {
	d := decoder{data: data}

	count, err := d.uvarint()
	if err != nil {
		return nil, err
	}

	c := make(tag.Cache, count)

	for range count {
		h, err := d.uint32()
		if err != nil {
			return nil, err
		}

		r := &tag.ScanResult{}

		n, err := d.uvarint()
		if err != nil {
			return nil, err
		}
		for range n {
			offset, err := d.uvarint()
			if err != nil {
				return nil, err
			}
			v, err := d.uint32()
			if err != nil {
				return nil, err
			}
			r.FileHashes = append(r.FileHashes, tag.ScannedHash[tag.TagHash]{Offset: offset, Hash: tag.TagHash(v)})
		}

		n, err = d.uvarint()
		if err != nil {
			return nil, err
		}
		for range n {
			offset, err := d.uvarint()
			if err != nil {
				return nil, err
			}
			v, err := d.uint64()
			if err != nil {
				return nil, err
			}
			r.FileHashes64 = append(r.FileHashes64, tag.ScannedHash[tag.TagHash64]{Offset: offset, Hash: tag.TagHash64(v)})
		}

		n, err = d.uvarint()
		if err != nil {
			return nil, err
		}
		for range n {
			offset, err := d.uvarint()
			if err != nil {
				return nil, err
			}
			v, err := d.uint32()
			if err != nil {
				return nil, err
			}
			r.StringHashes = append(r.StringHashes, tag.ScannedHash[uint32]{Offset: offset, Hash: v})
		}

		n, err = d.uvarint()
		if err != nil {
			return nil, err
		}
		for range n {
			v, err := d.uint32()
			if err != nil {
				return nil, err
			}
			r.References = append(r.References, tag.TagHash(v))
		}

		c[tag.TagHash(h)] = r
	}

	return c, nil
}

// decoder is a cursor over the payload with bounds-checked reads.
type decoder struct {
	data []byte
}

func (d *decoder) uvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data)
	if n <= 0 {
		return 0, ErrTruncated
	}
	d.data = d.data[n:]
	return v, nil
}

func (d *decoder) uint32() (uint32, error) {
	if len(d.data) < 4 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint32(d.data)
	d.data = d.data[4:]
	return v, nil
}

func (d *decoder) uint64() (uint64, error) {
	if len(d.data) < 8 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint64(d.data)
	d.data = d.data[8:]
	return v, nil
}
