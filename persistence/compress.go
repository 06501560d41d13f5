package persistence

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// zstdLevel balances build time against artifact size. The cache is written
// once per rebuild and read once per run, so maximum compression buys
// little.
const zstdLevel = 5

// compress applies the given codec to the serialized payload.
func compress(payload []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil

	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(zstdLevel)))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(payload, nil), nil

	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(payload))
		// Uncompressed size prefix; lz4 blocks do not carry one.
		out := make([]byte, 8, 8+bound)
		binary.LittleEndian.PutUint64(out, uint64(len(payload)))
		dst := make([]byte, bound)
		n, err := lz4.CompressBlock(payload, dst, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			// Incompressible; store as-is with a zero marker.
			binary.LittleEndian.PutUint64(out, 0)
			return append(out, payload...), nil
		}
		return append(out, dst[:n]...), nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, c)
	}
}

// decompress reverses compress for the codec named in the header.
func decompress(payload []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil

	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(payload, nil)

	case CompressionLZ4:
		if len(payload) < 8 {
			return nil, ErrTruncated
		}
		size := binary.LittleEndian.Uint64(payload)
		body := payload[8:]
		if size == 0 {
			return body, nil
		}
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, err
		}
		if uint64(n) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrTruncated)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, c)
	}
}
