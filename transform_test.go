package tagscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tagscan/tag"
)

func resultWithMatches(hashes ...tag.TagHash) *ScanResult {
	r := &ScanResult{}
	for i, h := range hashes {
		r.FileHashes = append(r.FileHashes, tag.ScannedHash[tag.TagHash]{Offset: uint64(i * 4), Hash: h})
	}
	return r
}

func TestTransformReverseEdges(t *testing.T) {
	a := tag.NewTagHash(0, 1)
	b := tag.NewTagHash(0, 3)
	target := tag.NewTagHash(0, 2)

	cache := TagCache{
		a:      resultWithMatches(target),
		b:      resultWithMatches(target),
		target: {},
	}

	cache = Transform(cache, nil)

	// Both referencers, in some order.
	assert.ElementsMatch(t, []tag.TagHash{a, b}, cache[target].References)
	assert.Empty(t, cache[a].References)
	assert.Empty(t, cache[b].References)
}

func TestTransformPreservesMultiplicity(t *testing.T) {
	a := tag.NewTagHash(1, 0)
	target := tag.NewTagHash(1, 1)

	// Two reference sites inside the same entry: the referencer is
	// recorded twice. Consumers use the count.
	cache := TagCache{
		a:      resultWithMatches(target, target),
		target: {},
	}

	cache = Transform(cache, nil)

	assert.Equal(t, []tag.TagHash{a, a}, cache[target].References)
}

func TestTransformResolves64BitReferences(t *testing.T) {
	a := tag.NewTagHash(2, 0)
	target := tag.NewTagHash(2, 7)
	h64 := tag.TagHash64(0xCAFED00DCAFED00D)

	cache := TagCache{
		a: {
			FileHashes64: []tag.ScannedHash[tag.TagHash64]{{Offset: 8, Hash: h64}},
		},
		target: {},
	}

	cache = Transform(cache, map[uint64]tag.TagHash{uint64(h64): target})

	assert.Equal(t, []tag.TagHash{a}, cache[target].References)
}

func TestTransformDropsUnresolvable64BitReferences(t *testing.T) {
	a := tag.NewTagHash(2, 0)
	target := tag.NewTagHash(2, 7)

	cache := TagCache{
		a: {
			FileHashes64: []tag.ScannedHash[tag.TagHash64]{{Offset: 0, Hash: 0x1122334455667788}},
		},
		target: {},
	}

	cache = Transform(cache, map[uint64]tag.TagHash{})

	for _, r := range cache {
		assert.Empty(t, r.References)
	}
}

func TestTransformSelfReference(t *testing.T) {
	self := tag.NewTagHash(3, 3)

	cache := TagCache{
		self: resultWithMatches(self),
	}

	cache = Transform(cache, nil)

	require.Len(t, cache[self].References, 1)
	assert.Equal(t, self, cache[self].References[0])
}
