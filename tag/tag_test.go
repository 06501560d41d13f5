package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTagHashRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		pkgID uint16
		entry uint16
	}{
		{"Zero", 0, 0},
		{"Small", 3, 12},
		{"MaxEntry", 42, entryMask},
		{"LargePkg", 1023, 511},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTagHash(tt.pkgID, tt.entry)
			require.True(t, h.IsPkgFile())
			assert.Equal(t, tt.pkgID, h.PkgID())
			assert.Equal(t, tt.entry, h.EntryIndex())
		})
	}
}

func TestIsPkgFileBounds(t *testing.T) {
	assert.False(t, TagHash(0).IsPkgFile())
	assert.False(t, TagHash(pkgFileBase-1).IsPkgFile())
	assert.True(t, TagHash(pkgFileBase).IsPkgFile())
	assert.True(t, TagHash(pkgFileEnd-1).IsPkgFile())
	assert.False(t, TagHash(pkgFileEnd).IsPkgFile())
	assert.False(t, TagHash(0xFFFFFFFF).IsPkgFile())
	assert.False(t, None.IsPkgFile())
}

func TestOverlappingEntryIndicesDoNotCollide(t *testing.T) {
	// Same entry index under different package ids must synthesize
	// distinct identifiers.
	a := NewTagHash(1, 7)
	b := NewTagHash(2, 7)
	assert.NotEqual(t, a, b)
}

func TestString(t *testing.T) {
	assert.Equal(t, "AABBCCDD", TagHash(0xAABBCCDD).String())
	assert.Equal(t, "00000000DEADBEEF", TagHash64(0xDEADBEEF).String())
}
