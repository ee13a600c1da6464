package ktx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mipmappedKtx2(t *testing.T) *Texture {
	t.Helper()
	ci := DefaultKtx2CreateInfo()
	ci.Common.NumDimensions = 2
	ci.Common.BaseWidth = 4
	ci.Common.BaseHeight = 4
	ci.Common.NumLevels = 3
	tex, err := NewTexture(ci)
	require.NoError(t, err)
	t.Cleanup(func() { tex.Close() })
	return tex
}

func TestIterateLevels(t *testing.T) {
	tex := mipmappedKtx2(t)

	type visit struct {
		level, face, width, height int
		size                       int
	}
	var visits []visit
	err := tex.IterateLevels(func(level, face, width, height, depth int, pixels []byte) error {
		visits = append(visits, visit{level, face, width, height, len(pixels)})
		return nil
	})
	require.NoError(t, err)
	require.Len(t, visits, 3)

	wantWidth := 4
	for i, v := range visits {
		assert.Equal(t, i, v.level, "levels must come in ascending order")
		assert.Equal(t, 0, v.face)
		assert.Equal(t, wantWidth, v.width)
		assert.Equal(t, wantWidth, v.height)
		assert.Equal(t, tex.ImageSize(v.level), v.size)
		wantWidth /= 2
	}
}

func TestIterateLevelsWithoutData(t *testing.T) {
	ci := DefaultKtx2CreateInfo()
	ci.Common.CreateStorage = NoStorage
	tex, err := NewTexture(ci)
	require.NoError(t, err)
	defer tex.Close()

	err = tex.IterateLevels(func(level, face, width, height, depth int, pixels []byte) error {
		t.Fatal("visitor must not run without image data")
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestIterateLevelsVisitorErrorPropagates(t *testing.T) {
	tex := mipmappedKtx2(t)

	sentinel := errors.New("stop here")
	calls := 0
	err := tex.IterateLevels(func(level, face, width, height, depth int, pixels []byte) error {
		calls++
		if level == 1 {
			return sentinel
		}
		return nil
	})
	// The visitor's own error comes back verbatim, and iteration stops at
	// the failing level.
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, calls)
}

func TestIterateLevelsMutEditsInPlace(t *testing.T) {
	tex, err := NewTexture(DefaultKtx2CreateInfo())
	require.NoError(t, err)
	defer tex.Close()

	err = tex.IterateLevelsMut(func(level, face, width, height, depth int, pixels []byte) error {
		for i := range pixels {
			pixels[i] = 0x7F
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7F, 0x7F, 0x7F, 0x7F}, tex.Data())
}
