package ktx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDefaultKtx1(t *testing.T) {
	tex, err := NewTexture(DefaultKtx1CreateInfo())
	require.NoError(t, err)
	defer tex.Close()

	// A 1x1 RGBA8 texture is a single 4-byte texel, so the element size,
	// the base level row pitch and the whole data size all coincide.
	assert.Equal(t, 4, tex.ElementSize())
	assert.Equal(t, 4, tex.RowPitch(0))
	assert.Equal(t, 4, tex.DataSize())
	assert.Len(t, tex.Data(), 4)

	assert.Equal(t, 1, tex.BaseWidth())
	assert.Equal(t, 1, tex.BaseHeight())
	assert.Equal(t, 1, tex.BaseDepth())
	assert.Equal(t, 1, tex.NumLevels())
	assert.Equal(t, 1, tex.NumLayers())
	assert.Equal(t, 1, tex.NumFaces())
	assert.False(t, tex.IsArray())
	assert.False(t, tex.IsCubemap())
	assert.False(t, tex.IsCompressed())

	v1 := tex.Ktx1()
	require.NotNil(t, v1)
	assert.EqualValues(t, GLRGBA8, v1.GLInternalFormat())
	assert.False(t, v1.NeedsTranscoding())
}

func TestCreateDefaultKtx2(t *testing.T) {
	tex, err := NewTexture(DefaultKtx2CreateInfo())
	require.NoError(t, err)
	defer tex.Close()

	assert.Equal(t, 4, tex.ElementSize())
	assert.Equal(t, 4, tex.RowPitch(0))
	assert.Equal(t, 4, tex.DataSize())

	v2 := tex.Ktx2()
	require.NotNil(t, v2)
	assert.EqualValues(t, VkFormatR8G8B8A8Unorm, v2.VkFormat())
	assert.Equal(t, SSNone, v2.SupercompressionScheme())
	assert.False(t, v2.NeedsTranscoding())
	assert.False(t, v2.IsVideo())
}

func TestVersionedProjectionIsExclusive(t *testing.T) {
	t.Run("Ktx1", func(t *testing.T) {
		tex, err := NewTexture(DefaultKtx1CreateInfo())
		require.NoError(t, err)
		defer tex.Close()

		require.IsType(t, &Ktx1{}, tex.Versioned())
		assert.NotNil(t, tex.Ktx1())
		assert.Nil(t, tex.Ktx2())
	})

	t.Run("Ktx2", func(t *testing.T) {
		tex, err := NewTexture(DefaultKtx2CreateInfo())
		require.NoError(t, err)
		defer tex.Close()

		require.IsType(t, &Ktx2{}, tex.Versioned())
		assert.NotNil(t, tex.Ktx2())
		assert.Nil(t, tex.Ktx1())
	})
}

func TestTextureCloseIdempotent(t *testing.T) {
	tex, err := NewTexture(DefaultKtx2CreateInfo())
	require.NoError(t, err)

	require.NoError(t, tex.Close())
	require.NoError(t, tex.Close())
	assert.Nil(t, tex.Handle())
}

func TestNoStorageTextureHasNoData(t *testing.T) {
	ci := DefaultKtx2CreateInfo()
	ci.Common.CreateStorage = NoStorage
	tex, err := NewTexture(ci)
	require.NoError(t, err)
	defer tex.Close()

	assert.Nil(t, tex.Data())
}

func TestImageOffsetBounds(t *testing.T) {
	tex, err := NewTexture(DefaultKtx1CreateInfo())
	require.NoError(t, err)
	defer tex.Close()

	off, err := tex.ImageOffset(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, off)

	_, err = tex.ImageOffset(5, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}
