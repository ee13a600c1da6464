package ktxzstd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goopsie/go-ktx/pkg/ktx"
)

func TestWriteReadRoundTrip(t *testing.T) {
	tex, err := ktx.NewTexture(ktx.DefaultKtx2CreateInfo())
	require.NoError(t, err)
	defer tex.Close()
	copy(tex.Data(), []byte{9, 8, 7, 6})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tex))
	require.NotZero(t, buf.Len())

	back, err := ReadTexture(&buf, 0)
	require.NoError(t, err)
	defer back.Close()

	require.NotNil(t, back.Ktx2())
	assert.Equal(t, tex.Data(), back.Data())
	assert.Equal(t, tex.BaseWidth(), back.BaseWidth())
}

func TestWriteCompressionLevel(t *testing.T) {
	tex, err := ktx.NewTexture(ktx.DefaultKtx1CreateInfo())
	require.NoError(t, err)
	defer tex.Close()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tex, WithCompressionLevel(19)))

	back, err := ReadTexture(&buf, 0)
	require.NoError(t, err)
	defer back.Close()
	assert.NotNil(t, back.Ktx1())
}

func TestReadTextureRejectsGarbage(t *testing.T) {
	_, err := ReadTexture(bytes.NewReader([]byte("not a zstd frame")), 0)
	assert.Error(t, err)
}
