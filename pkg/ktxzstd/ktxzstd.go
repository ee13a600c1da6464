// Package ktxzstd reads and writes whole-file Zstandard-compressed KTX
// containers (conventionally *.ktx2.zst). The zstd frame wraps the entire
// container; this is independent of KTX2's own Zstd supercompression, which
// lives inside the container and is handled natively (see Ktx2.DeflateZstd).
package ktxzstd

import (
	"fmt"
	"io"

	"github.com/DataDog/zstd"
	"github.com/goopsie/go-ktx/pkg/ktx"
)

// DefaultCompressionLevel is the default zstd level for Write.
const DefaultCompressionLevel = zstd.BestSpeed

// WriterOption configures Write.
type WriterOption func(*writerConfig)

type writerConfig struct {
	level int
}

// WithCompressionLevel sets the zstd compression level.
func WithCompressionLevel(level int) WriterOption {
	return func(c *writerConfig) {
		c.level = level
	}
}

// ReadTexture decompresses an entire zstd frame from r into memory and
// decodes a texture from it. LoadImageData is forced so the texture is
// fully materialized and does not retain the temporary stream.
func ReadTexture(r io.Reader, flags ktx.TextureCreateFlags) (*ktx.Texture, error) {
	zr := zstd.NewReader(r)
	defer zr.Close()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress ktx payload: %w", err)
	}

	stream, err := ktx.NewStream(ktx.NewMemoryStream(payload))
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	src := &ktx.StreamSource{Stream: stream, Flags: flags | ktx.LoadImageData}
	tex, err := ktx.NewTexture(src)
	if err != nil {
		return nil, fmt.Errorf("decode ktx container: %w", err)
	}
	return tex, nil
}

// Write serializes t in its native container version and zstd-compresses
// the result to w.
func Write(w io.Writer, t *ktx.Texture, opts ...WriterOption) error {
	cfg := writerConfig{level: DefaultCompressionLevel}
	for _, opt := range opts {
		opt(&cfg)
	}

	ms := ktx.NewMemoryStream(nil)
	stream, err := ktx.NewStream(ms)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := t.WriteTo(ktx.NewStreamSink(stream)); err != nil {
		return fmt.Errorf("serialize texture: %w", err)
	}

	zw := zstd.NewWriterLevel(w, cfg.level)
	if _, err := zw.Write(ms.Bytes()); err != nil {
		zw.Close()
		return fmt.Errorf("compress ktx payload: %w", err)
	}
	return zw.Close()
}
