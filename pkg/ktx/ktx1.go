package ktx

import "github.com/goopsie/go-ktx/pkg/ktx/sys"

// Ktx1 is the KTX1-specific view over a Texture, obtained from
// Texture.Ktx1 or Texture.Versioned.
type Ktx1 struct {
	t *Texture
}

func (*Ktx1) containerVersion() int { return 1 }

// Texture returns the underlying texture.
func (k *Ktx1) Texture() *Texture { return k.t }

// GLFormat returns the OpenGL format of the texture's data, e.g. GL_RGBA.
func (k *Ktx1) GLFormat() uint32 {
	return sys.Texture1GLFormat(k.t.handle)
}

// GLInternalFormat returns the OpenGL internal format, e.g. GL_RGBA8.
func (k *Ktx1) GLInternalFormat() uint32 {
	return sys.Texture1GLInternalFormat(k.t.handle)
}

// GLBaseInternalFormat returns the OpenGL base internal format.
func (k *Ktx1) GLBaseInternalFormat() uint32 {
	return sys.Texture1GLBaseInternalFormat(k.t.handle)
}

// GLType returns the OpenGL data type, e.g. GL_UNSIGNED_BYTE.
func (k *Ktx1) GLType() uint32 {
	return sys.Texture1GLType(k.t.handle)
}

// NeedsTranscoding reports whether the texture's format must be transcoded
// before GPU use.
func (k *Ktx1) NeedsTranscoding() bool {
	return sys.Texture1NeedsTranscoding(k.t.handle)
}
