package ktx

import (
	"io"
	"unsafe"

	"github.com/goopsie/go-ktx/pkg/ktx/sys"
)

// TextureSource produces a Texture: explicit creation info, or a stream to
// decode one from.
type TextureSource interface {
	CreateTexture() (*Texture, error)
}

// TextureSink consumes a Texture by serializing it.
type TextureSink interface {
	WriteTexture(t *Texture) error
}

// Texture owns an opaque native texture handle (KTX1 or KTX2) together with
// everything the handle structurally depends on: the source it was decoded
// from (which keeps any backing Stream alive) and, for KTX2 creation with an
// explicit DFD, the descriptor buffer native code holds a pointer into.
//
// The handle is destroyed exactly once, through its own vtable destructor,
// by Close. There is no finalizer; cleanup is deterministic and the caller's
// job. Using a Texture after Close is an unchecked contract violation.
type Texture struct {
	handle unsafe.Pointer
	source TextureSource
	dfd    []uint32
}

// NewTexture creates a texture by consuming the given source.
func NewTexture(src TextureSource) (*Texture, error) {
	return src.CreateTexture()
}

// WriteTo serializes the texture, in its native container version, to sink.
func (t *Texture) WriteTo(sink TextureSink) error {
	return sink.WriteTexture(t)
}

// Handle returns the raw native pointer, for interop with other libktx
// consumers. Dereferencing it is outside this package's safety contract.
func (t *Texture) Handle() unsafe.Pointer {
	return t.handle
}

// Close destroys the native handle via its vtable destructor, then closes
// the source if it owns other resources. Idempotent.
func (t *Texture) Close() error {
	if t.handle == nil {
		return nil
	}
	sys.TextureDestroy(t.handle)
	t.handle = nil
	if c, ok := t.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// DataSize returns the total size of image data in bytes.
func (t *Texture) DataSize() int {
	return int(sys.TextureDataSize(t.handle))
}

// Data returns a view over the texture's image data, or nil if no data has
// been loaded. The slice aliases native memory: it is writable (libktx
// permits in-place edits) but only valid until the next mutating operation
// or Close.
func (t *Texture) Data() []byte {
	p := sys.TextureData(t.handle)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), t.DataSize())
}

// RowPitch returns the pitch in bytes of an image row at the given mip
// level, rounded up to 1 if needed. Native code does not bounds-check
// level; out-of-range values are the caller's responsibility.
func (t *Texture) RowPitch(level int) int {
	return int(sys.TextureRowPitch(t.handle, uint32(level)))
}

// ElementSize returns the size in bytes of one element of the image.
func (t *Texture) ElementSize() int {
	return int(sys.TextureElementSize(t.handle))
}

func (t *Texture) BaseWidth() int     { return int(sys.TextureBaseWidth(t.handle)) }
func (t *Texture) BaseHeight() int    { return int(sys.TextureBaseHeight(t.handle)) }
func (t *Texture) BaseDepth() int     { return int(sys.TextureBaseDepth(t.handle)) }
func (t *Texture) NumDimensions() int { return int(sys.TextureNumDimensions(t.handle)) }
func (t *Texture) NumLevels() int     { return int(sys.TextureNumLevels(t.handle)) }
func (t *Texture) NumLayers() int     { return int(sys.TextureNumLayers(t.handle)) }
func (t *Texture) NumFaces() int      { return int(sys.TextureNumFaces(t.handle)) }
func (t *Texture) IsArray() bool      { return sys.TextureIsArray(t.handle) }
func (t *Texture) IsCubemap() bool    { return sys.TextureIsCubemap(t.handle) }
func (t *Texture) IsCompressed() bool { return sys.TextureIsCompressed(t.handle) }

// Orientation returns the logical orientation of the texture in X, Y and Z.
func (t *Texture) Orientation() Orientations {
	x, y, z := sys.TextureOrientation(t.handle)
	return Orientations{
		X: OrientationX(x),
		Y: OrientationY(y),
		Z: OrientationZ(z),
	}
}

// ImageOffset returns the offset into Data of the image at the given mip
// level, array layer and slice (cubemap face or depth slice).
func (t *Texture) ImageOffset(level, layer, faceSlice int) (int, error) {
	off, code := sys.TextureGetImageOffset(t.handle, uint32(level), uint32(layer), uint32(faceSlice))
	if err := errFromCode(code); err != nil {
		return 0, err
	}
	return int(off), nil
}

// ImageSize returns the size in bytes of one image at the given mip level.
func (t *Texture) ImageSize(level int) int {
	return int(sys.TextureGetImageSize(t.handle, uint32(level)))
}

// DataSizeUncompressed returns the byte size the image data would have
// without supercompression.
func (t *Texture) DataSizeUncompressed() int {
	return int(sys.TextureGetDataSizeUncompressed(t.handle))
}

// LoadImageData loads (or reloads) the image data from the texture's
// backing stream into its internal buffer. Textures decoded with the
// LoadImageData flag have already done this.
func (t *Texture) LoadImageData() error {
	return errFromCode(sys.TextureLoadImageData(t.handle))
}

// LevelVisitor is called once per (mip level, face) pair during level
// iteration, level-major then face. pixels covers exactly that sub-image
// and is only valid for the duration of the call.
type LevelVisitor func(mipLevel, face, width, height, depth int, pixels []byte) error

// IterateLevels visits every (level, face) pair of the texture. Image data
// must already be loaded, otherwise ErrInvalidValue is returned. The
// visitor must treat pixels as read-only; use IterateLevelsMut to edit in
// place.
func (t *Texture) IterateLevels(visit LevelVisitor) error {
	return t.iterate(visit)
}

// IterateLevelsMut is IterateLevels with permission to mutate the pixel
// data in place.
func (t *Texture) IterateLevelsMut(visit LevelVisitor) error {
	return t.iterate(visit)
}

func (t *Texture) iterate(visit LevelVisitor) error {
	if !sys.TextureHasData(t.handle) {
		return ErrInvalidValue
	}
	code, verr := sys.TextureIterateLevels(t.handle, sys.LevelVisitor(visit))
	if verr != nil {
		return verr
	}
	return errFromCode(code)
}

// VersionedTexture is the version-specific projection of a Texture: exactly
// one of *Ktx1 or *Ktx2, matching the handle's class discriminant.
type VersionedTexture interface {
	containerVersion() int
}

// Versioned returns the version-specific view of this texture, or nil if
// the handle's class discriminant is unrecognized.
func (t *Texture) Versioned() VersionedTexture {
	switch sys.TextureClass(t.handle) {
	case sys.ClassKtx1:
		return &Ktx1{t: t}
	case sys.ClassKtx2:
		return &Ktx2{t: t}
	default:
		return nil
	}
}

// Ktx1 returns the KTX1 view of this texture, or nil if it is not a KTX1.
func (t *Texture) Ktx1() *Ktx1 {
	v, _ := t.Versioned().(*Ktx1)
	return v
}

// Ktx2 returns the KTX2 view of this texture, or nil if it is not a KTX2.
func (t *Texture) Ktx2() *Ktx2 {
	v, _ := t.Versioned().(*Ktx2)
	return v
}
