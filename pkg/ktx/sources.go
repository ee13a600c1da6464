package ktx

import (
	"unsafe"

	"github.com/goopsie/go-ktx/pkg/ktx/sys"
)

// CommonCreateInfo holds the creation parameters shared by KTX1 and KTX2
// textures.
type CommonCreateInfo struct {
	CreateStorage   CreateStorage
	BaseWidth       uint32
	BaseHeight      uint32
	BaseDepth       uint32
	NumDimensions   uint32
	NumLevels       uint32
	NumLayers       uint32
	NumFaces        uint32
	IsArray         bool
	GenerateMipmaps bool
}

// DefaultCommonCreateInfo describes a 1×1×1 single-level, single-layer,
// single-face texture with storage allocated.
func DefaultCommonCreateInfo() CommonCreateInfo {
	return CommonCreateInfo{
		CreateStorage: AllocStorage,
		BaseWidth:     1,
		BaseHeight:    1,
		BaseDepth:     1,
		NumDimensions: 1,
		NumLevels:     1,
		NumLayers:     1,
		NumFaces:      1,
	}
}

// Ktx1CreateInfo creates a new KTX1 texture with the given OpenGL internal
// format. It is itself a TextureSource.
type Ktx1CreateInfo struct {
	GLInternalFormat uint32
	Common           CommonCreateInfo
}

// DefaultKtx1CreateInfo is a 1×1 GL_RGBA8 texture.
func DefaultKtx1CreateInfo() Ktx1CreateInfo {
	return Ktx1CreateInfo{
		GLInternalFormat: GLRGBA8,
		Common:           DefaultCommonCreateInfo(),
	}
}

// CreateTexture invokes the native KTX1 constructor.
func (ci Ktx1CreateInfo) CreateTexture() (*Texture, error) {
	sci := sysCreateInfo(ci.Common)
	sci.GLInternalFormat = ci.GLInternalFormat
	handle, code := sys.Texture1Create(&sci, uint32(ci.Common.CreateStorage))
	if err := errFromCode(code); err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, ErrInvalidOperation
	}
	return &Texture{handle: handle, source: ci}, nil
}

// Ktx2CreateInfo creates a new KTX2 texture with the given Vulkan format.
// It is itself a TextureSource.
//
// DFD optionally supplies a raw data format descriptor. Native code stores
// a pointer into the slice rather than copying it, so the created Texture
// retains the slice for its whole lifetime.
type Ktx2CreateInfo struct {
	VkFormat uint32
	DFD      []uint32
	Common   CommonCreateInfo
}

// DefaultKtx2CreateInfo is a 1×1 VK_FORMAT_R8G8B8A8_UNORM texture with no
// explicit DFD.
func DefaultKtx2CreateInfo() Ktx2CreateInfo {
	return Ktx2CreateInfo{
		VkFormat: VkFormatR8G8B8A8Unorm,
		Common:   DefaultCommonCreateInfo(),
	}
}

// CreateTexture invokes the native KTX2 constructor.
func (ci Ktx2CreateInfo) CreateTexture() (*Texture, error) {
	sci := sysCreateInfo(ci.Common)
	sci.VkFormat = ci.VkFormat
	if len(ci.DFD) > 0 {
		sci.DFD = unsafe.Pointer(&ci.DFD[0])
	}
	handle, code := sys.Texture2Create(&sci, uint32(ci.Common.CreateStorage))
	if err := errFromCode(code); err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, ErrInvalidOperation
	}
	return &Texture{handle: handle, source: ci, dfd: ci.DFD}, nil
}

// StreamSource decodes a texture (KTX1 or KTX2, detected from the bytes)
// from a Stream. The Stream may be shared with a StreamSink; decoding holds
// the stream's lock for the duration of the native call.
type StreamSource struct {
	Stream *Stream
	Flags  TextureCreateFlags
}

// CreateTexture decodes a texture from the stream at its current position.
// Unless Flags includes LoadImageData, the created texture may read from
// the stream lazily and must not outlive it.
func (s *StreamSource) CreateTexture() (*Texture, error) {
	if s.Stream == nil {
		return nil, ErrInvalidValue
	}
	s.Stream.mu.Lock()
	defer s.Stream.mu.Unlock()
	if s.Stream.native == nil {
		return nil, ErrInvalidValue
	}
	handle, code := sys.TextureCreateFromStream(s.Stream.native, uint32(s.Flags))
	if err := errFromCode(code); err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, ErrInvalidOperation
	}
	return &Texture{handle: handle, source: s}, nil
}

func sysCreateInfo(c CommonCreateInfo) sys.CreateInfo {
	return sys.CreateInfo{
		BaseWidth:       c.BaseWidth,
		BaseHeight:      c.BaseHeight,
		BaseDepth:       c.BaseDepth,
		NumDimensions:   c.NumDimensions,
		NumLevels:       c.NumLevels,
		NumLayers:       c.NumLayers,
		NumFaces:        c.NumFaces,
		IsArray:         c.IsArray,
		GenerateMipmaps: c.GenerateMipmaps,
	}
}
