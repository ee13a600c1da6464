package ktx

// Values in this file mirror the native libktx enumerations. They are part
// of the container format's ABI and do not change between library versions.

// CreateStorage controls whether a native constructor pre-allocates the
// image data buffer.
type CreateStorage uint32

const (
	NoStorage    CreateStorage = 0
	AllocStorage CreateStorage = 1
)

// TextureCreateFlags tune how a texture is decoded from a stream.
type TextureCreateFlags uint32

const (
	// LoadImageData reads the image data eagerly during creation.
	LoadImageData TextureCreateFlags = 1 << 0
	// RawKVData keeps the key-value metadata block as raw bytes.
	RawKVData TextureCreateFlags = 1 << 1
	// SkipKVData drops the key-value metadata block entirely.
	SkipKVData TextureCreateFlags = 1 << 2
)

// Default format tags for newly created textures.
const (
	// GLRGBA8 is GL_RGBA8, the default KTX1 internal format.
	GLRGBA8 uint32 = 0x8058
	// VkFormatR8G8B8A8Unorm is VK_FORMAT_R8G8B8A8_UNORM, the default KTX2
	// format.
	VkFormatR8G8B8A8Unorm uint32 = 37
)

// SuperCompressionScheme is a KTX2 container-level compression pass applied
// on top of the base image encoding.
type SuperCompressionScheme uint32

const (
	SSNone    SuperCompressionScheme = 0
	SSBasisLZ SuperCompressionScheme = 1
	SSZstd    SuperCompressionScheme = 2
)

// TranscodeFormat selects the target block-compression format for
// TranscodeBasis.
type TranscodeFormat uint32

const (
	TranscodeETC1RGB     TranscodeFormat = 0
	TranscodeETC2RGBA    TranscodeFormat = 1
	TranscodeBC1RGB      TranscodeFormat = 2
	TranscodeBC3RGBA     TranscodeFormat = 3
	TranscodeBC4R        TranscodeFormat = 4
	TranscodeBC5RG       TranscodeFormat = 5
	TranscodeBC7RGBA     TranscodeFormat = 6
	TranscodePVRTC14RGB  TranscodeFormat = 8
	TranscodePVRTC14RGBA TranscodeFormat = 9
	TranscodeASTC4x4RGBA TranscodeFormat = 10
	TranscodeRGBA32      TranscodeFormat = 13
	TranscodeRGB565      TranscodeFormat = 14
	TranscodeBGR565      TranscodeFormat = 15
	TranscodeRGBA4444    TranscodeFormat = 16
	TranscodePVRTC24RGB  TranscodeFormat = 18
	TranscodePVRTC24RGBA TranscodeFormat = 19
	TranscodeETC2EACR11  TranscodeFormat = 20
	TranscodeETC2EACRG11 TranscodeFormat = 21
	TranscodeETC         TranscodeFormat = 22
	TranscodeBC1or3      TranscodeFormat = 23
)

// TranscodeFlags modify TranscodeBasis behavior.
type TranscodeFlags uint32

const (
	TranscodePVRTCDecodeToNextPow2 TranscodeFlags = 1 << 1
	TranscodeAlphaDataToOpaque     TranscodeFlags = 1 << 2
	TranscodeHighQuality           TranscodeFlags = 1 << 5
)

// Orientation tags, one character each, matching the KTXorientation
// metadata convention.
type (
	OrientationX byte
	OrientationY byte
	OrientationZ byte
)

const (
	OrientXLeft  OrientationX = 'l'
	OrientXRight OrientationX = 'r'
	OrientYUp    OrientationY = 'u'
	OrientYDown  OrientationY = 'd'
	OrientZIn    OrientationZ = 'i'
	OrientZOut   OrientationZ = 'o'
)

// Orientations is the logical orientation of a texture in all three
// directions.
type Orientations struct {
	X OrientationX
	Y OrientationY
	Z OrientationZ
}

// ASTC encoder parameters for CompressAstcEx.

type AstcQuality uint32

const (
	AstcQualityFastest    AstcQuality = 0
	AstcQualityFast       AstcQuality = 10
	AstcQualityMedium     AstcQuality = 60
	AstcQualityThorough   AstcQuality = 98
	AstcQualityExhaustive AstcQuality = 100
)

type AstcBlockDimension uint32

const (
	AstcBlock4x4   AstcBlockDimension = 0
	AstcBlock5x4   AstcBlockDimension = 1
	AstcBlock5x5   AstcBlockDimension = 2
	AstcBlock6x5   AstcBlockDimension = 3
	AstcBlock6x6   AstcBlockDimension = 4
	AstcBlock8x5   AstcBlockDimension = 5
	AstcBlock8x6   AstcBlockDimension = 6
	AstcBlock10x5  AstcBlockDimension = 7
	AstcBlock10x6  AstcBlockDimension = 8
	AstcBlock8x8   AstcBlockDimension = 9
	AstcBlock10x8  AstcBlockDimension = 10
	AstcBlock10x10 AstcBlockDimension = 11
	AstcBlock12x10 AstcBlockDimension = 12
	AstcBlock12x12 AstcBlockDimension = 13
)

type AstcEncoderFunction uint32

const (
	AstcFunctionUnknown AstcEncoderFunction = 0
	AstcFunctionSRGB    AstcEncoderFunction = 1
	AstcFunctionLinear  AstcEncoderFunction = 2
)

type AstcEncoderMode uint32

const (
	AstcModeDefault AstcEncoderMode = 0
	AstcModeLDR     AstcEncoderMode = 1
	AstcModeHDR     AstcEncoderMode = 2
)

// AstcParams is the extended parameter set for CompressAstcEx.
type AstcParams struct {
	Verbose        bool
	ThreadCount    uint32
	BlockDimension AstcBlockDimension
	Function       AstcEncoderFunction
	Mode           AstcEncoderMode
	QualityLevel   AstcQuality
	NormalMap      bool
	InputSwizzle   [4]byte
}
