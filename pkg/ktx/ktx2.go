package ktx

import "github.com/goopsie/go-ktx/pkg/ktx/sys"

// Ktx2 is the KTX2-specific view over a Texture, obtained from
// Texture.Ktx2 or Texture.Versioned. Its mutating operations may rewrite
// the texture's entire internal data layout, including the data format
// descriptor.
type Ktx2 struct {
	t *Texture
}

func (*Ktx2) containerVersion() int { return 2 }

// Texture returns the underlying texture.
func (k *Ktx2) Texture() *Texture { return k.t }

// VkFormat returns the Vulkan format of the texture's data, e.g.
// VK_FORMAT_R8G8B8A8_UNORM.
func (k *Ktx2) VkFormat() uint32 {
	return sys.Texture2VkFormat(k.t.handle)
}

// SupercompressionScheme returns the container-level compression scheme in
// use for the texture's data.
func (k *Ktx2) SupercompressionScheme() SuperCompressionScheme {
	return SuperCompressionScheme(sys.Texture2SupercompressionScheme(k.t.handle))
}

// IsVideo reports whether this is a video texture.
func (k *Ktx2) IsVideo() bool { return sys.Texture2IsVideo(k.t.handle) }

// Duration returns the video duration, meaningful only if IsVideo.
func (k *Ktx2) Duration() uint32 { return sys.Texture2Duration(k.t.handle) }

// Timescale returns the video timescale, meaningful only if IsVideo.
func (k *Ktx2) Timescale() uint32 { return sys.Texture2Timescale(k.t.handle) }

// LoopCount returns the video loop count, meaningful only if IsVideo.
func (k *Ktx2) LoopCount() uint32 { return sys.Texture2LoopCount(k.t.handle) }

// NeedsTranscoding reports whether the texture holds Basis-encoded data
// that must be transcoded before GPU use.
func (k *Ktx2) NeedsTranscoding() bool {
	return sys.Texture2NeedsTranscoding(k.t.handle)
}

// ComponentInfo returns the number of components and the byte size of each
// component.
func (k *Ktx2) ComponentInfo() (numComponents, componentSize uint32) {
	return sys.Texture2GetComponentInfo(k.t.handle)
}

// NumComponents returns the component count, also accounting for block
// compression and Basis encoding.
func (k *Ktx2) NumComponents() uint32 {
	return sys.Texture2GetNumComponents(k.t.handle)
}

// OETF returns the opto-electrical transfer function in KHR_DF format.
func (k *Ktx2) OETF() uint32 {
	return sys.Texture2GetOETF(k.t.handle)
}

// PremultipliedAlpha reports whether the texture's alpha is premultiplied.
func (k *Ktx2) PremultipliedAlpha() bool {
	return sys.Texture2GetPremultipliedAlpha(k.t.handle)
}

// CompressBasis compresses uncompressed image data with Basis Universal.
// quality is 1-255; 0 selects the default of 128. Lower quality means
// better but slower compression.
func (k *Ktx2) CompressBasis(quality uint32) error {
	return errFromCode(sys.Texture2CompressBasis(k.t.handle, quality))
}

// DeflateZstd supercompresses the image data with Zstandard. level is 1-22;
// levels over 20 may need significant memory.
func (k *Ktx2) DeflateZstd(level uint32) error {
	return errFromCode(sys.Texture2DeflateZstd(k.t.handle, level))
}

// CompressAstc compresses the image data with ASTC using default
// parameters. See CompressAstcEx for the full parameter set.
func (k *Ktx2) CompressAstc(quality AstcQuality) error {
	return errFromCode(sys.Texture2CompressAstc(k.t.handle, uint32(quality)))
}

// CompressAstcEx compresses the image data with ASTC.
func (k *Ktx2) CompressAstcEx(params AstcParams) error {
	p := sys.AstcParams{
		Verbose:        params.Verbose,
		ThreadCount:    params.ThreadCount,
		BlockDimension: uint32(params.BlockDimension),
		Function:       uint32(params.Function),
		Mode:           uint32(params.Mode),
		QualityLevel:   uint32(params.QualityLevel),
		NormalMap:      params.NormalMap,
		InputSwizzle:   params.InputSwizzle,
	}
	return errFromCode(sys.Texture2CompressAstcEx(k.t.handle, &p))
}

// TranscodeBasis transcodes Basis-encoded (ETC1S or UASTC) image data to
// the given block-compressed format. BasisLZ supercompression is undone
// first; Zstd-deflated UASTC is inflated first.
func (k *Ktx2) TranscodeBasis(format TranscodeFormat, flags TranscodeFlags) error {
	return errFromCode(sys.Texture2TranscodeBasis(k.t.handle, uint32(format), uint32(flags)))
}
