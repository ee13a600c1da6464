package sys

/*
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"unsafe"
)

// Success is the native all-clear result code. Every other code is an error.
const Success = 0

// cbool converts to ktx_bool_t, a C99 bool. The KTX_TRUE/KTX_FALSE macros
// expand to the untyped constants true/false and cannot cross cgo directly.
func cbool(b bool) C.ktx_bool_t {
	return C.ktx_bool_t(b)
}

// ErrorString returns libktx's own message for a result code.
func ErrorString(code int) string {
	s := C.ktxErrorString(C.KTX_error_code(code))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// CreateInfo mirrors ktxTextureCreateInfo. Exactly one of GLInternalFormat
// (KTX1) or VkFormat (KTX2) is consulted, depending on which constructor the
// caller picks. DFD, when set, must point at memory the caller keeps alive
// for the whole life of the created texture: native code stores the pointer,
// not a copy.
type CreateInfo struct {
	GLInternalFormat uint32
	VkFormat         uint32
	DFD              unsafe.Pointer

	BaseWidth     uint32
	BaseHeight    uint32
	BaseDepth     uint32
	NumDimensions uint32
	NumLevels     uint32
	NumLayers     uint32
	NumFaces      uint32

	IsArray         bool
	GenerateMipmaps bool
}

func (ci *CreateInfo) toC() C.ktxTextureCreateInfo {
	return C.ktxTextureCreateInfo{
		glInternalformat: C.ktx_uint32_t(ci.GLInternalFormat),
		vkFormat:         C.ktx_uint32_t(ci.VkFormat),
		pDfd:             (*C.ktx_uint32_t)(ci.DFD),
		baseWidth:        C.ktx_uint32_t(ci.BaseWidth),
		baseHeight:       C.ktx_uint32_t(ci.BaseHeight),
		baseDepth:        C.ktx_uint32_t(ci.BaseDepth),
		numDimensions:    C.ktx_uint32_t(ci.NumDimensions),
		numLevels:        C.ktx_uint32_t(ci.NumLevels),
		numLayers:        C.ktx_uint32_t(ci.NumLayers),
		numFaces:         C.ktx_uint32_t(ci.NumFaces),
		isArray:          cbool(ci.IsArray),
		generateMipmaps:  cbool(ci.GenerateMipmaps),
	}
}

// Texture1Create invokes ktxTexture1_Create.
func Texture1Create(info *CreateInfo, storage uint32) (unsafe.Pointer, int) {
	ci := info.toC()
	var tex *C.ktxTexture1
	code := C.ktxTexture1_Create(&ci, C.ktxTextureCreateStorageEnum(storage), &tex)
	return unsafe.Pointer(tex), int(code)
}

// Texture2Create invokes ktxTexture2_Create.
func Texture2Create(info *CreateInfo, storage uint32) (unsafe.Pointer, int) {
	ci := info.toC()
	var tex *C.ktxTexture2
	code := C.ktxTexture2_Create(&ci, C.ktxTextureCreateStorageEnum(storage), &tex)
	return unsafe.Pointer(tex), int(code)
}

// TextureCreateFromStream decodes a texture (KTX1 or KTX2, sniffed from the
// byte stream) through the given native stream binding.
func TextureCreateFromStream(str unsafe.Pointer, flags uint32) (unsafe.Pointer, int) {
	var tex *C.ktxTexture
	code := C.ktxGoTexture_CreateFromStream((*C.ktxStream)(str), C.ktxTextureCreateFlags(flags), &tex)
	return unsafe.Pointer(tex), int(code)
}

// TextureDestroy runs the handle's vtable destructor. Exactly-once semantics
// are the caller's responsibility.
func TextureDestroy(tex unsafe.Pointer) {
	C.ktxGoTexture_Destroy((*C.ktxTexture)(tex))
}

// TextureWriteToStream serializes the texture, in its own container version,
// through the native stream binding.
func TextureWriteToStream(tex, str unsafe.Pointer) int {
	return int(C.ktxGoTexture_WriteToStream((*C.ktxTexture)(tex), (*C.ktxStream)(str)))
}

func TextureData(tex unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.ktxTexture_GetData((*C.ktxTexture)(tex)))
}

func TextureDataSize(tex unsafe.Pointer) uint64 {
	return uint64(C.ktxTexture_GetDataSize((*C.ktxTexture)(tex)))
}

func TextureRowPitch(tex unsafe.Pointer, level uint32) uint64 {
	return uint64(C.ktxTexture_GetRowPitch((*C.ktxTexture)(tex), C.ktx_uint32_t(level)))
}

func TextureElementSize(tex unsafe.Pointer) uint64 {
	return uint64(C.ktxTexture_GetElementSize((*C.ktxTexture)(tex)))
}

func TextureGetImageOffset(tex unsafe.Pointer, level, layer, faceSlice uint32) (uint64, int) {
	var off C.ktx_size_t
	code := C.ktxGoTexture_GetImageOffset((*C.ktxTexture)(tex),
		C.ktx_uint32_t(level), C.ktx_uint32_t(layer), C.ktx_uint32_t(faceSlice), &off)
	return uint64(off), int(code)
}

func TextureGetImageSize(tex unsafe.Pointer, level uint32) uint64 {
	return uint64(C.ktxGoTexture_GetImageSize((*C.ktxTexture)(tex), C.ktx_uint32_t(level)))
}

func TextureGetDataSizeUncompressed(tex unsafe.Pointer) uint64 {
	return uint64(C.ktxGoTexture_GetDataSizeUncompressed((*C.ktxTexture)(tex)))
}

func TextureLoadImageData(tex unsafe.Pointer) int {
	return int(C.ktxGoTexture_LoadImageData((*C.ktxTexture)(tex), nil, 0))
}

// TextureHasData reports whether image data has been loaded into the
// handle's internal buffer.
func TextureHasData(tex unsafe.Pointer) bool {
	return (*C.ktxTexture)(tex).pData != nil
}

// Class discriminant values of the native handle.
const (
	ClassKtx1 = 1
	ClassKtx2 = 2
)

// TextureClass reads the handle's class discriminant.
func TextureClass(tex unsafe.Pointer) int {
	switch (*C.ktxTexture)(tex).classId {
	case C.ktxTexture1_c:
		return ClassKtx1
	case C.ktxTexture2_c:
		return ClassKtx2
	default:
		return 0
	}
}

func TextureBaseWidth(tex unsafe.Pointer) uint32 { return uint32((*C.ktxTexture)(tex).baseWidth) }
func TextureBaseHeight(tex unsafe.Pointer) uint32 {
	return uint32((*C.ktxTexture)(tex).baseHeight)
}
func TextureBaseDepth(tex unsafe.Pointer) uint32 { return uint32((*C.ktxTexture)(tex).baseDepth) }
func TextureNumDimensions(tex unsafe.Pointer) uint32 {
	return uint32((*C.ktxTexture)(tex).numDimensions)
}
func TextureNumLevels(tex unsafe.Pointer) uint32 { return uint32((*C.ktxTexture)(tex).numLevels) }
func TextureNumLayers(tex unsafe.Pointer) uint32 { return uint32((*C.ktxTexture)(tex).numLayers) }
func TextureNumFaces(tex unsafe.Pointer) uint32  { return uint32((*C.ktxTexture)(tex).numFaces) }

func TextureIsArray(tex unsafe.Pointer) bool   { return bool((*C.ktxTexture)(tex).isArray) }
func TextureIsCubemap(tex unsafe.Pointer) bool { return bool((*C.ktxTexture)(tex).isCubemap) }
func TextureIsCompressed(tex unsafe.Pointer) bool {
	return bool((*C.ktxTexture)(tex).isCompressed)
}

// TextureOrientation reads the logical orientation tags for X, Y and Z.
func TextureOrientation(tex unsafe.Pointer) (x, y, z uint32) {
	o := (*C.ktxTexture)(tex).orientation
	return uint32(o.x), uint32(o.y), uint32(o.z)
}

// KTX1-only field accessors. Callers must have checked TextureClass.

func Texture1GLFormat(tex unsafe.Pointer) uint32 {
	return uint32((*C.ktxTexture1)(tex).glFormat)
}

func Texture1GLInternalFormat(tex unsafe.Pointer) uint32 {
	return uint32((*C.ktxTexture1)(tex).glInternalformat)
}

func Texture1GLBaseInternalFormat(tex unsafe.Pointer) uint32 {
	return uint32((*C.ktxTexture1)(tex).glBaseInternalformat)
}

func Texture1GLType(tex unsafe.Pointer) uint32 {
	return uint32((*C.ktxTexture1)(tex).glType)
}

func Texture1NeedsTranscoding(tex unsafe.Pointer) bool {
	return bool(C.ktxTexture1_NeedsTranscoding((*C.ktxTexture1)(tex)))
}

// KTX2-only accessors and mutating operations.

func Texture2VkFormat(tex unsafe.Pointer) uint32 {
	return uint32((*C.ktxTexture2)(tex).vkFormat)
}

func Texture2SupercompressionScheme(tex unsafe.Pointer) uint32 {
	return uint32((*C.ktxTexture2)(tex).supercompressionScheme)
}

func Texture2IsVideo(tex unsafe.Pointer) bool    { return bool((*C.ktxTexture2)(tex).isVideo) }
func Texture2Duration(tex unsafe.Pointer) uint32 { return uint32((*C.ktxTexture2)(tex).duration) }
func Texture2Timescale(tex unsafe.Pointer) uint32 {
	return uint32((*C.ktxTexture2)(tex).timescale)
}
func Texture2LoopCount(tex unsafe.Pointer) uint32 {
	return uint32((*C.ktxTexture2)(tex).loopcount)
}

func Texture2NeedsTranscoding(tex unsafe.Pointer) bool {
	return bool(C.ktxTexture2_NeedsTranscoding((*C.ktxTexture2)(tex)))
}

func Texture2CompressBasis(tex unsafe.Pointer, quality uint32) int {
	return int(C.ktxTexture2_CompressBasis((*C.ktxTexture2)(tex), C.ktx_uint32_t(quality)))
}

func Texture2DeflateZstd(tex unsafe.Pointer, level uint32) int {
	return int(C.ktxTexture2_DeflateZstd((*C.ktxTexture2)(tex), C.ktx_uint32_t(level)))
}

func Texture2CompressAstc(tex unsafe.Pointer, quality uint32) int {
	return int(C.ktxTexture2_CompressAstc((*C.ktxTexture2)(tex), C.ktx_uint32_t(quality)))
}

// AstcParams mirrors ktxAstcParams for the extended ASTC compression entry
// point.
type AstcParams struct {
	Verbose        bool
	ThreadCount    uint32
	BlockDimension uint32
	Function       uint32
	Mode           uint32
	QualityLevel   uint32
	NormalMap      bool
	InputSwizzle   [4]byte
}

func Texture2CompressAstcEx(tex unsafe.Pointer, params *AstcParams) int {
	var swizzle [4]C.char
	for i, ch := range params.InputSwizzle {
		swizzle[i] = C.char(ch)
	}
	cp := C.ktxAstcParams{
		verbose:        cbool(params.Verbose),
		threadCount:    C.ktx_uint32_t(params.ThreadCount),
		blockDimension: C.ktx_uint32_t(params.BlockDimension),
		function:       C.ktx_uint32_t(params.Function),
		mode:           C.ktx_uint32_t(params.Mode),
		qualityLevel:   C.ktx_uint32_t(params.QualityLevel),
		normalMap:      cbool(params.NormalMap),
		inputSwizzle:   swizzle,
	}
	cp.structSize = C.ktx_uint32_t(unsafe.Sizeof(cp))
	return int(C.ktxTexture2_CompressAstcEx((*C.ktxTexture2)(tex), &cp))
}

func Texture2TranscodeBasis(tex unsafe.Pointer, format, flags uint32) int {
	return int(C.ktxTexture2_TranscodeBasis((*C.ktxTexture2)(tex),
		C.ktx_transcode_fmt_e(format), C.ktx_transcode_flags(flags)))
}

func Texture2GetComponentInfo(tex unsafe.Pointer) (numComponents, componentSize uint32) {
	var n, s C.ktx_uint32_t
	C.ktxTexture2_GetComponentInfo((*C.ktxTexture2)(tex), &n, &s)
	return uint32(n), uint32(s)
}

func Texture2GetNumComponents(tex unsafe.Pointer) uint32 {
	return uint32(C.ktxTexture2_GetNumComponents((*C.ktxTexture2)(tex)))
}

func Texture2GetOETF(tex unsafe.Pointer) uint32 {
	return uint32(C.ktxTexture2_GetOETF((*C.ktxTexture2)(tex)))
}

func Texture2GetPremultipliedAlpha(tex unsafe.Pointer) bool {
	return bool(C.ktxTexture2_GetPremultipliedAlpha((*C.ktxTexture2)(tex)))
}
