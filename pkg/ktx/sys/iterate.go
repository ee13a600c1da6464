package sys

/*
#include "bridge.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// LevelVisitor is invoked once per (mip level, face) pair, level-major.
// pixels aliases native memory for that sub-image and is only valid for the
// duration of the call. A non-nil error stops the iteration; if the error
// carries a native code (see CodeError) that code is reported to libktx,
// otherwise KTX_INVALID_OPERATION is.
type LevelVisitor func(mipLevel, face, width, height, depth int, pixels []byte) error

// CodeError is implemented by errors that map to a native KTX error code.
type CodeError interface {
	error
	NativeCode() int
}

type levelIterState struct {
	visit LevelVisitor
	err   error
}

// TextureIterateLevels drives the handle's IterateLevels vtable entry,
// calling visit per (level, face). It returns the native result code and
// the visitor error that aborted the iteration, if any.
func TextureIterateLevels(tex unsafe.Pointer, visit LevelVisitor) (int, error) {
	state := &levelIterState{visit: visit}
	h := cgo.NewHandle(state)
	defer h.Delete()

	code := C.ktxGoTexture_IterateLevels((*C.ktxTexture)(tex), C.uintptr_t(h))
	return int(code), state.err
}

//export goIterateLevels
func goIterateLevels(miplevel, face, width, height, depth C.int, faceLodSize C.ktx_uint64_t, pixels, userdata unsafe.Pointer) C.KTX_error_code {
	state := cgo.Handle(uintptr(userdata)).Value().(*levelIterState)
	buf := unsafe.Slice((*byte)(pixels), int(faceLodSize))
	err := state.visit(int(miplevel), int(face), int(width), int(height), int(depth), buf)
	if err == nil {
		return C.KTX_SUCCESS
	}
	state.err = err
	if ce, ok := err.(CodeError); ok {
		return C.KTX_error_code(ce.NativeCode())
	}
	return C.KTX_INVALID_OPERATION
}
