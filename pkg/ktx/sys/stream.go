package sys

/*
#cgo LDFLAGS: -lktx

#include "bridge.h"
*/
import "C"

import (
	"io"
	"math"
	"runtime/cgo"
	"unsafe"
)

// NewStream allocates a native ktxStream whose callbacks drive the host
// stream object behind the given handle. The handle value must be an
// io.ReadWriteSeeker; it is the caller's indirection cell, so a single
// machine word in the native struct can recover the full two-word Go
// interface value.
//
// The returned pointer stays valid until FreeStream. Passing it to native
// code after FreeStream is a documented unsafe contract, not a checked one:
// the poisoned handle slot makes such misuse panic loudly instead of
// corrupting memory.
func NewStream(h cgo.Handle) unsafe.Pointer {
	return unsafe.Pointer(C.ktxGoStream_create(C.uintptr_t(h)))
}

// FreeStream poisons the native stream's handle slot and releases the
// struct. It does not delete the cgo.Handle; the caller owns that, and must
// delete it only after this returns so the release order is poison, free,
// then drop the host object.
func FreeStream(str unsafe.Pointer) {
	if str == nil {
		return
	}
	s := (*C.ktxStream)(str)
	C.ktxGoStream_poison(s)
	C.ktxGoStream_destroy(s)
}

// streamOf recovers the host stream registered in str's handle slot.
// Panics (cgo.Handle misuse) if str was poisoned or never initialized by
// NewStream; that is deliberate.
func streamOf(str *C.ktxStream) io.ReadWriteSeeker {
	h := cgo.Handle(C.ktxGoStream_handle(str))
	return h.Value().(io.ReadWriteSeeker)
}

// byteCount multiplies an element size by an element count, reporting false
// when the product does not fit in an int (possible on 32-bit targets).
func byteCount(size, count uint64) (int, bool) {
	if count != 0 && size > uint64(math.MaxInt)/count {
		return 0, false
	}
	return int(size * count), true
}

// streamLen reports the total length of rws without permanently moving its
// position: save, seek to end, seek back.
func streamLen(rws io.ReadWriteSeeker) (int64, error) {
	pos, err := rws.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := rws.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := rws.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

//export goStreamRead
func goStreamRead(str *C.ktxStream, dst unsafe.Pointer, count C.ktx_size_t) C.KTX_error_code {
	inner := streamOf(str)
	buf := unsafe.Slice((*byte)(dst), int(count))
	if _, err := io.ReadFull(inner, buf); err != nil {
		Logger().Error("ktxStream read failed", "count", uint64(count), "err", err)
		return C.KTX_FILE_READ_ERROR
	}
	return C.KTX_SUCCESS
}

//export goStreamSkip
func goStreamSkip(str *C.ktxStream, count C.ktx_size_t) C.KTX_error_code {
	inner := streamOf(str)
	if _, err := inner.Seek(int64(count), io.SeekCurrent); err != nil {
		Logger().Error("ktxStream skip failed", "count", uint64(count), "err", err)
		return C.KTX_FILE_SEEK_ERROR
	}
	return C.KTX_SUCCESS
}

//export goStreamWrite
func goStreamWrite(str *C.ktxStream, src unsafe.Pointer, size, count C.ktx_size_t) C.KTX_error_code {
	inner := streamOf(str)
	total, ok := byteCount(uint64(size), uint64(count))
	if !ok {
		Logger().Error("ktxStream write rejected", "size", uint64(size), "count", uint64(count))
		return C.KTX_FILE_OVERFLOW
	}
	buf := unsafe.Slice((*byte)(src), total)
	n, err := inner.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		Logger().Error("ktxStream write failed", "len", len(buf), "err", err)
		return C.KTX_FILE_WRITE_ERROR
	}
	return C.KTX_SUCCESS
}

//export goStreamGetpos
func goStreamGetpos(str *C.ktxStream, offset *C.ktx_off_t) C.KTX_error_code {
	inner := streamOf(str)
	pos, err := inner.Seek(0, io.SeekCurrent)
	if err != nil {
		Logger().Error("ktxStream getpos failed", "err", err)
		return C.KTX_FILE_SEEK_ERROR
	}
	*offset = C.ktx_off_t(pos)
	return C.KTX_SUCCESS
}

//export goStreamSetpos
func goStreamSetpos(str *C.ktxStream, offset C.ktx_off_t) C.KTX_error_code {
	inner := streamOf(str)
	if _, err := inner.Seek(int64(offset), io.SeekStart); err != nil {
		Logger().Error("ktxStream setpos failed", "offset", int64(offset), "err", err)
		return C.KTX_FILE_SEEK_ERROR
	}
	return C.KTX_SUCCESS
}

//export goStreamGetsize
func goStreamGetsize(str *C.ktxStream, size *C.ktx_size_t) C.KTX_error_code {
	inner := streamOf(str)
	n, err := streamLen(inner)
	if err != nil {
		Logger().Error("ktxStream getsize failed", "err", err)
		return C.KTX_FILE_SEEK_ERROR
	}
	*size = C.ktx_size_t(n)
	return C.KTX_SUCCESS
}

//export goStreamDestruct
func goStreamDestruct(str *C.ktxStream) {
	// No-op. Teardown is host-driven through FreeStream; releasing anything
	// here would race the Go-side owner.
}
