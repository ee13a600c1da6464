package ktx

import (
	"io"
	"runtime/cgo"
	"sync"
	"unsafe"

	"github.com/goopsie/go-ktx/pkg/ktx/sys"
)

// Stream binds a host io.ReadWriteSeeker to a native ktxStream so libktx
// can perform I/O against it. One Stream may back both a StreamSource and a
// StreamSink (the write-then-read-back round trip); its internal mutex
// serializes the two, held for the duration of a single native call.
//
// A Stream owns the host object for native purposes: the object must stay
// usable until Close. Close is idempotent and must not run before every
// Texture decoded from this stream has finished loading its image data.
type Stream struct {
	mu     sync.Mutex
	inner  io.ReadWriteSeeker
	handle cgo.Handle
	native unsafe.Pointer
}

// NewStream registers rws with the native library. The returned Stream must
// be Closed to release the native struct and the registration handle.
func NewStream(rws io.ReadWriteSeeker) (*Stream, error) {
	if rws == nil {
		return nil, ErrInvalidValue
	}
	// The cgo.Handle is the indirection cell: the native struct has one
	// pointer-sized slot, a Go interface value is two words, and the handle
	// maps one word back to the full value on every callback.
	h := cgo.NewHandle(rws)
	native := sys.NewStream(h)
	if native == nil {
		h.Delete()
		return nil, ErrOutOfMemory
	}
	return &Stream{inner: rws, handle: h, native: native}, nil
}

// Inner returns the wrapped host stream, e.g. to rewind it between a write
// and a read-back. Callers must not use it while a native operation on this
// Stream is in flight.
func (s *Stream) Inner() io.ReadWriteSeeker {
	return s.inner
}

// Close poisons and frees the native struct, then drops the registration
// handle. Release order matters: the handle goes last, so a native
// use-after-free hits either the poisoned slot or a dead cgo.Handle, both
// of which fail loudly instead of corrupting memory. Close never lets the native
// destructor callback free anything; teardown is entirely host-driven.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.native == nil {
		return nil
	}
	sys.FreeStream(s.native)
	s.native = nil
	s.handle.Delete()
	s.handle = 0
	return nil
}
