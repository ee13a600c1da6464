package ktx

import (
	"fmt"
	"io"
)

// MemoryStream is an in-memory io.ReadWriteSeeker, the usual backing for a
// Stream when no file is involved (round-trip tests, network payloads,
// compressed wrappers).
//
// Writes past the current end grow the buffer; seeking past the end and
// then writing zero-fills the gap. Not safe for concurrent use; wrap the
// owning Stream's operations instead.
type MemoryStream struct {
	buf []byte
	pos int64
}

// NewMemoryStream returns a stream positioned at offset 0. The initial
// contents may be nil for an empty, growable stream; otherwise the slice is
// adopted, not copied.
func NewMemoryStream(initial []byte) *MemoryStream {
	return &MemoryStream{buf: initial}
}

// Bytes returns the current contents. The slice aliases the stream's
// internal buffer and is invalidated by the next Write.
func (m *MemoryStream) Bytes() []byte { return m.buf }

// Len returns the total content length in bytes.
func (m *MemoryStream) Len() int { return len(m.buf) }

func (m *MemoryStream) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *MemoryStream) Write(p []byte) (int, error) {
	if gap := m.pos - int64(len(m.buf)); gap > 0 {
		m.buf = append(m.buf, make([]byte, gap)...)
	}
	n := copy(m.buf[m.pos:], p)
	if n < len(p) {
		m.buf = append(m.buf, p[n:]...)
	}
	m.pos += int64(len(p))
	return len(p), nil
}

func (m *MemoryStream) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.pos + offset
	case io.SeekEnd:
		abs = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("ktx: invalid seek whence %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("ktx: negative seek position %d", abs)
	}
	m.pos = abs
	return abs, nil
}
