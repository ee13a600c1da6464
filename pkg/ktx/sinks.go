package ktx

import "github.com/goopsie/go-ktx/pkg/ktx/sys"

// StreamSink serializes textures through a Stream. The Stream may be shared
// with a StreamSource; writing holds the stream's lock for the duration of
// the native call.
type StreamSink struct {
	stream *Stream
}

// NewStreamSink returns a sink writing to the given stream.
func NewStreamSink(s *Stream) *StreamSink {
	return &StreamSink{stream: s}
}

// WriteTexture writes t, in its native container version, to the stream at
// its current position.
func (s *StreamSink) WriteTexture(t *Texture) error {
	if s.stream == nil || t == nil || t.handle == nil {
		return ErrInvalidValue
	}
	s.stream.mu.Lock()
	defer s.stream.mu.Unlock()
	if s.stream.native == nil {
		return ErrInvalidValue
	}
	return errFromCode(sys.TextureWriteToStream(t.handle, s.stream.native))
}
