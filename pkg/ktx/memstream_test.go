package ktx

import (
	"bytes"
	"io"
	"testing"
)

func TestMemoryStreamReadWrite(t *testing.T) {
	t.Run("WriteThenReadBack", func(t *testing.T) {
		ms := NewMemoryStream(nil)
		payload := []byte("ktx container bytes")
		if _, err := ms.Write(payload); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := ms.Seek(0, io.SeekStart); err != nil {
			t.Fatalf("rewind: %v", err)
		}
		got := make([]byte, len(payload))
		if _, err := io.ReadFull(ms, got); err != nil {
			t.Fatalf("read: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("read back %q, want %q", got, payload)
		}
	})

	t.Run("ReadAtEndIsEOF", func(t *testing.T) {
		ms := NewMemoryStream([]byte{1, 2, 3, 4})
		if _, err := ms.Seek(0, io.SeekEnd); err != nil {
			t.Fatalf("seek: %v", err)
		}
		if _, err := ms.Read(make([]byte, 1)); err != io.EOF {
			t.Errorf("read at end: got %v, want io.EOF", err)
		}
	})

	t.Run("ShortReadFailsReadFull", func(t *testing.T) {
		// This is the contract the native read callback relies on: asking
		// for more bytes than the stream holds must produce an error, not a
		// silent short read.
		ms := NewMemoryStream([]byte{1, 2, 3, 4})
		_, err := io.ReadFull(ms, make([]byte, 10))
		if err != io.ErrUnexpectedEOF {
			t.Errorf("short read: got %v, want io.ErrUnexpectedEOF", err)
		}
	})

	t.Run("OverwriteMiddleThenAppend", func(t *testing.T) {
		ms := NewMemoryStream([]byte("aaaa"))
		if _, err := ms.Seek(2, io.SeekStart); err != nil {
			t.Fatalf("seek: %v", err)
		}
		if _, err := ms.Write([]byte("bbbb")); err != nil {
			t.Fatalf("write: %v", err)
		}
		if got, want := ms.Bytes(), []byte("aabbbb"); !bytes.Equal(got, want) {
			t.Errorf("contents: got %q, want %q", got, want)
		}
	})

	t.Run("SeekPastEndZeroFills", func(t *testing.T) {
		ms := NewMemoryStream([]byte{0xFF})
		if _, err := ms.Seek(3, io.SeekStart); err != nil {
			t.Fatalf("seek: %v", err)
		}
		if _, err := ms.Write([]byte{0xEE}); err != nil {
			t.Fatalf("write: %v", err)
		}
		if got, want := ms.Bytes(), []byte{0xFF, 0, 0, 0xEE}; !bytes.Equal(got, want) {
			t.Errorf("contents: got %v, want %v", got, want)
		}
		if ms.Len() != 4 {
			t.Errorf("length: got %d, want 4", ms.Len())
		}
	})

	t.Run("NegativeSeekRejected", func(t *testing.T) {
		ms := NewMemoryStream([]byte{1, 2, 3})
		if _, err := ms.Seek(-1, io.SeekStart); err == nil {
			t.Error("negative seek: expected error")
		}
		if _, err := ms.Seek(-10, io.SeekEnd); err == nil {
			t.Error("seek before start: expected error")
		}
	})
}
