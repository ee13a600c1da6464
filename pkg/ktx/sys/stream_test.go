package sys

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestByteCount(t *testing.T) {
	cases := []struct {
		size, count uint64
		want        int
		ok          bool
	}{
		{size: 4, count: 2, want: 8, ok: true},
		{size: 0, count: 5, want: 0, ok: true},
		{size: 7, count: 0, want: 0, ok: true},
		{size: math.MaxInt, count: 1, want: math.MaxInt, ok: true},
		{size: math.MaxInt, count: 2, ok: false},
		{size: math.MaxUint64 / 2, count: 3, ok: false},
	}
	for _, c := range cases {
		got, ok := byteCount(c.size, c.count)
		if ok != c.ok || got != c.want {
			t.Errorf("byteCount(%d, %d) = (%d, %v), want (%d, %v)",
				c.size, c.count, got, ok, c.want, c.ok)
		}
	}
}

func TestStreamLen(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stream.bin"))
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()

	payload := make([]byte, 100)
	if _, err := f.Write(payload); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	t.Run("ReportsTotalLength", func(t *testing.T) {
		n, err := streamLen(f)
		if err != nil {
			t.Fatalf("streamLen: %v", err)
		}
		if n != 100 {
			t.Errorf("length: got %d, want 100", n)
		}
	})

	t.Run("PreservesPosition", func(t *testing.T) {
		if _, err := f.Seek(37, io.SeekStart); err != nil {
			t.Fatalf("seek: %v", err)
		}
		if _, err := streamLen(f); err != nil {
			t.Fatalf("streamLen: %v", err)
		}
		pos, err := f.Seek(0, io.SeekCurrent)
		if err != nil {
			t.Fatalf("getpos: %v", err)
		}
		if pos != 37 {
			t.Errorf("position moved: got %d, want 37", pos)
		}
	})
}
