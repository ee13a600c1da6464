package sys

import "testing"

func TestCbool(t *testing.T) {
	if !bool(cbool(true)) {
		t.Error("cbool(true) is not the native true value")
	}
	if bool(cbool(false)) {
		t.Error("cbool(false) is not the native false value")
	}
}
