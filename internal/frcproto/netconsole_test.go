package frcproto

import "testing"

func TestEncodeNetConsoleLineTrimsTrailer(t *testing.T) {
	got := EncodeNetConsoleLine("hello world\r\n\x00")
	if string(got) != "hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeNetConsoleLineRoundTrip(t *testing.T) {
	encoded := EncodeNetConsoleLine("autonomous init\n")
	decoded, err := DecodeNetConsoleLine(encoded)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded != "autonomous init" {
		t.Fatalf("decoded = %q", decoded)
	}
}

func TestDecodeNetConsoleLineRejectsInvalidUTF8(t *testing.T) {
	_, err := DecodeNetConsoleLine([]byte{0xff, 0xfe, 0xfd})
	if err == nil {
		t.Fatalf("expected error for invalid utf-8")
	}
}

func TestDecodeNetConsoleLineEmpty(t *testing.T) {
	decoded, err := DecodeNetConsoleLine([]byte{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded != "" {
		t.Fatalf("decoded = %q, want empty", decoded)
	}
}
