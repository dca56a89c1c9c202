package services

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

func TestDecodeImportPayloadPlainUTF8(t *testing.T) {
	t.Parallel()

	text, err := DecodeImportPayload([]byte("name;type\nLaptop;electronics\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(text, "name;type") {
		t.Fatalf("unexpected decoded text %q", text)
	}
}

func TestDecodeImportPayloadStripsUTF8BOM(t *testing.T) {
	t.Parallel()

	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name;type\n")...)
	text, err := DecodeImportPayload(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(text, "name;type") {
		t.Fatalf("BOM leaked into decoded text: %q", text)
	}
}

func TestDecodeImportPayloadWindows1251(t *testing.T) {
	t.Parallel()

	encoder := charmap.Windows1251.NewEncoder()
	raw, err := encoder.Bytes([]byte("название;тип\nНоутбук;электроника\n"))
	if err != nil {
		t.Fatal(err)
	}

	text, decodeErr := DecodeImportPayload(raw)
	if decodeErr != nil {
		t.Fatal(decodeErr)
	}
	if !utf8.ValidString(text) {
		t.Fatal("decoded text is not valid UTF-8")
	}
	if !strings.Contains(text, ";") {
		t.Fatalf("delimiter lost in decoding: %q", text)
	}
}

func TestDecodeImportPayloadRejectsUndecodableBytes(t *testing.T) {
	t.Parallel()

	// 0x98 is undefined in Windows-1251 and 0x81/0x9D in Windows-1252, and
	// the sequence is not valid UTF-8 either.
	raw := []byte{0x98, 0x81, 0xC0, 0x9D, 0x98}
	_, err := DecodeImportPayload(raw)
	if !errors.Is(err, ErrUnreadableEncoding) {
		t.Fatalf("expected ErrUnreadableEncoding, got %v", err)
	}
}

func TestDecodeCharmapStrictness(t *testing.T) {
	t.Parallel()

	decode := decodeCharmap(charmap.Windows1252)
	if _, ok := decode([]byte{0x81}); ok {
		t.Fatal("undefined byte 0x81 must fail the Windows-1252 candidate")
	}
	if text, ok := decode([]byte{0xE9}); !ok || text != "é" {
		t.Fatalf("expected é, got %q (ok=%v)", text, ok)
	}
}
