package services

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
)

// ErrUnreadableEncoding means every decoding candidate failed; the upload is
// rejected as a whole.
var ErrUnreadableEncoding = errors.New("unable to decode file with any supported encoding")

const chardetMinConfidence = 70

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeImportPayload turns raw uploaded bytes into text. The statistical
// guess from chardet goes first when it is confident enough, then a fixed
// fallback chain: UTF-8, UTF-8 with BOM, Windows-1251 (twice, matching the
// historical candidate list), and Windows-1252. The first candidate that
// decodes without undefined bytes wins.
func DecodeImportPayload(raw []byte) (string, error) {
	type decoder func([]byte) (string, bool)

	candidates := make([]decoder, 0, 6)
	if guessed := detectBestGuess(raw); guessed != nil {
		candidates = append(candidates, guessed)
	}
	candidates = append(candidates,
		decodeUTF8,
		decodeUTF8,
		decodeCharmap(charmap.Windows1251),
		decodeCharmap(charmap.Windows1251),
		decodeCharmap(charmap.Windows1252),
	)

	for _, decode := range candidates {
		if text, ok := decode(raw); ok {
			return text, nil
		}
	}
	return "", ErrUnreadableEncoding
}

// detectBestGuess maps chardet's charset name onto one of the supported
// decoders; low-confidence or unsupported guesses are ignored.
func detectBestGuess(raw []byte) func([]byte) (string, bool) {
	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil || result == nil || result.Confidence <= chardetMinConfidence {
		return nil
	}
	switch strings.ToUpper(result.Charset) {
	case "UTF-8":
		return decodeUTF8
	case "WINDOWS-1251":
		return decodeCharmap(charmap.Windows1251)
	case "WINDOWS-1252", "ISO-8859-1":
		return decodeCharmap(charmap.Windows1252)
	default:
		return nil
	}
}

func decodeUTF8(raw []byte) (string, bool) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// decodeCharmap is strict: a byte with no mapping in the charmap fails the
// candidate instead of being replaced. Neither Windows-1251 nor Windows-1252
// maps any byte to U+FFFD, so DecodeByte returning it means "undefined".
func decodeCharmap(table *charmap.Charmap) func([]byte) (string, bool) {
	return func(raw []byte) (string, bool) {
		var builder strings.Builder
		builder.Grow(len(raw))
		for _, b := range raw {
			r := table.DecodeByte(b)
			if r == utf8.RuneError {
				return "", false
			}
			builder.WriteRune(r)
		}
		return builder.String(), true
	}
}
