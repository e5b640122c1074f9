// Package filter implements the streaming decoders that sit in front of
// the font parsers: ASCII-hex, ASCII-85, deflate, the PFB section
// stripper, and the eexec stream cipher (shared between Type 1 private
// dictionaries and individual charstrings).
//
// Grounded on seehuhn.de/go/sfnt/type1/pfb.go (the PFB segment loop) and
// seehuhn.de/go/sfnt/type1/eexec.go (the R/c1/c2 stream cipher); ASCII-hex
// and ASCII-85 have no counterpart anywhere in the retrieval pack and are
// implemented directly from spec.
package filter

import (
	"bytes"
	"fmt"
)

// DecodeASCIIHex decodes an ASCII-hex-encoded byte slice. Whitespace
// (space, tab, LF, CR, NUL, FF) is skipped. A trailing single hex digit
// before end-of-data or a '>' terminator is padded with '0'.
func DecodeASCIIHex(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)/2)
	var nibble byte
	haveNibble := false
	for _, c := range src {
		switch c {
		case ' ', '\t', '\n', '\r', 0, '\f':
			continue
		case '>':
			if haveNibble {
				out = append(out, nibble<<4)
			}
			return out, nil
		}
		v, ok := hexVal(c)
		if !ok {
			return nil, fmt.Errorf("ascii-hex: invalid character %q", c)
		}
		if !haveNibble {
			nibble = v
			haveNibble = true
		} else {
			out = append(out, nibble<<4|v)
			haveNibble = false
		}
	}
	if haveNibble {
		out = append(out, nibble<<4)
	}
	return out, nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// EncodeASCIIHex is the inverse of DecodeASCIIHex: it writes two
// upper-case hex digits per byte, with no whitespace and no terminator.
func EncodeASCIIHex(src []byte) []byte {
	const hex = "0123456789ABCDEF"
	buf := bytes.Buffer{}
	for _, b := range src {
		buf.WriteByte(hex[b>>4])
		buf.WriteByte(hex[b&0x0f])
	}
	return buf.Bytes()
}
