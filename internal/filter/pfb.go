package filter

import (
	"encoding/binary"
	"fmt"
)

// ErrInvalidPFB is returned when a PFB section header is truncated, has
// a wrong magic byte or an unknown segment type, or declares a length
// that runs past the end of the data.
var ErrInvalidPFB = fmt.Errorf("filter: invalid PFB file")

// StripPFB strips the 6-byte PFB segment headers from src, concatenating
// the payload of every ASCII (type 1) and binary (type 2) section until a
// type-3 (EOF) section is reached. Grounded on
// seehuhn.de/go/sfnt/type1/pfb.go's pfbReader, adapted to operate on an
// in-memory buffer (the whole input is already materialized, per the
// resource model) rather than an io.Reader, and to strip down to raw
// bytes instead of re-hex-encoding binary sections.
func StripPFB(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src))
	pos := 0
	for {
		if pos+6 > len(src) {
			return nil, ErrInvalidPFB
		}
		if src[pos] != 0x80 {
			return nil, ErrInvalidPFB
		}
		kind := src[pos+1]
		if kind == 3 {
			return out, nil
		}
		if kind != 1 && kind != 2 {
			return nil, ErrInvalidPFB
		}
		length := binary.LittleEndian.Uint32(src[pos+2 : pos+6])
		pos += 6
		end := pos + int(length)
		if end < pos || end > len(src) {
			return nil, ErrInvalidPFB
		}
		out = append(out, src[pos:end]...)
		pos = end
	}
}

// LooksLikePFB reports whether src begins with a PFB segment header.
func LooksLikePFB(src []byte) bool {
	return len(src) >= 2 && src[0] == 0x80 && src[1] >= 1 && src[1] <= 3
}
