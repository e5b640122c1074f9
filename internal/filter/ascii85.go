package filter

import "fmt"

// DecodeASCII85 decodes an Adobe ASCII-85-encoded byte slice, terminated
// by '~' (any bytes after the terminator are ignored). 'z' stands for a
// full group of four zero bytes and is only valid at a group boundary. A
// partial final group of length k in {2,3,4,5} contributes k-1 bytes; the
// missing characters are padded with 'u' before decoding.
func DecodeASCII85(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)*4/5+4)
	var group [5]byte
	n := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '~':
			if n > 0 {
				if n == 1 {
					return nil, fmt.Errorf("ascii85: group of length 1 before terminator")
				}
				b, err := decodeGroup(group, n)
				if err != nil {
					return nil, err
				}
				out = append(out, b...)
			}
			return out, nil
		case c == 'z':
			if n != 0 {
				return nil, fmt.Errorf("ascii85: 'z' not at group boundary")
			}
			out = append(out, 0, 0, 0, 0)
			continue
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == 0:
			continue
		case c < 33 || c > 117:
			return nil, fmt.Errorf("ascii85: invalid byte %d", c)
		}
		group[n] = c
		n++
		if n == 5 {
			b, err := decodeGroup(group, 5)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
			n = 0
		}
	}
	if n > 0 {
		if n == 1 {
			return nil, fmt.Errorf("ascii85: group of length 1 at end of data")
		}
		b, err := decodeGroup(group, n)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func decodeGroup(group [5]byte, n int) ([]byte, error) {
	full := group
	for i := n; i < 5; i++ {
		full[i] = 'u'
	}
	var val uint64
	for i := 0; i < 5; i++ {
		val = val*85 + uint64(full[i]-33)
	}
	if val > 0xFFFFFFFF {
		return nil, fmt.Errorf("ascii85: group value overflows 32 bits")
	}
	buf := []byte{byte(val >> 24), byte(val >> 16), byte(val >> 8), byte(val)}
	return buf[:n-1], nil
}
