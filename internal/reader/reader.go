// Package reader implements the byte-accurate cursor shared by the CFF
// structural parser and the Type 2 / Type 1 charstring interpreters.
//
// Grounded on the cursor shape used throughout seehuhn.de/go/sfnt/cff
// (ReadUint8/ReadUint16/SeekPos calls in fdselect.go and encoding.go) and
// on the movable-limit rationale of a font dump tool: nested charstring
// execution enters a subroutine by narrowing the limit to the
// subroutine's end offset, then restores the previous limit on return,
// which is the only thing that stops a corrupt length from running the
// interpreter into the next glyph's bytes.
package reader

import "fmt"

// InvalidFontError reports a structural or interpretive problem found
// while reading a font. SubSystem names the component that detected the
// problem ("cff", "type1", "charstring", ...).
type InvalidFontError struct {
	SubSystem string
	Reason    string
}

func (e *InvalidFontError) Error() string {
	if e.SubSystem == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.SubSystem, e.Reason)
}

// Invalid constructs an InvalidFontError for the given subsystem.
func Invalid(subSystem, reason string) error {
	return &InvalidFontError{SubSystem: subSystem, Reason: reason}
}

// Invalidf is like Invalid but formats the reason.
func Invalidf(subSystem, format string, args ...interface{}) error {
	return &InvalidFontError{SubSystem: subSystem, Reason: fmt.Sprintf(format, args...)}
}

// ErrShortRead is returned whenever a typed read would cross the current
// limit.
var ErrShortRead = Invalid("reader", "short read")

type frame struct {
	buf   []byte
	pos   int
	limit int
}

// Reader is a positionable cursor over an in-memory byte slice. It
// exposes a mutable upper limit that masks the visible tail of the
// buffer, and a stack discipline for saving and restoring both the
// position and the limit (or, via Enter/Leave, the whole underlying
// buffer) so that subroutine calls can narrow the window of bytes that
// are visible to a nested charstring without copying them.
type Reader struct {
	buf   []byte
	pos   int
	limit int
	stack []frame
}

// New returns a reader over buf, with the limit set to len(buf).
func New(buf []byte) *Reader {
	return &Reader{buf: buf, limit: len(buf)}
}

// Len returns the length of the underlying buffer, ignoring the limit.
func (r *Reader) Len() int { return len(r.buf) }

// Bytes returns the underlying buffer.
func (r *Reader) Bytes() []byte { return r.buf }

// Position returns the current read offset.
func (r *Reader) Position() int { return r.pos }

// SetPosition moves the cursor. It is legal to set the position beyond
// the limit; the next read will then fail.
func (r *Reader) SetPosition(p int) error {
	if p < 0 || p > len(r.buf) {
		return Invalidf("reader", "position %d out of range", p)
	}
	r.pos = p
	return nil
}

// Limit returns the current limit.
func (r *Reader) Limit() int { return r.limit }

// SetLimit narrows (or widens, up to len(buf)) the visible tail of the
// buffer.
func (r *Reader) SetLimit(l int) error {
	if l < 0 || l > len(r.buf) {
		return Invalidf("reader", "limit %d out of range", l)
	}
	r.limit = l
	return nil
}

// SaveState pushes the current position and limit so that a later
// RestoreState call can undo any changes made in between. The underlying
// buffer is not affected.
func (r *Reader) SaveState() {
	r.stack = append(r.stack, frame{buf: r.buf, pos: r.pos, limit: r.limit})
}

// RestoreState pops the most recently saved position and limit. It is an
// error to call RestoreState without a matching SaveState.
func (r *Reader) RestoreState() error {
	if len(r.stack) == 0 {
		return Invalid("reader", "restore without matching save")
	}
	n := len(r.stack) - 1
	f := r.stack[n]
	r.stack = r.stack[:n]
	r.buf, r.pos, r.limit = f.buf, f.pos, f.limit
	return nil
}

// Enter saves the current buffer, position and limit, then switches the
// reader to view buf[start:end] (end is an exclusive upper bound and
// becomes the new limit; start becomes the new position). Subroutine
// calls use this to narrow execution to exactly the called subroutine's
// bytes, whether those bytes live in the same backing array (CFF local
// and global subroutines, which are all slices of one file buffer) or in
// an independently decrypted array (Type 1 Subrs, each decrypted into
// its own plaintext slice).
func (r *Reader) Enter(buf []byte, start, end int) error {
	if start < 0 || end < start || end > len(buf) {
		return Invalidf("reader", "invalid subroutine bounds [%d,%d) in buffer of length %d", start, end, len(buf))
	}
	r.SaveState()
	r.buf = buf
	r.pos = start
	r.limit = end
	return nil
}

// Leave restores the buffer, position and limit saved by the matching
// Enter call.
func (r *Reader) Leave() error {
	return r.RestoreState()
}

// Remaining returns the number of bytes available to read before the
// limit.
func (r *Reader) Remaining() int {
	n := r.limit - r.pos
	if n < 0 {
		return 0
	}
	return n
}

func (r *Reader) need(n int) error {
	if r.pos < 0 || r.pos+n > r.limit || r.pos+n > len(r.buf) {
		return ErrShortRead
	}
	return nil
}

// U8 reads an unsigned 8-bit value.
func (r *Reader) U8() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// U16BE reads an unsigned big-endian 16-bit value.
func (r *Reader) U16BE() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := uint16(r.buf[r.pos])<<8 | uint16(r.buf[r.pos+1])
	r.pos += 2
	return v, nil
}

// U24BE reads an unsigned big-endian 24-bit value.
func (r *Reader) U24BE() (uint32, error) {
	if err := r.need(3); err != nil {
		return 0, err
	}
	v := uint32(r.buf[r.pos])<<16 | uint32(r.buf[r.pos+1])<<8 | uint32(r.buf[r.pos+2])
	r.pos += 3
	return v, nil
}

// U32BE reads an unsigned big-endian 32-bit value.
func (r *Reader) U32BE() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := uint32(r.buf[r.pos])<<24 | uint32(r.buf[r.pos+1])<<16 |
		uint32(r.buf[r.pos+2])<<8 | uint32(r.buf[r.pos+3])
	r.pos += 4
	return v, nil
}

// I16BE reads a signed big-endian 16-bit value.
func (r *Reader) I16BE() (int16, error) {
	v, err := r.U16BE()
	return int16(v), err
}

// I32BE reads a signed big-endian 32-bit value.
func (r *Reader) I32BE() (int32, error) {
	v, err := r.U32BE()
	return int32(v), err
}

// ReadBytes reads n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadOffSize reads and validates a CFF OffSize byte (1..=4).
func (r *Reader) ReadOffSize() (int, error) {
	b, err := r.U8()
	if err != nil {
		return 0, err
	}
	if b < 1 || b > 4 {
		return 0, Invalidf("reader", "invalid OffSize %d", b)
	}
	return int(b), nil
}

// ReadOff reads an n-byte big-endian unsigned offset, n in 1..=4.
func (r *Reader) ReadOff(n int) (uint32, error) {
	switch n {
	case 1:
		v, err := r.U8()
		return uint32(v), err
	case 2:
		v, err := r.U16BE()
		return uint32(v), err
	case 3:
		return r.U24BE()
	case 4:
		return r.U32BE()
	default:
		return 0, Invalidf("reader", "invalid offset size %d", n)
	}
}
