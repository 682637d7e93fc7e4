package varint

import (
	"io"

	"github.com/mwmreader/mwm/endian"
	"github.com/mwmreader/mwm/errs"
)

// Cursor reads MWM primitives out of an in-memory byte slice, advancing an
// internal read position. mebo's blob decoders (blob/numeric_decoder.go)
// take the same approach — operate on an already-loaded []byte rather than
// an io.Reader — since every MWM section is first sliced out of the mmap'd
// (or fully-read) file by the section package before any codec runs over
// it.
type Cursor struct {
	buf    []byte
	pos    int
	engine endian.EndianEngine
}

// NewCursor wraps buf for little-endian reads starting at position 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf, engine: endian.GetLittleEndianEngine()}
}

// Len returns the total number of bytes in the underlying buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Seek repositions the cursor to an absolute offset.
func (c *Cursor) Seek(pos int) { c.pos = pos }

// Peek returns the n bytes at the current position without advancing.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if c.pos+n > len(c.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	return c.buf[c.pos : c.pos+n], nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) { c.pos += n }

// ReadRaw reads exactly n bytes with no length prefix of its own — the
// shape the legacy (pre-v8) metadata record's fixed 1-byte length prefix
// needs, as opposed to the biased varuint-prefixed String/Bytes forms.
func (c *Cursor) ReadRaw(n int) ([]byte, error) {
	if c.pos+n > len(c.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Uint reads a fixed-width little-endian unsigned integer of the given
// byte width. Only widths 1, 2, 4, and 8 are supported; any other width
// returns errs.ErrUnsupportedWidth.
func (c *Cursor) Uint(width int) (uint64, error) {
	switch width {
	case 1, 2, 4, 8:
	default:
		return 0, errs.ErrUnsupportedWidth
	}

	if c.pos+width > len(c.buf) {
		return 0, io.ErrUnexpectedEOF
	}

	var v uint64
	switch width {
	case 1:
		v = uint64(c.buf[c.pos])
	case 2:
		v = uint64(c.engine.Uint16(c.buf[c.pos : c.pos+2]))
	case 4:
		v = uint64(c.engine.Uint32(c.buf[c.pos : c.pos+4]))
	case 8:
		v = c.engine.Uint64(c.buf[c.pos : c.pos+8])
	}

	c.pos += width
	return v, nil
}

// Varuint reads a base-128 little-endian-group variable-length unsigned
// integer. Continuation is signaled by the high bit of each byte; running
// out of buffer mid-value is not an error — the
// partial accumulator built so far is returned, matching
// original_source/mwm/mwm.py's read_varuint, which never raises on a
// truncated tail.
func (c *Cursor) Varuint() uint64 {
	var res uint64
	var shift uint

	for c.pos < len(c.buf) {
		b := c.buf[c.pos]
		c.pos++
		res |= uint64(b&0x7F) << shift
		if b < 0x80 {
			break
		}
		shift += 7
	}

	return res
}

// Varint reads a varuint and zigzag-decodes it using the round-toward-zero
// variant this format uses: value = u>>1 for even u, -(u>>1) for odd u.
// This differs from the protobuf convention
// -((u>>1)+1) and is why u=1 decodes to 0 rather than -1.
func (c *Cursor) Varint() int64 {
	return Zigzag(c.Varuint())
}

// Zigzag applies the format's round-toward-zero zigzag decoding to an
// already-read varuint value.
func Zigzag(u uint64) int64 {
	v := int64(u >> 1) //nolint:gosec
	if u&1 != 0 {
		return -v
	}
	return v
}

// UintArray reads a varuint-prefixed count followed by that many varuint
// elements, the shape the header section uses for its scales and
// languages arrays.
func (c *Cursor) UintArray() []uint64 {
	n := c.Varuint()
	arr := make([]uint64, 0, n)
	for i := uint64(0); i < n; i++ {
		arr = append(arr, c.Varuint())
	}
	return arr
}
