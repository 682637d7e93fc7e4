package varint

// unshuffle de-interleaves every other bit of a 32-bit word, recovering
// one axis of a Morton-coded (x, y) pair. Grounded bit-exactly on
// original_source/mwm/mwmfile.py's mwm_unshuffle: four passes, each
// swapping a run of interleaved bits into contiguous position using a
// fixed mask/shift pair (1, 2, 4, 8 positions).
func unshuffle(x uint32) uint32 {
	x = ((x & 0x22222222) << 1) | ((x >> 1) & 0x22222222) | (x & 0x99999999)
	x = ((x & 0x0C0C0C0C) << 2) | ((x >> 2) & 0x0C0C0C0C) | (x & 0xC3C3C3C3)
	x = ((x & 0x00F000F0) << 4) | ((x >> 4) & 0x00F000F0) | (x & 0xF00FF00F)
	x = ((x & 0x0000FF00) << 8) | ((x >> 8) & 0x0000FF00) | (x & 0xFF0000FF)
	return x
}

// SplitPoint recovers a Morton-coded (x, y) pair from a 64-bit word: the
// high and low 32-bit halves are each unshuffled independently, then their
// 16-bit results are recombined (mwm_bitwise_split). v's bits are read as
// an opaque two's-complement pattern, so a signed zigzag-decoded bounds
// value and an unsigned varuint base point both split the same way —
// callers needing the signed form just pass uint64(v).
//
// This is an exact bit contract: SplitPoint(0) == (0, 0), SplitPoint(1) ==
// (1, 0), SplitPoint(2) == (0, 1), SplitPoint(3) == (1, 1).
func SplitPoint(v uint64) (x, y uint32) {
	hi := unshuffle(uint32(v >> 32))
	lo := unshuffle(uint32(v))

	x = (hi&0xFFFF)<<16 | (lo & 0xFFFF)
	y = (hi & 0xFFFF0000) | (lo >> 16)
	return x, y
}

// DecodeDeltaPoint recovers an absolute (x, y) coordinate pair by
// Morton-splitting the raw point word u, zigzag-decoding each axis, and
// adding it to the reference point — the step read_point/mwm_decode_delta
// perform together for every point in a feature's geometry.
func DecodeDeltaPoint(u uint64, refX, refY int64) (int64, int64) {
	dx, dy := SplitPoint(u)
	return refX + Zigzag(uint64(dx)), refY + Zigzag(uint64(dy))
}
