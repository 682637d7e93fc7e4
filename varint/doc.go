// Package varint implements the MWM wire-format codec primitives: fixed-
// width unsigned reads, base-128 varuint, the round-toward-zero zigzag
// varint variant, Morton unshuffle/split, packed and unpacked delta-point
// decoding, mercator->WGS84 projection, and the three string encodings
// (plain/tag, numeric, multilingual).
//
// Every primitive here operates on a Cursor over an already-bounded []byte
// — reads occur only within [offset, offset+length) of the section that
// owns them, enforced simply by never handing a primitive more bytes than
// its section owns, the same way mebo's blob package decodes directly
// from offsets into one already-loaded []byte rather than reading through
// a shared stream position (blob/numeric_decoder.go).
package varint
