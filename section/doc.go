// Package section locates the MWM container's named sections: the fixed
// 8-byte little-endian pointer at file offset 0 leads to a tag directory
// (a varuint count followed by that many plain-string-name/offset/length
// entries), and each Section call returns an independently-bounded slice
// of the file so codec primitives never read outside the bytes their tag
// owns.
//
// Grounded on original_source/mwm/mwmfile.py's read_tags/has_tag/seek_tag,
// structured the way mebo's section package parses a fixed binary
// header into typed fields (section/numeric_header.go), adapted here for
// a variable-length, name-keyed directory instead of a fixed-size one.
package section
