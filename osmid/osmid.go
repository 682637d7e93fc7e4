// Package osmid implements the OSM identifier codec: a 64-bit code whose
// top two bits classify the object as a node, way, or relation, with the
// low 62 bits holding the numeric id.
package osmid

import "github.com/mwmreader/mwm/errs"

// Type identifies the kind of OpenStreetMap object an id was packed from.
type Type byte

const (
	// TypeUnknown is returned when the top two bits of a code are 00 — no
	// valid object type is packed into it.
	TypeUnknown  Type = 0
	TypeNode     Type = 'n'
	TypeWay      Type = 'w'
	TypeRelation Type = 'r'
)

const (
	nodeMask     = uint64(0x4000000000000000)
	wayMask      = uint64(0x8000000000000000)
	relationMask = uint64(0xC000000000000000)
	idMask       = ^(nodeMask | wayMask | relationMask)
)

// Unpack dispatches on the top two bits of an unsigned OSM code and
// recovers (type, id). It returns (TypeUnknown, 0, false) for a code whose
// top two bits are 00 — no object type is encoded.
func Unpack(code uint64) (Type, uint64, bool) {
	switch {
	case code&relationMask == relationMask:
		return TypeRelation, code & idMask, true
	case code&wayMask == wayMask:
		return TypeWay, code & idMask, true
	case code&nodeMask == nodeMask:
		return TypeNode, code & idMask, true
	default:
		return TypeUnknown, 0, false
	}
}

// UnpackSigned converts a signed 64-bit presentation of an OSM code to
// unsigned via the bijection u = (-1 - s) XOR (2^64 - 1) for negative s,
// then unpacks it.
func UnpackSigned(signed int64) (Type, uint64, bool) {
	return Unpack(signedToUnsigned(signed))
}

// Pack encodes (typ, id) into an unsigned OSM code. It returns an error if
// typ is not one of TypeNode, TypeWay, TypeRelation.
func Pack(typ Type, id uint64) (uint64, error) {
	switch typ {
	case TypeNode:
		return id | nodeMask, nil
	case TypeWay:
		return id | wayMask, nil
	case TypeRelation:
		return id | relationMask, nil
	default:
		return 0, errs.ErrInvalidOSMType
	}
}

// PackSigned encodes (typ, id) the way Pack does, then presents the result
// as a signed int64: values that fit below 2^63 round-trip as ordinary
// positive int64s; values at or above 2^63 are converted through the same
// bijection UnpackSigned inverts, producing a negative int64.
func PackSigned(typ Type, id uint64) (int64, error) {
	u, err := Pack(typ, id)
	if err != nil {
		return 0, err
	}

	if u < 1<<63 {
		return int64(u), nil //nolint:gosec
	}

	return unsignedToSigned(u), nil
}

// signedToUnsigned inverts unsignedToSigned for negative inputs; signed
// values that are already non-negative pass through as-is since the wire
// format only uses the bijection to represent codes >= 2^63.
func signedToUnsigned(s int64) uint64 {
	if s >= 0 {
		return uint64(s)
	}

	return uint64(-1-s) ^ ^uint64(0)
}

// unsignedToSigned is the forward direction of the bijection: given an
// unsigned code u >= 2^63 that doesn't fit in int64, produce the negative
// int64 s such that signedToUnsigned(s) == u.
func unsignedToSigned(u uint64) int64 {
	x := u ^ ^uint64(0)
	return -1 - int64(x) //nolint:gosec
}

// String returns the single-character type tag ("n", "w", "r") the format
// uses, or "" for TypeUnknown.
func (t Type) String() string {
	switch t {
	case TypeNode, TypeWay, TypeRelation:
		return string(rune(t))
	default:
		return ""
	}
}
