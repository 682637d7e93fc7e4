package reader

import (
	"encoding/binary"
	"sort"
	"testing"

	"github.com/mwmreader/mwm/section"
)

// appendVaruint appends v to buf in the format's base-128 little-endian
// varuint encoding (the test-side mirror of varint.Cursor.Varuint).
func appendVaruint(buf []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			buf = append(buf, b|0x80)
		} else {
			buf = append(buf, b)
			break
		}
	}
	return buf
}

// appendUint32 appends v as 4 little-endian bytes, the fixed-width shape
// metaidx entries and chrysler's node/cost fields use.
func appendUint32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

// appendVarint zigzag-encodes s using this format's round-toward-zero
// variant (the inverse of varint.Zigzag) and appends it as a varuint.
func appendVarint(buf []byte, s int64) []byte {
	var u uint64
	if s < 0 {
		u = uint64(-s)<<1 | 1
	} else {
		u = uint64(s) << 1
	}
	return appendVaruint(buf, u)
}

// buildMWM assembles a full MWM-shaped byte buffer out of named section
// payloads: an 8-byte little-endian directory pointer, the concatenated
// section bytes in the order names appear, then the varuint-prefixed tag
// directory describing their offsets and lengths. names controls iteration order so tests can place sections in whatever
// sequence they like; every name must have a matching key in tags.
func buildMWM(names []string, tags map[string][]byte) []byte {
	buf := make([]byte, 8)

	offsets := make(map[string]int, len(names))
	for _, name := range names {
		offsets[name] = len(buf)
		buf = append(buf, tags[name]...)
	}

	dirOffset := uint64(len(buf))
	binary.LittleEndian.PutUint64(buf[0:8], dirOffset)

	dirBuf := appendVaruint(nil, uint64(len(names)))
	for _, name := range names {
		dirBuf = append(dirBuf, byte(len(name)))
		dirBuf = append(dirBuf, []byte(name)...)
		dirBuf = appendVaruint(dirBuf, uint64(offsets[name]))
		dirBuf = appendVaruint(dirBuf, uint64(len(tags[name])))
	}

	return append(buf, dirBuf...)
}

func newTestReader(t *testing.T, names []string, tags map[string][]byte) *Reader {
	t.Helper()

	buf := buildMWM(names, tags)
	r, err := New(section.NewBytesSource(buf))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

// appendLenPrefixed appends payload to buf using the length-prefix
// convention varint.Cursor.ReadBytes expects: a plain-flavor prefix is
// the payload length as-is, the default (non-plain) flavor is biased by
// one.
func appendLenPrefixed(buf, payload []byte, plain bool) []byte {
	length := uint64(len(payload))
	if !plain {
		length--
	}
	buf = appendVaruint(buf, length)
	return append(buf, payload...)
}

// buildDatSection wraps each feature body with its own varuint
// feature_size prefix and concatenates them, the shape the 'dat' tag's
// feature stream takes.
func buildDatSection(bodies ...[]byte) []byte {
	var buf []byte
	for _, body := range bodies {
		buf = appendVaruint(buf, uint64(len(body)))
		buf = append(buf, body...)
	}
	return buf
}

// featureOpts configures buildFeatureBody's output; zero-value fields
// mean "field absent" for Name/HasLayer/AddInfo and "single type 0"
// for Types.
type featureOpts struct {
	Types    []uint64
	Geom     byte // one of the format.Geometry* byte values
	Name     map[byte]string // language index -> text, encoded in index order
	HasLayer bool
	Layer    byte
	AddInfo  []byte // pre-encoded add-info payload (rank byte / ref string / house numeric string)
}

// buildFeatureBody encodes one feature's header-through-addinfo fields;
// it does not append geometry bytes, since POINT
// geometry is appended separately by the caller (it needs the packed
// delta-point varuint, which differs per test case) and non-POINT
// geometry has no wire bytes to add at all.
func buildFeatureBody(o featureOpts) []byte {
	types := o.Types
	if len(types) == 0 {
		types = []uint64{0}
	}

	headerByte := byte(len(types)-1) | o.Geom
	if len(o.Name) > 0 {
		headerByte |= 0x08
	}
	if o.HasLayer {
		headerByte |= 0x10
	}
	if o.AddInfo != nil {
		headerByte |= 0x80
	}

	buf := []byte{headerByte}
	for _, id := range types {
		buf = appendVaruint(buf, id)
	}

	if len(o.Name) > 0 {
		indices := make([]byte, 0, len(o.Name))
		for idx := range o.Name {
			indices = append(indices, idx)
		}
		sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

		var nameBuf []byte
		for _, idx := range indices {
			nameBuf = append(nameBuf, idx)
			nameBuf = append(nameBuf, []byte(o.Name[idx])...)
		}
		buf = appendLenPrefixed(buf, nameBuf, false)
	}

	if o.HasLayer {
		buf = append(buf, o.Layer)
	}

	if o.AddInfo != nil {
		buf = append(buf, o.AddInfo...)
	}

	return buf
}

// appendPackedPoint appends u's varuint encoding, the packed delta-point
// flavor the POINT geometry case reads.
func appendPackedPoint(buf []byte, u uint64) []byte {
	return appendVaruint(buf, u)
}

// singlePointFeature builds a 'dat' section containing exactly one
// minimal POINT feature (a single type id, no name/layer/addinfo) whose
// packed delta-point word is u. The caller picks u directly since it's
// the wire value, not the resolved coordinate.
func singlePointFeature(t *testing.T, u uint64) []byte {
	t.Helper()

	body := buildFeatureBody(featureOpts{Geom: 0x00})
	body = appendPackedPoint(body, u)
	return buildDatSection(body)
}
