// Package osm2ft reads the .mwm.osm2ft sidecar file, a flat array of
// (osm id, feature id) pairs that maps between OpenStreetMap identifiers
// and a map's dense per-feature ids.
//
// Grounded on original_source/mwm/osm2ft.py's Osm2Ft.read: unlike the
// tag-directory container this isn't wrapped in an MWM section at all —
// it's just a varuint count followed by fixed 16-byte records (8-byte OSM
// code, 4-byte feature id, 4 bytes of unused filler).
package osm2ft

import (
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/mwmreader/mwm/osmid"
	"github.com/mwmreader/mwm/section"
	"github.com/mwmreader/mwm/varint"
)

// Entry is a decoded OSM identifier: its object type plus numeric id.
type Entry struct {
	Type osmid.Type
	ID   uint64
}

// Index is a loaded osm2ft (or ft2osm) sidecar. Only the direction the
// file was loaded for is populated, mirroring Osm2Ft.read, which builds
// exactly one of the two lookup maps depending on the ft2osm flag.
type Index struct {
	ft2osm    bool
	checksum  uint64
	byFeature map[uint32]Entry
	byOSM     map[Entry]uint32
}

// Load reads every record out of src. ft2osm selects which direction to
// index: true keys the result by feature id (the ft2osm file's natural
// direction), false keys it by OSM identifier (the osm2ft file's natural
// direction). A record whose OSM code doesn't classify as node/way/
// relation is dropped, matching unpack_osmid returning None for an
// unknown type.
func Load(src section.Source, ft2osm bool) (*Index, error) {
	buf := make([]byte, src.Size())
	if _, err := src.ReadAt(buf, 0); err != nil {
		return nil, fmt.Errorf("mwm: read osm2ft sidecar: %w", err)
	}

	c := varint.NewCursor(buf)
	count := c.Varuint()

	idx := &Index{ft2osm: ft2osm, checksum: xxhash.Sum64(buf)}
	if ft2osm {
		idx.byFeature = make(map[uint32]Entry, count)
	} else {
		idx.byOSM = make(map[Entry]uint32, count)
	}

	for i := uint64(0); i < count; i++ {
		code, err := c.Uint(8)
		if err != nil {
			return nil, fmt.Errorf("mwm: read osm2ft record %d osm code: %w", i, err)
		}

		fid, err := c.Uint(4)
		if err != nil {
			return nil, fmt.Errorf("mwm: read osm2ft record %d feature id: %w", i, err)
		}

		if _, err := c.Uint(4); err != nil { // filler
			return nil, fmt.Errorf("mwm: read osm2ft record %d filler: %w", i, err)
		}

		typ, id, ok := osmid.Unpack(code)
		if !ok {
			continue
		}

		e := Entry{Type: typ, ID: id}
		if ft2osm {
			idx.byFeature[uint32(fid)] = e //nolint:gosec
		} else {
			idx.byOSM[e] = uint32(fid) //nolint:gosec
		}
	}

	return idx, nil
}

// FeatureToOSM resolves a feature id to its OSM identifier. Only valid
// when Load was called with ft2osm = true.
func (idx *Index) FeatureToOSM(featureID uint32) (Entry, bool) {
	e, ok := idx.byFeature[featureID]
	return e, ok
}

// OSMToFeature resolves an OSM identifier to its feature id. Only valid
// when Load was called with ft2osm = false.
func (idx *Index) OSMToFeature(e Entry) (uint32, bool) {
	fid, ok := idx.byOSM[e]
	return fid, ok
}

// Len returns the number of entries loaded.
func (idx *Index) Len() int {
	if idx.ft2osm {
		return len(idx.byFeature)
	}
	return len(idx.byOSM)
}

// All iterates the loaded pairs as (feature id, OSM identifier),
// regardless of which direction the index was loaded for. Iteration
// order follows the underlying map and is not stable between calls.
func (idx *Index) All() iter.Seq2[uint32, Entry] {
	return func(yield func(uint32, Entry) bool) {
		if idx.ft2osm {
			for fid, e := range idx.byFeature {
				if !yield(fid, e) {
					return
				}
			}
			return
		}
		for e, fid := range idx.byOSM {
			if !yield(fid, e) {
				return
			}
		}
	}
}

// Checksum returns the xxHash64 digest of the raw sidecar bytes this
// index was loaded from, captured before any decoding. Any byte change
// in the file — including record order and the unused filler words —
// produces a different digest.
func (idx *Index) Checksum() uint64 {
	return idx.checksum
}

// Checksum hashes src's raw bytes without parsing them. A caller holding
// a cached Index can compare this against Index.Checksum to detect that
// the sidecar file changed on disk before paying for a reload.
func Checksum(src section.Source) (uint64, error) {
	buf := make([]byte, src.Size())
	if _, err := src.ReadAt(buf, 0); err != nil {
		return 0, fmt.Errorf("mwm: read osm2ft sidecar: %w", err)
	}

	return xxhash.Sum64(buf), nil
}
