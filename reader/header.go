package reader

import (
	"fmt"
	"strconv"

	"github.com/mwmreader/mwm/format"
	"github.com/mwmreader/mwm/langtable"
	"github.com/mwmreader/mwm/varint"
)

// Bounds is a mercator bounding box in WGS-84 degrees.
type Bounds struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// Header is the parsed 'header' section.
type Header struct {
	CoordSize uint64
	BaseLon   float64
	BaseLat   float64
	Bounds    Bounds
	Scales    []uint64
	// Langs is the header's declared language list, resolved against
	// langtable.Languages; an index outside the table is left as its
	// decimal string so no information is silently dropped.
	Langs   []string
	MapType format.MapType
}

// ReadHeader parses the 'header' section and establishes the coordinate
// projection and base point every other coordinate in the container is
// decoded against. If the container has no 'header' section at all (a
// routing-only file), it stubs coord_size to (1<<30)-1 — matching
// original_source/mwm/mwm.py's read_header — and returns a zero Header.
func (r *Reader) ReadHeader() (Header, error) {
	if !r.dir.HasTag("header") {
		r.proj = varint.NewProjection((1 << 30) - 1)
		r.baseX, r.baseY = 0, 0
		r.haveBase = true
		return Header{}, nil
	}

	c, err := r.section("header")
	if err != nil {
		return Header{}, err
	}

	coordBits := c.Varuint()
	coordSize := (uint64(1) << coordBits) - 1
	r.proj = varint.NewProjection(coordSize)

	baseX, baseY := varint.SplitPoint(c.Varuint())
	r.baseX, r.baseY = int64(baseX), int64(baseY)
	r.haveBase = true

	baseLon, baseLat, err := r.proj.ToWGS84(r.baseX, r.baseY)
	if err != nil {
		return Header{}, fmt.Errorf("mwm: project header base point: %w", err)
	}

	bounds, err := r.readBounds(c)
	if err != nil {
		return Header{}, fmt.Errorf("mwm: read header bounds: %w", err)
	}

	scales := c.UintArray()

	rawLangs := c.UintArray()
	langs := make([]string, len(rawLangs))
	for i, idx := range rawLangs {
		if tag, ok := langtable.Resolve(int(idx)); ok { //nolint:gosec
			langs[i] = tag
		} else {
			langs[i] = strconv.FormatUint(idx, 10)
		}
	}

	mapType := format.MapType(c.Varint())

	return Header{
		CoordSize: coordSize,
		BaseLon:   baseLon,
		BaseLat:   baseLat,
		Bounds:    bounds,
		Scales:    scales,
		Langs:     langs,
		MapType:   mapType,
	}, nil
}

func (r *Reader) readBounds(c *varint.Cursor) (Bounds, error) {
	minX, minY := varint.SplitPoint(uint64(c.Varint())) //nolint:gosec
	maxX, maxY := varint.SplitPoint(uint64(c.Varint())) //nolint:gosec

	minLon, minLat, err := r.proj.ToWGS84(int64(minX), int64(minY))
	if err != nil {
		return Bounds{}, fmt.Errorf("mwm: project bounds min corner: %w", err)
	}
	maxLon, maxLat, err := r.proj.ToWGS84(int64(maxX), int64(maxY))
	if err != nil {
		return Bounds{}, fmt.Errorf("mwm: project bounds max corner: %w", err)
	}

	return Bounds{MinLon: minLon, MinLat: minLat, MaxLon: maxLon, MaxLat: maxLat}, nil
}
