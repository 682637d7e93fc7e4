package reader

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/mwmreader/mwm/errs"
	"github.com/mwmreader/mwm/format"
	"github.com/mwmreader/mwm/varint"
)

// FeatureHeader is a dat feature's header block.
type FeatureHeader struct {
	Types []string
	Name  map[string]string

	HasLayer bool
	Layer    int8

	Rank  *uint8
	Ref   *string
	House *string
}

// Geometry is a feature's decoded geometry. Only GeometryPoint carries
// coordinates — line and area (and, matching original_source's own
// behavior, point-ex) geometry payloads are left undecoded.
type Geometry struct {
	Type           format.GeometryType
	GeoJSONType    string
	HasCoordinates bool
	Lon            float64
	Lat            float64
}

// Feature is one decoded record from the 'dat' section.
type Feature struct {
	ID       int
	Size     int
	Header   FeatureHeader
	Metadata Metadata
	Geometry Geometry
}

// IterFeatures iterates the 'dat' section's features in stream order. If
// withMetadata is true, 'metaidx'/'meta' are read once up front and each
// feature's metadata is attached by its dense id.
//
// A feature whose parsed fields read past its declared feature_size
// yields a zero Feature alongside an *errs.OverreadError and then stops —
// matching original_source/mwm/mwm.py's iter_features, which raises
// rather than resyncing on such a feature.
func (r *Reader) IterFeatures(withMetadata bool) iter.Seq2[Feature, error] {
	return func(yield func(Feature, error) bool) {
		if !r.dir.HasTag("dat") {
			return
		}

		var md map[uint32]Metadata
		if withMetadata {
			m, err := r.ReadMetadata()
			if err != nil {
				yield(Feature{}, err)
				return
			}
			md = m
		}

		c, err := r.section("dat")
		if err != nil {
			yield(Feature{}, err)
			return
		}

		ftid := -1
		for c.Remaining() > 0 {
			ftid++

			featureSize := c.Varuint()
			bodyStart := c.Pos()
			nextFeature := bodyStart + int(featureSize) //nolint:gosec

			feature := Feature{ID: ftid, Size: int(featureSize)} //nolint:gosec

			header, geomType, err := r.readFeatureHeader(c)
			if err != nil {
				yield(Feature{}, fmt.Errorf("mwm: read feature %d header: %w", ftid, err))
				return
			}
			feature.Header = header

			if m, ok := md[uint32(ftid)]; ok { //nolint:gosec
				feature.Metadata = m
			}

			geom, err := r.readFeatureGeometry(c, geomType)
			if err != nil {
				yield(Feature{}, fmt.Errorf("mwm: read feature %d geometry: %w", ftid, err))
				return
			}
			feature.Geometry = geom

			if c.Pos() > nextFeature {
				yield(Feature{}, &errs.OverreadError{
					FeatureID: ftid,
					Declared:  int(featureSize), //nolint:gosec
					Consumed:  c.Pos() - bodyStart,
				})
				return
			}

			if !yield(feature, nil) {
				return
			}

			c.Seek(nextFeature)
		}
	}
}

func (r *Reader) readFeatureHeader(c *varint.Cursor) (FeatureHeader, format.GeometryType, error) {
	headerBits, err := c.Uint(1)
	if err != nil {
		return FeatureHeader{}, 0, err
	}

	typesCount := (headerBits & 0x07) + 1
	hasName := headerBits&0x08 > 0
	hasLayer := headerBits&0x10 > 0
	hasAddInfo := headerBits&0x80 > 0
	geomType := format.ParseGeometryType(byte(headerBits)) //nolint:gosec

	types := make([]string, 0, typesCount)
	for i := uint64(0); i < typesCount; i++ {
		typeID := c.Varuint()
		if int(typeID) < len(r.typeMapping) { //nolint:gosec
			types = append(types, r.typeMapping[typeID])
		} else {
			// keep the numbering aligned with mapcss-mapping.csv, which
			// is 1-indexed where this table is 0-indexed
			types = append(types, strconv.FormatUint(typeID+1, 10))
		}
	}

	fh := FeatureHeader{Types: types}

	if hasName {
		name, err := c.ReadMultilangString()
		if err != nil {
			return FeatureHeader{}, 0, err
		}
		fh.Name = name
	}

	if hasLayer {
		layer, err := c.Uint(1)
		if err != nil {
			return FeatureHeader{}, 0, err
		}
		fh.HasLayer = true
		fh.Layer = int8(layer) //nolint:gosec
	}

	if hasAddInfo {
		switch geomType {
		case format.GeometryPoint:
			rank, err := c.Uint(1)
			if err != nil {
				return FeatureHeader{}, 0, err
			}
			v := uint8(rank) //nolint:gosec
			fh.Rank = &v
		case format.GeometryLine:
			ref, err := c.ReadString(false)
			if err != nil {
				return FeatureHeader{}, 0, err
			}
			fh.Ref = &ref
		case format.GeometryArea, format.GeometryPointEx:
			house, err := c.ReadNumericString()
			if err != nil {
				return FeatureHeader{}, 0, err
			}
			fh.House = &house
		}
	}

	return fh, geomType, nil
}

func (r *Reader) readFeatureGeometry(c *varint.Cursor, geomType format.GeometryType) (Geometry, error) {
	geo := Geometry{Type: geomType, GeoJSONType: geomType.GeoJSONType()}

	if geomType != format.GeometryPoint {
		return geo, nil
	}

	if !r.haveBase {
		return Geometry{}, errs.ErrHeaderNotRead
	}

	x, y, err := c.ReadPoint(r.baseX, r.baseY, true)
	if err != nil {
		return Geometry{}, err
	}

	lon, lat, err := r.proj.ToWGS84(x, y)
	if err != nil {
		return Geometry{}, err
	}

	geo.HasCoordinates = true
	geo.Lon = lon
	geo.Lat = lat
	return geo, nil
}
