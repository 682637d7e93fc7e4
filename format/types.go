// Package format defines the small fixed enumerations embedded in the MWM
// wire format: the per-feature geometry type tag and the header's map type
// field. Both are packed into a handful of bits, the same way mebo's
// format package packs EncodingType/CompressionType into nibbles of a
// blob's flag byte (section/numeric_flag.go).
package format

import "fmt"

// GeometryType is the 2-bit geometry tag packed into bits 5-6 of a dat
// feature's header byte.
type GeometryType uint8

const (
	// GeometryPoint is a single coordinate feature (header bits 5-6 = 00).
	GeometryPoint GeometryType = 0x00
	// GeometryLine is a polyline feature (header bits 5-6 = 01). Its
	// coordinates are not decoded by this reader.
	GeometryLine GeometryType = 0x20
	// GeometryArea is a polygon feature (header bits 5-6 = 10). Its
	// coordinates are not decoded by this reader.
	GeometryArea GeometryType = 0x40
	// GeometryPointEx is a point feature carrying a "house" additional-info
	// field instead of "rank" (header bits 5-6 = 11).
	GeometryPointEx GeometryType = 0x60

	// geometryTypeMask isolates bits 5-6 of a feature header byte.
	geometryTypeMask = 0x60
)

// ParseGeometryType extracts the geometry type from a raw dat feature
// header byte.
func ParseGeometryType(headerByte byte) GeometryType {
	return GeometryType(headerByte & geometryTypeMask)
}

// String returns a human-readable name for the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryPoint:
		return "Point"
	case GeometryLine:
		return "Line"
	case GeometryArea:
		return "Area"
	case GeometryPointEx:
		return "PointEx"
	default:
		return "Unknown"
	}
}

// GeoJSONType returns the GeoJSON geometry type name a feature of this
// GeometryType is emitted as.
func (g GeometryType) GeoJSONType() string {
	switch g {
	case GeometryPoint, GeometryPointEx:
		return "Point"
	case GeometryLine:
		return "LineString"
	case GeometryArea:
		return "Polygon"
	default:
		return ""
	}
}

// MapType is the header's map_type varint field.
type MapType int64

const (
	MapTypeWorld       MapType = 0
	MapTypeWorldCoasts MapType = 1
	MapTypeCountry     MapType = 2
)

// String returns the header's label for this map type, including the
// "unknown: N" fallback for any value outside {0,1,2}.
func (m MapType) String() string {
	switch m {
	case MapTypeWorld:
		return "world"
	case MapTypeWorldCoasts:
		return "worldcoasts"
	case MapTypeCountry:
		return "country"
	default:
		return fmt.Sprintf("unknown: %d", int64(m))
	}
}
