package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGeometryType(t *testing.T) {
	cases := []struct {
		name   string
		header byte
		want   GeometryType
	}{
		{"point", 0x08, GeometryPoint},
		{"line", 0x08 | byte(GeometryLine), GeometryLine},
		{"area", 0x08 | byte(GeometryArea), GeometryArea},
		{"point_ex", 0x08 | byte(GeometryPointEx), GeometryPointEx},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, ParseGeometryType(c.header))
		})
	}
}

func TestGeometryTypeGeoJSONType(t *testing.T) {
	require.Equal(t, "Point", GeometryPoint.GeoJSONType())
	require.Equal(t, "Point", GeometryPointEx.GeoJSONType())
	require.Equal(t, "LineString", GeometryLine.GeoJSONType())
	require.Equal(t, "Polygon", GeometryArea.GeoJSONType())
}

func TestMapTypeString(t *testing.T) {
	require.Equal(t, "world", MapTypeWorld.String())
	require.Equal(t, "worldcoasts", MapTypeWorldCoasts.String())
	require.Equal(t, "country", MapTypeCountry.String())
	require.Equal(t, "unknown: 42", MapType(42).String())
}
