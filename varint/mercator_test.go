package varint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToWGS84BoundsRoundTrip(t *testing.T) {
	const coordSize = 1000
	p := NewProjection(coordSize)

	lon, lat, err := p.ToWGS84(0, coordSize/2)
	require.NoError(t, err)
	require.InDelta(t, -180.0, lon, 1e-9)
	require.InDelta(t, 0.0, lat, 1e-6)

	lon, lat, err = p.ToWGS84(coordSize, coordSize/2)
	require.NoError(t, err)
	require.InDelta(t, 180.0, lon, 1e-9)
	require.InDelta(t, 0.0, lat, 1e-6)
}

func TestToWGS84WithoutHeaderErrors(t *testing.T) {
	var p Projection
	_, _, err := p.ToWGS84(0, 0)
	require.Error(t, err)
}
