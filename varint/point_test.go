package varint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPointPacked(t *testing.T) {
	// v=3 splits to (1,1), zigzag(1) == 0 on both axes, so the decoded
	// point equals the reference exactly; encode v=3 as a single varuint
	// byte (it fits under 0x80).
	c := NewCursor([]byte{0x03})
	x, y, err := c.ReadPoint(100, 200, true)
	require.NoError(t, err)
	require.Equal(t, int64(100), x)
	require.Equal(t, int64(200), y)
	require.Equal(t, 1, c.Pos())
}

func TestReadPointUnpacked(t *testing.T) {
	// the unpacked flavor reads a fixed little-endian 8-byte word instead
	// of a varuint; v=3 again splits to (1,1).
	c := NewCursor([]byte{0x03, 0, 0, 0, 0, 0, 0, 0})
	x, y, err := c.ReadPoint(10, 20, false)
	require.NoError(t, err)
	require.Equal(t, int64(10), x)
	require.Equal(t, int64(20), y)
	require.Equal(t, 8, c.Pos())
}

func TestReadPointUnpackedShortRead(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})
	_, _, err := c.ReadPoint(0, 0, false)
	require.Error(t, err)
}
