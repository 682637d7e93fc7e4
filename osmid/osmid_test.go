package osmid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnpackLiteralCases(t *testing.T) {
	typ, id, ok := Unpack(0x4000000000000001)
	require.True(t, ok)
	require.Equal(t, TypeNode, typ)
	require.Equal(t, uint64(1), id)

	typ, id, ok = Unpack(0x8000000000000002)
	require.True(t, ok)
	require.Equal(t, TypeWay, typ)
	require.Equal(t, uint64(2), id)

	typ, id, ok = Unpack(0xC000000000000003)
	require.True(t, ok)
	require.Equal(t, TypeRelation, typ)
	require.Equal(t, uint64(3), id)
}

func TestUnpackUnknownType(t *testing.T) {
	typ, _, ok := Unpack(0x0000000000000001)
	require.False(t, ok)
	require.Equal(t, TypeUnknown, typ)
}

func TestPackSignedFitsPositive(t *testing.T) {
	s, err := PackSigned(TypeNode, 1)
	require.NoError(t, err)
	require.Equal(t, int64(0x4000000000000001), s)
}

func TestPackSignedOverflowsNegative(t *testing.T) {
	s, err := PackSigned(TypeWay, 2)
	require.NoError(t, err)
	require.True(t, s < 0, "result >= 2^63 must present as negative int64")
}

func TestPackInvalidType(t *testing.T) {
	_, err := Pack(TypeUnknown, 1)
	require.Error(t, err)
}

func TestBijectionRoundTrip(t *testing.T) {
	ids := []uint64{0, 1, 2, 1 << 61, (1 << 62) - 1}
	types := []Type{TypeNode, TypeWay, TypeRelation}

	for _, typ := range types {
		for _, id := range ids {
			u, err := Pack(typ, id)
			require.NoError(t, err)

			gotType, gotID, ok := Unpack(u)
			require.True(t, ok)
			require.Equal(t, typ, gotType)
			require.Equal(t, id, gotID)

			s, err := PackSigned(typ, id)
			require.NoError(t, err)
			gotType, gotID, ok = UnpackSigned(s)
			require.True(t, ok)
			require.Equal(t, typ, gotType)
			require.Equal(t, id, gotID)
		}
	}
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "n", TypeNode.String())
	require.Equal(t, "w", TypeWay.String())
	require.Equal(t, "r", TypeRelation.String())
	require.Equal(t, "", TypeUnknown.String())
}
