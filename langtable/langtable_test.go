package langtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownIndices(t *testing.T) {
	tag, ok := Resolve(0)
	require.True(t, ok)
	require.Equal(t, "default", tag)

	tag, ok = Resolve(1)
	require.True(t, ok)
	require.Equal(t, "en", tag)

	tag, ok = Resolve(len(Languages) - 1)
	require.True(t, ok)
	require.Equal(t, "hi", tag)
}

func TestResolveOutOfRange(t *testing.T) {
	_, ok := Resolve(-1)
	require.False(t, ok)

	_, ok = Resolve(len(Languages))
	require.False(t, ok)
}
