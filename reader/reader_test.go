package reader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwmreader/mwm/section"
)

func TestEmptyContainer(t *testing.T) {
	// a directory pointing at count=0 has no tags, and every section
	// reader returns an empty result rather than an error.
	r := newTestReader(t, nil, nil)

	require.Empty(t, r.Tags())
	require.False(t, r.HasTag("version"))
	require.False(t, r.HasTag("dat"))

	header, err := r.ReadHeader()
	require.NoError(t, err)
	require.Equal(t, Header{}, header)

	region, err := r.ReadRegionInfo()
	require.NoError(t, err)
	require.Empty(t, region.Fields)

	meta, err := r.ReadMetadata()
	require.NoError(t, err)
	require.Empty(t, meta)

	cross, err := r.ReadCrossMWM()
	require.NoError(t, err)
	require.Empty(t, cross.In)

	var count int
	for feature, err := range r.IterFeatures(false) {
		require.NoError(t, err)
		_ = feature
		count++
	}
	require.Equal(t, 0, count)
}

func TestTagsSortedAndHasTag(t *testing.T) {
	names := []string{"rgninfo", "dat"}
	tags := map[string][]byte{
		"rgninfo": {0x00},
		"dat":     {},
	}
	r := newTestReader(t, names, tags)

	require.Equal(t, []string{"dat", "rgninfo"}, r.Tags())
	require.True(t, r.HasTag("rgninfo"))
	// a present-but-zero-length tag counts as absent.
	require.False(t, r.HasTag("dat"))
}

func TestNewWrapsSourceWithoutClosing(t *testing.T) {
	buf := buildMWM(nil, nil)
	src := section.NewBytesSource(buf)

	r, err := New(src)
	require.NoError(t, err)
	require.NoError(t, r.Close())
}
