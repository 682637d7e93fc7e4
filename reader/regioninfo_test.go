package reader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadRegionInfoAbsentTag(t *testing.T) {
	r := newTestReader(t, nil, nil)

	info, err := r.ReadRegionInfo()
	require.NoError(t, err)
	require.Empty(t, info.Fields)
	require.Empty(t, info.Languages)
}

func TestReadRegionInfoFieldsAndLanguages(t *testing.T) {
	var buf []byte
	buf = appendVaruint(buf, 2) // n = 2 records

	// record 0: key_index 1 ("driving"), value "right"
	buf = appendVaruint(buf, 1)
	buf = appendLenPrefixed(buf, []byte("right"), false)

	// record 1: key_index 0 ("languages"), value is raw language indices
	buf = appendVaruint(buf, 0)
	buf = appendLenPrefixed(buf, []byte{0, 1}, false) // default, en

	r := newTestReader(t, []string{"rgninfo"}, map[string][]byte{"rgninfo": buf})

	info, err := r.ReadRegionInfo()
	require.NoError(t, err)
	require.Equal(t, "right", info.Fields["driving"])
	require.Equal(t, []string{"default", "en"}, info.Languages)
	require.NotContains(t, info.Fields, "languages")
}

func TestReadRegionInfoUnknownKeyFallsBackToIndex(t *testing.T) {
	var buf []byte
	buf = appendVaruint(buf, 1)
	buf = appendVaruint(buf, 99)
	buf = appendLenPrefixed(buf, []byte("x"), false)

	r := newTestReader(t, []string{"rgninfo"}, map[string][]byte{"rgninfo": buf})

	info, err := r.ReadRegionInfo()
	require.NoError(t, err)
	require.Equal(t, "x", info.Fields["99"])
}
