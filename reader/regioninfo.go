package reader

import (
	"fmt"
	"strconv"

	"github.com/mwmreader/mwm/langtable"
	"github.com/mwmreader/mwm/mwmtags"
)

// RegionInfo is the parsed 'rgninfo' section: a small set of
// region-scoped metadata fields, keyed by mwmtags.RegionDataKeys. The
// "languages" field is special-cased: its string value is actually a
// sequence of raw language-table index bytes, one per declared language.
type RegionInfo struct {
	Fields    map[string]string
	Languages []string
}

// ReadRegionInfo parses the 'rgninfo' section. A container without the
// tag returns a zero RegionInfo, matching read_region_info's empty-dict
// result for has_tag('rgninfo') == false.
func (r *Reader) ReadRegionInfo() (RegionInfo, error) {
	if !r.dir.HasTag("rgninfo") {
		return RegionInfo{}, nil
	}

	c, err := r.section("rgninfo")
	if err != nil {
		return RegionInfo{}, err
	}

	info := RegionInfo{Fields: map[string]string{}}

	n := c.Varuint()
	for i := uint64(0); i < n; i++ {
		keyIdx := c.Varuint()
		key := mwmtags.ResolveRegionDataKey(int(keyIdx)) //nolint:gosec

		value, err := c.ReadBytes(false)
		if err != nil {
			return RegionInfo{}, fmt.Errorf("mwm: read rgninfo field %d: %w", i, err)
		}

		if key == "languages" {
			langs := make([]string, 0, len(value))
			for _, b := range value {
				if tag, ok := langtable.Resolve(int(b)); ok {
					langs = append(langs, tag)
				} else {
					langs = append(langs, strconv.Itoa(int(b)))
				}
			}
			info.Languages = langs
			continue
		}

		info.Fields[key] = string(value)
	}

	return info, nil
}
