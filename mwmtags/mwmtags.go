// Package mwmtags holds the two other fixed, order-sensitive lookup tables
// the format defines: the metadata key table (used by the meta/metaidx
// sections) and the region-data key table (used by rgninfo). Both tables
// degrade gracefully on an out-of-range index by falling back to the
// decimal index as a string.
package mwmtags

import "strconv"

// MetadataKeys is the immutable, order-sensitive metadata key table used to
// resolve a metaidx/meta record's key_index (indexer/feature_meta.hpp).
// Index 0 is a placeholder ("0") reserved by the wire format.
var MetadataKeys = []string{
	"0",
	"cuisine", "open_hours", "phone_number", "fax_number", "stars",
	"operator", "url", "website", "internet", "ele",
	"turn_lanes", "turn_lanes_forward", "turn_lanes_backward", "email", "postcode",
	"wikipedia", "maxspeed", "flats", "height", "min_height",
	"denomination", "building_levels", "test_id", "ref:sponsored", "price_rate",
	"rating", "banner_url", "level",
}

// RegionDataKeys is the immutable, order-sensitive region-data key table
// used to resolve rgninfo's key_index.
var RegionDataKeys = []string{
	"languages", "driving", "timezone", "addr_fmt", "phone_fmt",
	"postcode_fmt", "holidays", "housenames",
}

// ResolveMetadataKey resolves a metadata key_index against MetadataKeys,
// falling back to the decimal string of the index when it is out of range.
func ResolveMetadataKey(index int) string {
	return resolve(MetadataKeys, index)
}

// ResolveRegionDataKey resolves an rgninfo key_index against
// RegionDataKeys, falling back to the decimal string of the index when it
// is out of range.
func ResolveRegionDataKey(index int) string {
	return resolve(RegionDataKeys, index)
}

func resolve(table []string, index int) string {
	if index >= 0 && index < len(table) {
		return table[index]
	}

	return strconv.Itoa(index)
}
