package reader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mwmreader/mwm/mwmtags"
	"github.com/mwmreader/mwm/varint"
)

// Metadata is one feature's decoded metaidx/meta record. Fuel is split
// out from Fields because the wire format packs multiple fuel types into
// a single \x01-delimited value (fmt >= 8 records only).
type Metadata struct {
	Fields map[string]string
	Fuel   []string
}

type metaIndexEntry struct {
	offset    uint32
	featureID uint32
}

// ReadMetadata parses the 'metaidx' and 'meta' sections together,
// returning each feature's metadata keyed by its dense feature id. A
// container without 'metaidx' returns an empty map.
//
// Grounded on original_source/mwm/mwm.py's read_metadata: the format
// changed at fmt 8, so the version section is consulted first; metaidx's
// (feature id, meta offset) pairs are sorted by offset, then matched
// against each meta record's byte position with a single forward sweep —
// the same O(n+m) merge the original performs instead of a lookup table.
func (r *Reader) ReadMetadata() (map[uint32]Metadata, error) {
	result := map[uint32]Metadata{}

	if !r.dir.HasTag("metaidx") {
		return result, nil
	}

	ver, err := r.ReadVersion()
	if err != nil {
		return nil, err
	}

	idxCursor, err := r.section("metaidx")
	if err != nil {
		return nil, err
	}

	var entries []metaIndexEntry
	for idxCursor.Remaining() > 0 {
		entryIdx := len(entries)
		ftid, err := idxCursor.Uint(4)
		if err != nil {
			return nil, fmt.Errorf("mwm: read metaidx entry %d feature id: %w", entryIdx, err)
		}
		moffs, err := idxCursor.Uint(4)
		if err != nil {
			return nil, fmt.Errorf("mwm: read metaidx entry %d meta offset: %w", entryIdx, err)
		}
		entries = append(entries, metaIndexEntry{offset: uint32(moffs), featureID: uint32(ftid)}) //nolint:gosec
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].offset < entries[j].offset })

	metaCursor, err := r.section("meta")
	if err != nil {
		return nil, err
	}

	ftpos := 0
	for metaCursor.Remaining() > 0 {
		tagPos := uint32(metaCursor.Pos()) //nolint:gosec

		fields, fuel, err := r.readMetaRecord(metaCursor, ver.Format)
		if err != nil {
			return nil, fmt.Errorf("mwm: read meta record at offset %d: %w", tagPos, err)
		}

		if len(fields) == 0 && len(fuel) == 0 {
			continue
		}

		for ftpos < len(entries) && entries[ftpos].offset < tagPos {
			ftpos++
		}

		if ftpos < len(entries) && entries[ftpos].offset == tagPos {
			result[entries[ftpos].featureID] = Metadata{Fields: fields, Fuel: fuel}
		}
	}

	return result, nil
}

func (r *Reader) readMetaRecord(c *varint.Cursor, fmtVersion int) (map[string]string, []string, error) {
	fields := map[string]string{}
	var fuel []string

	if fmtVersion >= 8 {
		sz := c.Varuint()
		for i := uint64(0); i < sz; i++ {
			keyIdx := c.Varuint()
			key := mwmtags.ResolveMetadataKey(int(keyIdx)) //nolint:gosec

			val, err := c.ReadString(false)
			if err != nil {
				return nil, nil, fmt.Errorf("mwm: read meta field %d (key %q): %w", i, key, err)
			}

			if key == "fuel" {
				fuel = strings.Split(val, "\x01")
				continue
			}

			fields[key] = val
		}
		return fields, fuel, nil
	}

	for {
		tByte, err := c.Uint(1)
		if err != nil {
			return nil, nil, fmt.Errorf("mwm: read legacy meta tag byte: %w", err)
		}

		isLast := tByte&0x80 != 0
		keyIdx := tByte & 0x7F
		key := mwmtags.ResolveMetadataKey(int(keyIdx))

		length, err := c.Uint(1)
		if err != nil {
			return nil, nil, fmt.Errorf("mwm: read legacy meta field %q length: %w", key, err)
		}

		raw, err := c.ReadRaw(int(length)) //nolint:gosec
		if err != nil {
			return nil, nil, fmt.Errorf("mwm: read legacy meta field %q value: %w", key, err)
		}

		fields[key] = string(raw)
		if isLast {
			break
		}
	}

	return fields, fuel, nil
}
