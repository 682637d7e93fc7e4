package section

import (
	"fmt"
	"sort"

	"github.com/mwmreader/mwm/endian"
	"github.com/mwmreader/mwm/errs"
	"github.com/mwmreader/mwm/varint"
)

// Entry is one tag directory record: a section's absolute byte range
// within the container.
type Entry struct {
	Name   string
	Offset int64
	Length int64
}

// Directory is the parsed tag directory of an MWM container. It holds
// only the name/offset/length triples — the bytes of each section are
// fetched on demand via Section.
type Directory struct {
	entries map[string]Entry
}

// ParseDirectory reads the 8-byte little-endian directory pointer at
// offset 0, then parses the varuint-prefixed list of name/offset/length
// entries it points to. An empty container (count == 0) parses to a
// Directory with no entries rather than an error.
func ParseDirectory(src Source) (*Directory, error) {
	var head [8]byte
	if _, err := src.ReadAt(head[:], 0); err != nil {
		return nil, fmt.Errorf("mwm: read directory pointer: %w", err)
	}

	dirOffset := int64(endian.GetLittleEndianEngine().Uint64(head[:])) //nolint:gosec

	tail := src.Size() - dirOffset
	if tail < 0 {
		return nil, fmt.Errorf("mwm: directory offset %d past end of file: %w", dirOffset, errs.ErrUnknownTag)
	}

	buf := make([]byte, tail)
	if tail > 0 {
		if _, err := src.ReadAt(buf, dirOffset); err != nil {
			return nil, fmt.Errorf("mwm: read tag directory at offset %d: %w", dirOffset, err)
		}
	}

	c := varint.NewCursor(buf)
	count := c.Varuint()

	entries := make(map[string]Entry, count)
	for i := uint64(0); i < count; i++ {
		name, err := c.ReadString(true)
		if err != nil {
			return nil, fmt.Errorf("mwm: read tag directory entry %d name: %w", i, err)
		}

		offset := c.Varuint()
		length := c.Varuint()
		entries[name] = Entry{Name: name, Offset: int64(offset), Length: int64(length)} //nolint:gosec
	}

	return &Directory{entries: entries}, nil
}

// HasTag reports whether tag is present in the directory with a non-zero
// length: a present-but-empty section counts as absent.
func (d *Directory) HasTag(tag string) bool {
	e, ok := d.entries[tag]
	return ok && e.Length > 0
}

// Entry returns the raw directory record for tag.
func (d *Directory) Entry(tag string) (Entry, bool) {
	e, ok := d.entries[tag]
	return e, ok
}

// Tags returns the directory's tag names in a stable, sorted order.
func (d *Directory) Tags() []string {
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Section returns an independently-bounded copy of tag's bytes, read
// directly from [offset, offset+length) in src. Every call returns a
// fresh slice, so two concurrent readers of different tags — or repeated
// reads of the same tag — never share or corrupt a cursor.
func (d *Directory) Section(src Source, tag string) ([]byte, error) {
	e, ok := d.entries[tag]
	if !ok {
		return nil, fmt.Errorf("mwm: section %q: %w", tag, errs.ErrUnknownTag)
	}

	buf := make([]byte, e.Length)
	if e.Length == 0 {
		return buf, nil
	}

	if _, err := src.ReadAt(buf, e.Offset); err != nil {
		return nil, fmt.Errorf("mwm: read section %q at offset %d: %w", tag, e.Offset, err)
	}

	return buf, nil
}
