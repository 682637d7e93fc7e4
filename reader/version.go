package reader

import "time"

// Version is the parsed 'version' section: the on-disk format revision,
// the raw version number, and the date it encodes.
type Version struct {
	Format  int
	Version int
	Date    time.Time
}

// ReadVersion parses the 'version' section: a 4-byte prolog, a varuint
// fmt (stored as fmt-1), and a varuint version number
// that is either a packed YYMMDD date (pre-2016-12-31) or a Unix
// timestamp, which is then renormalized back into the same YYMMDD shape.
// A container without the tag returns a zero Version.
//
// Grounded on original_source/mwm/mwm.py's read_version. The original
// renders the timestamp branch with datetime.fromtimestamp, which uses
// the host's local timezone; this reader always renders in UTC so the
// result doesn't depend on where the process runs.
func (r *Reader) ReadVersion() (Version, error) {
	if !r.dir.HasTag("version") {
		return Version{}, nil
	}

	c, err := r.section("version")
	if err != nil {
		return Version{}, err
	}

	c.Skip(4)

	fmtField := c.Varuint() + 1
	version := c.Varuint()

	var date time.Time
	if version < 161231 {
		year := 2000 + int(version)/10000
		month := time.Month(int(version) / 100 % 100)
		day := int(version) % 100
		date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	} else {
		date = time.Unix(int64(version), 0).UTC() //nolint:gosec
		version = uint64(date.Year()%100)*10000 + uint64(date.Month())*100 + uint64(date.Day()) //nolint:gosec
	}

	return Version{Format: int(fmtField), Version: int(version), Date: date}, nil //nolint:gosec
}
