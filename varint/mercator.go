package varint

import (
	"math"

	"github.com/mwmreader/mwm/errs"
)

// Projection carries the coord_size established by a header read.
// coordSize is the maximum representable integer
// coordinate along either axis; it sets the linear rescale from the
// integer grid into the [-180, 180] mercator square before the inverse
// Gudermannian is applied to latitude.
type Projection struct {
	coordSize float64
	known     bool
}

// NewProjection captures the header's coord_size for later ToWGS84 calls.
func NewProjection(coordSize uint64) Projection {
	return Projection{coordSize: float64(coordSize), known: true}
}

// ToWGS84 converts an integer (x, y) point in maps.me's internal mercator
// grid to (lon, lat) degrees. It returns errs.ErrHeaderNotRead if no
// coord_size has been established yet — the header section must be read
// before any coordinate in the file can be projected.
//
// Grounded on original_source/mwm/mwmfile.py's to_4326: a linear rescale
// of the integer grid into [-180, 180], followed by the inverse
// Gudermannian function on the rescaled y to recover latitude.
func (p Projection) ToWGS84(x, y int64) (lon, lat float64, err error) {
	if !p.known {
		return 0, 0, errs.ErrHeaderNotRead
	}

	const mercMin, mercMax = -180.0, 180.0

	lon = float64(x)*(mercMax-mercMin)/p.coordSize + mercMin
	merc := float64(y)*(mercMax-mercMin)/p.coordSize + mercMin
	lat = 360.0 * math.Atan(math.Tanh(merc*math.Pi/360.0)) / math.Pi
	return lon, lat, nil
}
