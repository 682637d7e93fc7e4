package reader

import (
	"fmt"

	"github.com/mwmreader/mwm/errs"
	"github.com/mwmreader/mwm/varint"
)

// InNode is one ingoing cross-mwm routing node: a node id plus its
// unpacked coordinate.
type InNode struct {
	NodeID uint32
	Lon    float64
	Lat    float64
}

// OutNode is one outgoing cross-mwm routing node; OutIndex indexes into
// CrossMWM.Neighbours to name the adjacent map this route leads into.
type OutNode struct {
	NodeID   uint32
	Lon      float64
	Lat      float64
	OutIndex uint8
}

// CrossMWM is the parsed 'chrysler' section: a small adjacency table
// connecting this map's border nodes to its neighbours for cross-border
// routing.
type CrossMWM struct {
	In         []InNode
	Out        []OutNode
	Matrix     [][]uint32 // Matrix[i][j] is the cost from In[i] to Out[j]
	Neighbours []string
}

// ReadCrossMWM parses the 'chrysler' section. ReadHeader must be called
// first since every node coordinate here is decoded through the
// established projection. A container without the tag returns a zero
// CrossMWM.
//
// Grounded on original_source/mwm/mwm.py's read_crossmwm: fixed 4-byte
// counts framing three flat arrays (in, out, neighbours) plus a row-major
// in×out cost matrix.
func (r *Reader) ReadCrossMWM() (CrossMWM, error) {
	if !r.dir.HasTag("chrysler") {
		return CrossMWM{}, nil
	}

	c, err := r.section("chrysler")
	if err != nil {
		return CrossMWM{}, err
	}

	inCount, err := c.Uint(4)
	if err != nil {
		return CrossMWM{}, fmt.Errorf("mwm: read chrysler in-node count: %w", err)
	}

	in := make([]InNode, inCount)
	for i := range in {
		nodeID, err := c.Uint(4)
		if err != nil {
			return CrossMWM{}, fmt.Errorf("mwm: read chrysler in-node %d id: %w", i, err)
		}
		lon, lat, err := r.readUnpackedCoord(c)
		if err != nil {
			return CrossMWM{}, fmt.Errorf("mwm: read chrysler in-node %d coord: %w", i, err)
		}
		in[i] = InNode{NodeID: uint32(nodeID), Lon: lon, Lat: lat} //nolint:gosec
	}

	outCount, err := c.Uint(4)
	if err != nil {
		return CrossMWM{}, fmt.Errorf("mwm: read chrysler out-node count: %w", err)
	}

	out := make([]OutNode, outCount)
	for i := range out {
		nodeID, err := c.Uint(4)
		if err != nil {
			return CrossMWM{}, fmt.Errorf("mwm: read chrysler out-node %d id: %w", i, err)
		}
		lon, lat, err := r.readUnpackedCoord(c)
		if err != nil {
			return CrossMWM{}, fmt.Errorf("mwm: read chrysler out-node %d coord: %w", i, err)
		}
		outIdx, err := c.Uint(1)
		if err != nil {
			return CrossMWM{}, fmt.Errorf("mwm: read chrysler out-node %d neighbour index: %w", i, err)
		}
		out[i] = OutNode{NodeID: uint32(nodeID), Lon: lon, Lat: lat, OutIndex: uint8(outIdx)} //nolint:gosec
	}

	matrix := make([][]uint32, inCount)
	for i := range matrix {
		row := make([]uint32, outCount)
		for j := range row {
			cost, err := c.Uint(4)
			if err != nil {
				return CrossMWM{}, fmt.Errorf("mwm: read chrysler matrix[%d][%d]: %w", i, j, err)
			}
			row[j] = uint32(cost) //nolint:gosec
		}
		matrix[i] = row
	}

	neighbourCount, err := c.Uint(4)
	if err != nil {
		return CrossMWM{}, fmt.Errorf("mwm: read chrysler neighbour count: %w", err)
	}

	neighbours := make([]string, neighbourCount)
	for i := range neighbours {
		size, err := c.Uint(4)
		if err != nil {
			return CrossMWM{}, fmt.Errorf("mwm: read chrysler neighbour %d name size: %w", i, err)
		}
		name, err := c.ReadRaw(int(size)) //nolint:gosec
		if err != nil {
			return CrossMWM{}, fmt.Errorf("mwm: read chrysler neighbour %d name: %w", i, err)
		}
		neighbours[i] = string(name)
	}

	return CrossMWM{In: in, Out: out, Matrix: matrix, Neighbours: neighbours}, nil
}

// readUnpackedCoord reads one point in the fixed-8-byte ("unpacked")
// flavor, decoded as a delta from the header's base point, then projected
// to WGS-84.
func (r *Reader) readUnpackedCoord(c *varint.Cursor) (lon, lat float64, err error) {
	if !r.haveBase {
		return 0, 0, errs.ErrHeaderNotRead
	}

	x, y, err := c.ReadPoint(r.baseX, r.baseY, false)
	if err != nil {
		return 0, 0, err
	}

	return r.proj.ToWGS84(x, y)
}
