package varint

// ReadPoint reads one delta-coded point off the cursor and resolves it
// against (refX, refY). packed selects the varuint-encoded flavor used by
// most geometry streams; the unpacked flavor reads a fixed 8-byte little-
// endian word instead.
func (c *Cursor) ReadPoint(refX, refY int64, packed bool) (int64, int64, error) {
	if packed {
		return unpack(c.Varuint(), refX, refY, nil)
	}

	u, err := c.Uint(8)
	return unpack(u, refX, refY, err)
}

func unpack(u uint64, refX, refY int64, err error) (int64, int64, error) {
	if err != nil {
		return 0, 0, err
	}
	x, y := DecodeDeltaPoint(u, refX, refY)
	return x, y, nil
}
