package section

import (
	"bytes"
	"io"
)

// Source is the minimal random-access byte source a Directory reads from:
// an MWM file opened with os.Open satisfies it directly, and tests can
// back it with a bytes.Reader plus a fixed Size().
type Source interface {
	io.ReaderAt
	Size() int64
}

// BytesSource adapts an in-memory byte slice to Source, for tests and for
// small sidecar files (osm2ft) that are cheap to load wholesale.
type BytesSource struct {
	r *bytes.Reader
}

// NewBytesSource wraps buf as a Source.
func NewBytesSource(buf []byte) *BytesSource {
	return &BytesSource{r: bytes.NewReader(buf)}
}

func (b *BytesSource) ReadAt(p []byte, off int64) (int, error) { return b.r.ReadAt(p, off) }
func (b *BytesSource) Size() int64                             { return b.r.Size() }
