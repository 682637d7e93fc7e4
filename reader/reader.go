package reader

import (
	"fmt"
	"io"

	"github.com/mwmreader/mwm/section"
	"github.com/mwmreader/mwm/varint"
)

// Reader parses one MWM container: its tag directory plus whatever
// section readers have been invoked so far. ReadHeader must be called
// before any coordinate-bearing section (ReadCrossMWM, IterFeatures with
// point geometry) — it establishes the projection and base point every
// delta-coded point is resolved against.
type Reader struct {
	src    section.Source
	dir    *section.Directory
	closer io.Closer

	typeMapping []string

	proj     varint.Projection
	baseX    int64
	baseY    int64
	haveBase bool
}

// Open opens path as an MWM container and parses its tag directory.
func Open(path string, opts ...Option) (*Reader, error) {
	src, err := openFileSource(path)
	if err != nil {
		return nil, err
	}

	r, err := newReader(src, opts...)
	if err != nil {
		_ = src.Close()
		return nil, err
	}

	r.closer = src
	return r, nil
}

// New wraps an already-open section.Source (e.g. for in-memory tests)
// as a Reader. The caller owns src's lifetime; Close is a no-op.
func New(src section.Source, opts ...Option) (*Reader, error) {
	return newReader(src, opts...)
}

func newReader(src section.Source, opts ...Option) (*Reader, error) {
	dir, err := section.ParseDirectory(src)
	if err != nil {
		return nil, err
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Reader{src: src, dir: dir}

	if cfg.typesPath != "" {
		types, err := ReadTypes(cfg.typesPath)
		if err != nil {
			return nil, err
		}
		r.typeMapping = types
	}

	return r, nil
}

// Close releases the underlying file, if Reader opened one itself.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Tags returns the container's tag names in sorted order.
func (r *Reader) Tags() []string { return r.dir.Tags() }

// HasTag reports whether tag is present with non-zero length.
func (r *Reader) HasTag(tag string) bool { return r.dir.HasTag(tag) }

func (r *Reader) section(tag string) (*varint.Cursor, error) {
	buf, err := r.dir.Section(r.src, tag)
	if err != nil {
		return nil, fmt.Errorf("mwm: read %q section: %w", tag, err)
	}
	return varint.NewCursor(buf), nil
}
