// Package errs defines the sentinel and typed errors the rest of the
// module returns.
//
// mebo's blob/section/encoding packages lean on sentinel vars declared
// in an errs package (e.g. errs.ErrInvalidHeaderSize, referenced throughout
// blob/numeric_decoder.go) for the common case, and a handful of pack
// repos reach for a typed struct instead when the error needs to carry
// data a caller might want to inspect (beetlebugorg-s57's
// internal/parser/errors.go ErrMissingSpatialRecord{FeatureID, SpatialID}).
// This package follows the same split: four sentinels for conditions
// that need no context beyond "which check failed", and one typed struct
// for the one error a caller plausibly wants to inspect programmatically.
package errs

import "fmt"

// ErrUnsupportedWidth is returned when a fixed-width integer read is
// requested with a byte width outside {1, 2, 4, 8}.
var ErrUnsupportedWidth = fmt.Errorf("mwm: unsupported fixed-width read size")

// ErrHeaderNotRead is returned by coordinate projection when coord_size
// has not yet been established by a header read.
var ErrHeaderNotRead = fmt.Errorf("mwm: coordinate size unknown, read the header section first")

// ErrUnknownTag is returned by section.Directory.Section when the
// requested tag is not present in the directory; section.ParseDirectory
// also wraps it when the directory pointer lies past the end of the file.
var ErrUnknownTag = fmt.Errorf("mwm: unknown tag")

// ErrInvalidOSMType is returned by osmid.Pack when asked to pack a Type
// other than node, way, or relation.
var ErrInvalidOSMType = fmt.Errorf("mwm: invalid OSM object type")

// OverreadError reports that a dat feature's parsed fields consumed more
// bytes than the feature declared up front. It carries enough context for
// a caller to log or recover from a single malformed feature without
// losing track of where parsing deviated from the wire format.
type OverreadError struct {
	// FeatureID is the dense, stream-order id of the offending feature.
	FeatureID int
	// Declared is the feature_size the feature declared.
	Declared int
	// Consumed is the number of bytes the parser actually read.
	Consumed int
}

func (e *OverreadError) Error() string {
	return fmt.Sprintf("mwm: feature %d overread: declared %d bytes, consumed %d",
		e.FeatureID, e.Declared, e.Consumed)
}
