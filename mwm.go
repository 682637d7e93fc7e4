// Package mwm provides a read-only decoder for the MWM binary map
// container format used by offline map data (MAPS.ME-style .mwm files): a
// tagged-section container holding a coordinate-projected header, region
// metadata, per-feature geometry/names/types, feature metadata, and a
// cross-map routing table.
//
// # Basic usage
//
//	r, err := mwm.Open("path/to/file.mwm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	header, err := r.ReadHeader()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for feature, err := range r.IterFeatures(true) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(feature.Header.Types, feature.Geometry)
//	}
//
// # Package structure
//
// This package re-exports the reader package's entry points for the
// common case of opening a file by path. For in-memory sources, section
// directory inspection, or individually invoking section readers, use the
// reader package directly.
package mwm

import "github.com/mwmreader/mwm/reader"

// Reader parses one MWM container.
type Reader = reader.Reader

// Option configures a Reader opened via Open.
type Option = reader.Option

// Header is the parsed 'header' section.
type Header = reader.Header

// Version is the parsed 'version' section.
type Version = reader.Version

// RegionInfo is the parsed 'rgninfo' section.
type RegionInfo = reader.RegionInfo

// Metadata is one feature's decoded metaidx/meta record.
type Metadata = reader.Metadata

// CrossMWM is the parsed 'chrysler' cross-map routing section.
type CrossMWM = reader.CrossMWM

// Feature is one decoded record from the 'dat' section.
type Feature = reader.Feature

// WithTypesPath configures the mapcss types.txt used to resolve a
// feature's per-type varuint ids to names.
func WithTypesPath(path string) Option {
	return reader.WithTypesPath(path)
}

// Open opens path as an MWM container and parses its tag directory.
func Open(path string, opts ...Option) (*Reader, error) {
	return reader.Open(path, opts...)
}
