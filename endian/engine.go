// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
//
// # Basic Usage
//
// MWM containers are little-endian only: all fixed-width multi-byte
// integers in the tag directory and section headers use
// GetLittleEndianEngine(). The engine seam stays a parameter rather than a
// hardcoded call so the codec primitives in the varint package aren't
// tied directly to binary.LittleEndian:
//
//	import "github.com/mwmreader/mwm/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	x := engine.Uint32(data[0:4])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine the format uses
// for every fixed-width field it defines.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
