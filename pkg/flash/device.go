// Package flash provides the raw flash access contract of the block
// layer: a device is a set of independently erasable areas supporting
// sequential programming of erased bytes, but no in-place rewrites.
package flash

import "errors"

// Device represents raw flash split into erasable areas.
//
// Read and Write operate within a single area. Implementations do not
// enforce program-once semantics; honoring the append-only discipline
// is the writer's responsibility.
type Device interface {
	// Read fills buf with the bytes stored at the given offset of the
	// given area. Returns an error wrapping ErrIO on media failure and
	// ErrOutOfBounds if the requested range leaves the area.
	Read(area uint8, off uint32, buf []byte) error

	// Write programs data at the given offset of the given area.
	// Error contract matches Read.
	Write(area uint8, off uint32, data []byte) error

	// AreaCount returns the number of areas the device is split into.
	AreaCount() uint8

	// AreaSize returns the byte capacity of the given area.
	AreaSize(area uint8) uint32
}

// ErrIO is returned (wrapped) by Device implementations on any
// hardware/media failure. Callers never retry on it.
var ErrIO = errors.New("flash i/o failure")

// ErrOutOfBounds is returned (wrapped) by Device implementations when
// a requested range does not fit the addressed area.
var ErrOutOfBounds = errors.New("access out of area bounds")
