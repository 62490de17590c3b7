// Package alloc defines the space placement contract of the block
// layer and its reference implementation. Placement policy is kept
// behind a narrow interface so that wear-leveling or GC-aware
// allocators can be swapped in without touching the block layer.
package alloc

import "errors"

// Allocator reserves contiguous erased flash ranges for new records.
type Allocator interface {
	// Reserve returns the placement of n contiguous, erased, writable
	// bytes within a single area. Returns an error wrapping ErrNoSpace
	// when no area can fit the request; the block layer propagates it
	// verbatim and never retries.
	Reserve(n uint32) (area uint8, off uint32, err error)
}

// ErrNoSpace MUST be returned by Allocator implementations when no
// area has enough erased space left for the request.
var ErrNoSpace = errors.New("no free space")
