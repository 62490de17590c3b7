package alloc

import (
	"fmt"

	"github.com/flashfs-dev/flashfs/pkg/flash"
	"go.uber.org/atomic"
)

// Sequential is a bump allocator over the device's areas in index
// order: each area is filled front to back, moving on to the next one
// when the current area cannot fit the request. It never revisits an
// area; reclaiming space is the garbage collector's business.
type Sequential struct {
	dev flash.Device

	// next free offset per area
	marks []uint32

	reserved *atomic.Uint64
}

// NewSequential creates a Sequential allocator over the given device
// with all areas considered empty.
func NewSequential(dev flash.Device) *Sequential {
	return &Sequential{
		dev:      dev,
		marks:    make([]uint32, dev.AreaCount()),
		reserved: atomic.NewUint64(0),
	}
}

// Reserve implements Allocator.
func (a *Sequential) Reserve(n uint32) (uint8, uint32, error) {
	for i := range a.marks {
		area := uint8(i)

		free := a.dev.AreaSize(area) - a.marks[i]
		if free < n {
			continue
		}

		off := a.marks[i]
		a.marks[i] += n
		a.reserved.Add(uint64(n))

		return area, off, nil
	}

	return 0, 0, fmt.Errorf("%w: %d bytes requested", ErrNoSpace, n)
}

// Restore sets the fill watermark of an area. It is called during
// mount after scanning the area's existing records.
func (a *Sequential) Restore(area uint8, off uint32) {
	if int(area) < len(a.marks) {
		a.marks[area] = off
	}
}

// Reserved returns the total number of bytes handed out so far. Safe
// for concurrent reads.
func (a *Sequential) Reserved() uint64 {
	return a.reserved.Load()
}
