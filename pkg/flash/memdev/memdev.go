// Package memdev implements a RAM-backed flash device. It is used in
// tests and simulations: areas start in the erased state and a write
// fault can be armed to model power loss between two writes.
package memdev

import (
	"fmt"

	"github.com/flashfs-dev/flashfs/pkg/flash"
)

// Device is a flash.Device backed by byte slices, one per area.
type Device struct {
	areas [][]byte

	// remaining successful writes before the armed fault fires,
	// negative when no fault is armed
	writesLeft int
}

// ErasedByte is the value every byte of an erased area holds.
const ErasedByte = 0xff

// New allocates a device of n areas, areaSize bytes each, all erased.
func New(n uint8, areaSize uint32) *Device {
	d := &Device{
		areas:      make([][]byte, n),
		writesLeft: -1,
	}

	for i := range d.areas {
		d.areas[i] = make([]byte, areaSize)
	}

	for i := uint8(0); i < n; i++ {
		d.Erase(i)
	}

	return d
}

// Read implements flash.Device.
func (d *Device) Read(area uint8, off uint32, buf []byte) error {
	if err := d.checkRange(area, off, uint32(len(buf))); err != nil {
		return err
	}

	copy(buf, d.areas[area][off:])

	return nil
}

// Write implements flash.Device. If a write fault was armed via
// FailWrites and its budget is exhausted, Write fails with an error
// wrapping flash.ErrIO and programs nothing.
func (d *Device) Write(area uint8, off uint32, data []byte) error {
	if err := d.checkRange(area, off, uint32(len(data))); err != nil {
		return err
	}

	if d.writesLeft == 0 {
		return fmt.Errorf("%w: simulated write fault", flash.ErrIO)
	} else if d.writesLeft > 0 {
		d.writesLeft--
	}

	copy(d.areas[area][off:], data)

	return nil
}

// AreaCount implements flash.Device.
func (d *Device) AreaCount() uint8 {
	return uint8(len(d.areas))
}

// AreaSize implements flash.Device.
func (d *Device) AreaSize(area uint8) uint32 {
	if int(area) >= len(d.areas) {
		return 0
	}

	return uint32(len(d.areas[area]))
}

// Erase resets every byte of the area to ErasedByte.
func (d *Device) Erase(area uint8) {
	if int(area) >= len(d.areas) {
		return
	}

	a := d.areas[area]
	for i := range a {
		a[i] = ErasedByte
	}
}

// FailWrites arms a write fault: the next n calls to Write succeed,
// every following one fails with flash.ErrIO until DisarmFault.
func (d *Device) FailWrites(n int) {
	d.writesLeft = n
}

// DisarmFault removes the armed write fault.
func (d *Device) DisarmFault() {
	d.writesLeft = -1
}

func (d *Device) checkRange(area uint8, off, ln uint32) error {
	if int(area) >= len(d.areas) {
		return fmt.Errorf("%w: area %d of %d", flash.ErrOutOfBounds, area, len(d.areas))
	}

	if uint64(off)+uint64(ln) > uint64(len(d.areas[area])) {
		return fmt.Errorf("%w: range [%d:%d] in area %d of size %d",
			flash.ErrOutOfBounds, off, off+ln, area, len(d.areas[area]))
	}

	return nil
}
