// Package filedev implements a flash device backed by a single image
// file of the host filesystem: area i occupies the byte range
// [i*areaSize, (i+1)*areaSize). A fresh image is created pre-erased.
package filedev

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/flashfs-dev/flashfs/pkg/flash"
)

// Device is a flash.Device stored in a host file.
type Device struct {
	file *os.File

	areaCount uint8
	areaSize  uint32
}

// ErasedByte is the value every byte of an erased area holds.
const ErasedByte = 0xff

// Open opens (or creates) the image at the given path with the given
// geometry. A newly created image is filled with the erased pattern.
// Opening an existing image of a different size fails.
func Open(path string, perm fs.FileMode, areaCount uint8, areaSize uint32) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, perm)
	if err != nil {
		return nil, fmt.Errorf("open flash image: %w", err)
	}

	d := &Device{
		file:      f,
		areaCount: areaCount,
		areaSize:  areaSize,
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat flash image: %w", err)
	}

	want := int64(areaCount) * int64(areaSize)

	switch fi.Size() {
	case 0:
		if err := d.eraseAll(); err != nil {
			f.Close()
			return nil, err
		}
	case want:
	default:
		f.Close()
		return nil, fmt.Errorf("flash image %s has size %d, want %d", path, fi.Size(), want)
	}

	return d, nil
}

// Read implements flash.Device.
func (d *Device) Read(area uint8, off uint32, buf []byte) error {
	if err := d.checkRange(area, off, uint32(len(buf))); err != nil {
		return err
	}

	if _, err := d.file.ReadAt(buf, d.pos(area, off)); err != nil {
		return fmt.Errorf("%w: %v", flash.ErrIO, err)
	}

	return nil
}

// Write implements flash.Device.
func (d *Device) Write(area uint8, off uint32, data []byte) error {
	if err := d.checkRange(area, off, uint32(len(data))); err != nil {
		return err
	}

	if _, err := d.file.WriteAt(data, d.pos(area, off)); err != nil {
		return fmt.Errorf("%w: %v", flash.ErrIO, err)
	}

	return nil
}

// AreaCount implements flash.Device.
func (d *Device) AreaCount() uint8 {
	return d.areaCount
}

// AreaSize implements flash.Device.
func (d *Device) AreaSize(area uint8) uint32 {
	if area >= d.areaCount {
		return 0
	}

	return d.areaSize
}

// Erase resets every byte of the area to the erased pattern.
func (d *Device) Erase(area uint8) error {
	if area >= d.areaCount {
		return fmt.Errorf("%w: area %d of %d", flash.ErrOutOfBounds, area, d.areaCount)
	}

	blank := erasedBlock(d.areaSize)

	if _, err := d.file.WriteAt(blank, d.pos(area, 0)); err != nil {
		return fmt.Errorf("%w: %v", flash.ErrIO, err)
	}

	return nil
}

// Sync flushes the image to stable storage.
func (d *Device) Sync() error {
	if err := d.file.Sync(); err != nil {
		return fmt.Errorf("%w: %v", flash.ErrIO, err)
	}

	return nil
}

// Close closes the underlying image file.
func (d *Device) Close() error {
	return d.file.Close()
}

func (d *Device) eraseAll() error {
	for i := uint8(0); i < d.areaCount; i++ {
		if err := d.Erase(i); err != nil {
			return err
		}
	}

	return nil
}

func (d *Device) pos(area uint8, off uint32) int64 {
	return int64(area)*int64(d.areaSize) + int64(off)
}

func (d *Device) checkRange(area uint8, off, ln uint32) error {
	if area >= d.areaCount {
		return fmt.Errorf("%w: area %d of %d", flash.ErrOutOfBounds, area, d.areaCount)
	}

	if uint64(off)+uint64(ln) > uint64(d.areaSize) {
		return fmt.Errorf("%w: range [%d:%d] in area %d of size %d",
			flash.ErrOutOfBounds, off, off+ln, area, d.areaSize)
	}

	return nil
}

func erasedBlock(sz uint32) []byte {
	b := make([]byte, sz)
	for i := range b {
		b[i] = ErasedByte
	}

	return b
}
