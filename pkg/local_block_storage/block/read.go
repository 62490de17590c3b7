package block

import (
	"fmt"

	"github.com/flashfs-dev/flashfs/pkg/flash"
)

// ReadDisk reads and validates a block record header at the given
// flash location.
//
// Returns the device error unchanged (wrapped) if the read itself
// fails. Returns ErrUnexpected if the region does not hold a block
// record. Returns ErrCorrupt if the header declares a payload that
// cannot fit between the header and the end of its area: such a
// record was truncated by a power cut between the header and payload
// writes.
func (b *Blocks) ReadDisk(loc flash.Loc) (DiskBlock, error) {
	var d DiskBlock

	buf := make([]byte, HeaderSize)

	if err := b.dev.Read(loc.Area(), loc.Offset(), buf); err != nil {
		return d, fmt.Errorf("read block header at %s: %w", loc, err)
	}

	if err := d.Unmarshal(buf); err != nil {
		return d, err
	}

	areaSize := uint64(b.dev.AreaSize(loc.Area()))
	if uint64(loc.Offset())+HeaderSize+uint64(d.DataLen) > areaSize {
		return d, fmt.Errorf("%w: record at %s declares %d payload bytes past the area end",
			ErrCorrupt, loc, d.DataLen)
	}

	return d, nil
}
