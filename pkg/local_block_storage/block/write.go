package block

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/flashfs-dev/flashfs/pkg/flash"
)

// WriteDisk writes a block record to a suitable location in flash:
// space for header and payload is reserved through the allocator,
// then the header and (if non-empty) the payload are programmed as
// two ordered device writes. The payload is never visible before its
// header.
//
// When a compressor is configured the payload is compressed first and
// hdr.DataLen is updated to the stored byte count. If the header
// write succeeds and the payload write fails, the truncated record
// stays on flash as is: recovering such tails is the mount-time
// scanner's job, this layer neither rolls back nor retries.
//
// Returns the location actually used. The caller is expected to
// register the block in the object index afterwards and advance the
// inode's tail. Space exhaustion is propagated verbatim as
// alloc.ErrNoSpace.
func (b *Blocks) WriteDisk(hdr *DiskBlock, data []byte) (flash.Loc, error) {
	if b.compressor != nil {
		data = b.compressor.Compress(data)
	}

	hdr.Magic = Magic
	hdr.DataLen = uint32(len(data))

	area, off, err := b.alloc.Reserve(HeaderSize + hdr.DataLen)
	if err != nil {
		return 0, fmt.Errorf("reserve space for block %s: %w", hdr.ID, err)
	}

	loc := flash.NewLoc(area, off)

	if err := b.dev.Write(area, off, hdr.Marshal()); err != nil {
		return 0, fmt.Errorf("write block header at %s: %w", loc, err)
	}

	if hdr.DataLen > 0 {
		if err := b.dev.Write(area, off+HeaderSize, data); err != nil {
			return 0, fmt.Errorf("write block payload at %s: %w", loc, err)
		}
	}

	if b.metaDB != nil {
		if err := b.metaDB.PutBlock(hdr.ID, loc); err != nil {
			return 0, fmt.Errorf("record block %s in meta snapshot: %w", hdr.ID, err)
		}
	}

	b.metrics.addWrite(uint64(HeaderSize + hdr.DataLen))

	b.log.Debug("block record written",
		zap.Stringer("id", hdr.ID),
		zap.Stringer("loc", loc),
		zap.Uint32("data_len", hdr.DataLen),
	)

	return loc, nil
}
