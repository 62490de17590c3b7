package block

import (
	"fmt"
)

// ReadData reads the block's payload from flash. Stored bytes are
// transparently decompressed when they carry the compression marker.
// With a data cache configured, recently read payloads are served
// from memory; the returned slice is shared then and must not be
// modified by the caller.
func (b *Blocks) ReadData(blk *Block) ([]byte, error) {
	if blk.dataLen == 0 {
		return nil, nil
	}

	if b.dataCache != nil {
		if data, ok := b.dataCache.Get(blk.loc); ok {
			return data, nil
		}
	}

	buf := make([]byte, blk.dataLen)

	if err := b.dev.Read(blk.loc.Area(), blk.loc.Offset()+HeaderSize, buf); err != nil {
		return nil, fmt.Errorf("read payload of block %s at %s: %w", blk.id, blk.loc, err)
	}

	data := buf

	if b.compressor != nil {
		var err error

		data, err = b.compressor.Decompress(buf)
		if err != nil {
			return nil, fmt.Errorf("%w: payload of block %s does not decompress: %v", ErrCorrupt, blk.id, err)
		}
	}

	if b.dataCache != nil {
		b.dataCache.Add(blk.loc, data)
	}

	b.metrics.addRead(uint64(len(data)))

	return data, nil
}
