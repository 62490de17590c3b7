package block

import (
	"fmt"

	"go.uber.org/zap"
)

// Delete logically removes the block from the file system's RAM
// representation: if the owning inode's tail names this block, the
// tail moves to the block's predecessor (the file becomes empty when
// there is none), then the block is dropped from the object index.
// The tail is repaired before the index registration disappears, so
// no observer sees a tail naming an unindexed block.
//
// Deleting a mid-chain block leaves the tail untouched; stitching the
// chain around it is the caller's concern. Physical flash space is
// not reclaimed here.
//
// Returns ErrCorrupt (or the underlying read error) if the block's
// linked projection cannot be constructed.
func (b *Blocks) Delete(e *Entry) error {
	blk, err := b.FromEntry(e)
	if err != nil {
		return fmt.Errorf("resolve block %s for deletion: %w", e.id, err)
	}

	ino := blk.Inode()

	if last, ok := ino.LastBlock(); ok && last == e.id {
		if prev := blk.Prev(); prev != nil {
			ino.SetLastBlock(prev.Object())
		} else {
			ino.ResetLastBlock()
		}
	}

	b.idx.Remove(e.id)

	if b.dataCache != nil {
		b.dataCache.Remove(e.loc)
	}

	if b.metaDB != nil {
		if err := b.metaDB.DeleteBlock(e.id); err != nil {
			return fmt.Errorf("drop block %s from meta snapshot: %w", e.id, err)
		}
	}

	b.metrics.addDelete()

	b.log.Debug("block logically deleted",
		zap.Stringer("id", e.id),
		zap.Stringer("inode", ino.Object()),
	)

	return nil
}
