package block

import (
	"fmt"

	"github.com/flashfs-dev/flashfs/pkg/flash"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/inode"
)

// fromDiskShallow builds the unlinked projection of a disk header:
// inode and predecessor references are left unresolved regardless of
// the header's id fields.
func fromDiskShallow(hdr DiskBlock, loc flash.Loc) *Block {
	return &Block{
		id:      hdr.ID,
		seq:     hdr.Seq,
		dataLen: hdr.DataLen,
		loc:     loc,
	}
}

// fromDisk builds the fully linked projection of a disk header,
// resolving the owning inode and the predecessor block through the
// object index.
func (b *Blocks) fromDisk(hdr DiskBlock, loc flash.Loc) (*Block, error) {
	blk := fromDiskShallow(hdr, loc)

	ino, ok := b.idx.Get(hdr.Inode).(*inode.Inode)
	if !ok {
		return nil, fmt.Errorf("%w: block %s refers to unknown inode %s", ErrCorrupt, hdr.ID, hdr.Inode)
	}

	blk.ino = ino

	if !hdr.Prev.IsNone() {
		prev, ok := b.idx.Get(hdr.Prev).(*Entry)
		if !ok {
			return nil, fmt.Errorf("%w: block %s refers to unknown predecessor %s", ErrCorrupt, hdr.ID, hdr.Prev)
		}

		blk.prev = prev
	}

	return blk, nil
}

// FromEntryShallow constructs the unlinked block projection for the
// given index handle: the record header is re-read from flash, the
// inode and predecessor references stay unresolved.
//
// It is used while the in-memory representation is still being
// bootstrapped, e.g. during the first pass of a flash scan when
// referenced objects may not be indexed yet. It never fails due to a
// missing inode or predecessor.
func (b *Blocks) FromEntryShallow(e *Entry) (*Block, error) {
	hdr, err := b.readEntry(e)
	if err != nil {
		return nil, err
	}

	return fromDiskShallow(hdr, e.loc), nil
}

// FromEntry constructs the fully linked block projection for the
// given index handle. The record header is re-read from flash and
// both references are resolved through the object index.
//
// Returns ErrCorrupt if the owning inode, or a declared non-head
// predecessor, is not indexed: an unresolvable reference breaks the
// chain integrity the file's content reconstruction relies on.
func (b *Blocks) FromEntry(e *Entry) (*Block, error) {
	hdr, err := b.readEntry(e)
	if err != nil {
		return nil, err
	}

	blk, err := b.fromDisk(hdr, e.loc)
	if err != nil {
		return nil, err
	}

	b.metrics.addProjection()

	return blk, nil
}

func (b *Blocks) readEntry(e *Entry) (DiskBlock, error) {
	if !e.id.IsBlock() {
		panic("block projection of non-block entry " + e.id.String())
	}

	return b.ReadDisk(e.loc)
}
