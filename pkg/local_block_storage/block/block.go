package block

import (
	"github.com/flashfs-dev/flashfs/pkg/core/object"
	"github.com/flashfs-dev/flashfs/pkg/flash"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/inode"
)

// Block is the in-memory projection of a block record. It never holds
// the payload, only metadata and links; the payload is re-read from
// flash on demand (see Blocks.ReadData).
//
// Both links are non-owning back-references: the projection neither
// owns its inode nor its predecessor, it only identifies them. A
// projection built in unlinked mode leaves both nil regardless of the
// record's id fields.
type Block struct {
	id object.ID

	seq uint32

	dataLen uint32

	loc flash.Loc

	ino *inode.Inode

	prev *Entry
}

// Object returns the block's identifier.
func (b *Block) Object() object.ID {
	return b.id
}

// Seq returns the block's write-sequence number.
func (b *Block) Seq() uint32 {
	return b.seq
}

// DataLen returns the stored payload length in bytes.
func (b *Block) DataLen() uint32 {
	return b.dataLen
}

// Loc returns the flash location of the block's record header.
func (b *Block) Loc() flash.Loc {
	return b.loc
}

// Inode returns the owning inode, nil if the projection was built in
// unlinked mode.
func (b *Block) Inode() *inode.Inode {
	return b.ino
}

// Prev returns the indexed handle of the predecessor block. Nil means
// the block heads its chain, or the projection was built in unlinked
// mode.
func (b *Block) Prev() *Entry {
	return b.prev
}

// ToDisk encodes the projection back into the disk header shape. It
// is used when relocating a record, e.g. by the garbage collector
// moving live blocks out of an area being reclaimed.
//
// The projection must carry its inode reference: a block may never be
// persisted without a known owning file. Violation is a caller
// contract break and panics.
func (b *Block) ToDisk() DiskBlock {
	if b.ino == nil {
		panic("encoding block " + b.id.String() + " without inode reference")
	}

	d := DiskBlock{
		Magic:   Magic,
		ID:      b.id,
		Seq:     b.seq,
		Inode:   b.ino.Object(),
		Prev:    object.IDNone,
		DataLen: b.dataLen,
	}

	if b.prev != nil {
		d.Prev = b.prev.Object()
	}

	return d
}
