package block_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flashfs-dev/flashfs/pkg/core/object"
	"github.com/flashfs-dev/flashfs/pkg/flash/memdev"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/alloc"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/block"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/index"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/inode"
)

type testEnv struct {
	dev *memdev.Device

	idx *index.Index

	blocks *block.Blocks
}

func newEnv(t *testing.T, areas uint8, areaSize uint32, opts ...block.Option) *testEnv {
	t.Helper()

	dev := memdev.New(areas, areaSize)
	idx := index.New()

	return &testEnv{
		dev:    dev,
		idx:    idx,
		blocks: block.New(dev, alloc.NewSequential(dev), idx, opts...),
	}
}

func (e *testEnv) newInode(t *testing.T, id object.ID) *inode.Inode {
	t.Helper()

	ino := inode.New(id)
	e.idx.Put(ino)

	return ino
}

// writeBlock appends a block to the inode's chain the way the write
// path's caller would: record goes to flash, the entry into the
// index, the tail forward.
func (e *testEnv) writeBlock(t *testing.T, ino *inode.Inode, id object.ID, seq uint32, data []byte) *block.Entry {
	t.Helper()

	prev := object.IDNone
	if last, ok := ino.LastBlock(); ok {
		prev = last
	}

	hdr := block.DiskBlock{
		ID:    id,
		Seq:   seq,
		Inode: ino.Object(),
		Prev:  prev,
	}

	loc, err := e.blocks.WriteDisk(&hdr, data)
	require.NoError(t, err)

	entry := block.NewEntry(id, loc)
	e.idx.Put(entry)
	ino.SetLastBlock(id)

	return entry
}
