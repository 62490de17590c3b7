package block_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flashfs-dev/flashfs/pkg/core/object"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/block"
)

// Chain resolution: B1 (head) <- B2 <- B3; the linked projection of
// B3 walks back to the head through indexed handles.
func TestFromEntryChainResolution(t *testing.T) {
	e := newEnv(t, 1, 4096)
	ino := e.newInode(t, 10)

	e.writeBlock(t, ino, 0x80000001, 1, []byte("one"))
	e.writeBlock(t, ino, 0x80000002, 2, []byte("two"))
	e3 := e.writeBlock(t, ino, 0x80000003, 3, []byte("three"))

	b3, err := e.blocks.FromEntry(e3)
	require.NoError(t, err)
	require.Same(t, ino, b3.Inode())
	require.NotNil(t, b3.Prev())
	require.EqualValues(t, 0x80000002, b3.Prev().Object())

	b2, err := e.blocks.FromEntry(b3.Prev())
	require.NoError(t, err)
	require.Same(t, ino, b2.Inode())
	require.NotNil(t, b2.Prev())
	require.EqualValues(t, 0x80000001, b2.Prev().Object())

	b1, err := e.blocks.FromEntry(b2.Prev())
	require.NoError(t, err)
	require.Same(t, ino, b1.Inode())
	require.Nil(t, b1.Prev())
}

func TestFromEntryUnknownInode(t *testing.T) {
	e := newEnv(t, 1, 1024)
	ino := e.newInode(t, 10)

	entry := e.writeBlock(t, ino, 0x80000001, 1, []byte("x"))

	e.idx.Remove(ino.Object())

	_, err := e.blocks.FromEntry(entry)
	require.ErrorIs(t, err, block.ErrCorrupt)
}

func TestFromEntryUnknownPredecessor(t *testing.T) {
	e := newEnv(t, 1, 1024)
	ino := e.newInode(t, 10)

	e.writeBlock(t, ino, 0x80000001, 1, []byte("x"))
	e2 := e.writeBlock(t, ino, 0x80000002, 2, []byte("y"))

	e.idx.Remove(object.ID(0x80000001))

	_, err := e.blocks.FromEntry(e2)
	require.ErrorIs(t, err, block.ErrCorrupt)
}

// Unlinked construction defers reference resolution entirely: it
// works even when neither the inode nor the predecessor is indexed
// yet, as during the first pass of a flash scan.
func TestFromEntryShallowIgnoresMissingReferences(t *testing.T) {
	e := newEnv(t, 1, 1024)
	ino := e.newInode(t, 10)

	e.writeBlock(t, ino, 0x80000001, 1, []byte("x"))
	e2 := e.writeBlock(t, ino, 0x80000002, 2, []byte("y"))

	e.idx.Remove(ino.Object())
	e.idx.Remove(object.ID(0x80000001))

	blk, err := e.blocks.FromEntryShallow(e2)
	require.NoError(t, err)
	require.EqualValues(t, 0x80000002, blk.Object())
	require.EqualValues(t, 2, blk.Seq())
	require.Nil(t, blk.Inode())
	require.Nil(t, blk.Prev())
	require.Equal(t, e2.Loc(), blk.Loc())
}

func TestToDiskRoundTrip(t *testing.T) {
	e := newEnv(t, 1, 1024)
	ino := e.newInode(t, 10)

	e.writeBlock(t, ino, 0x80000001, 1, []byte("x"))
	e2 := e.writeBlock(t, ino, 0x80000002, 5, []byte("y"))

	blk, err := e.blocks.FromEntry(e2)
	require.NoError(t, err)

	hdr := blk.ToDisk()
	require.EqualValues(t, block.Magic, hdr.Magic)
	require.EqualValues(t, 0x80000002, hdr.ID)
	require.EqualValues(t, 5, hdr.Seq)
	require.EqualValues(t, 10, hdr.Inode)
	require.EqualValues(t, 0x80000001, hdr.Prev)
	require.EqualValues(t, 1, hdr.DataLen)
}

func TestToDiskWithoutInodePanics(t *testing.T) {
	e := newEnv(t, 1, 1024)
	ino := e.newInode(t, 10)

	entry := e.writeBlock(t, ino, 0x80000001, 1, []byte("x"))

	blk, err := e.blocks.FromEntryShallow(entry)
	require.NoError(t, err)

	require.Panics(t, func() {
		_ = blk.ToDisk()
	})
}

func TestNewEntryRejectsNonBlockID(t *testing.T) {
	require.Panics(t, func() {
		_ = block.NewEntry(10, 0)
	})
}
