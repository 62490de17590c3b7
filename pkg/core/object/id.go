package object

import "strconv"

// ID is a 32-bit identifier of a stored object: either an inode or a
// data block. The id space is partitioned by the most significant bit:
// inode ids have it clear, block ids have it set. This lets recovery
// code classify any id found on flash without extra context.
type ID uint32

// IDNone is the reserved sentinel meaning "no object". It is used as
// the previous-block reference of a chain head and as an empty inode
// tail. IDNone is neither an inode id nor a block id.
const IDNone = ID(0xffffffff)

// blockIDBit marks block ids within the shared id space.
const blockIDBit = ID(0x80000000)

// IsNone checks if id is the IDNone sentinel.
func (x ID) IsNone() bool {
	return x == IDNone
}

// IsBlock checks if id designates a data block.
func (x ID) IsBlock() bool {
	return !x.IsNone() && x&blockIDBit != 0
}

// IsInode checks if id designates an inode.
func (x ID) IsInode() bool {
	return !x.IsNone() && x&blockIDBit == 0
}

// String implements fmt.Stringer.
func (x ID) String() string {
	if x.IsNone() {
		return "<none>"
	}

	return "0x" + strconv.FormatUint(uint64(x), 16)
}
