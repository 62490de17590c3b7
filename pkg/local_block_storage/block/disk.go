package block

import (
	"encoding/binary"

	"github.com/flashfs-dev/flashfs/pkg/core/object"
)

// Magic marks a flash region as a valid block record header. Any
// other value at the header position means the region holds a record
// of a different kind (or garbage).
const Magic = uint32(0xb10c4afe)

// HeaderSize is the exact on-flash size of a block record header. The
// payload, if any, immediately follows it.
const HeaderSize = 24

// DiskBlock is the on-flash block record header.
//
// Layout (little-endian):
//
//	offset 0:  magic    (4 bytes)
//	offset 4:  id       (4 bytes)
//	offset 8:  seq      (4 bytes)
//	offset 12: inode id (4 bytes)
//	offset 16: prev id  (4 bytes, object.IDNone for a chain head)
//	offset 20: data len (4 bytes)
//	offset 24: payload  (data len bytes)
type DiskBlock struct {
	Magic uint32

	ID object.ID

	// write-sequence number, orders aliased ids during recovery
	Seq uint32

	Inode object.ID

	Prev object.ID

	DataLen uint32
}

// Marshal encodes the header into its fixed on-flash layout.
func (x DiskBlock) Marshal() []byte {
	buf := make([]byte, HeaderSize)

	binary.LittleEndian.PutUint32(buf[0:], x.Magic)
	binary.LittleEndian.PutUint32(buf[4:], uint32(x.ID))
	binary.LittleEndian.PutUint32(buf[8:], x.Seq)
	binary.LittleEndian.PutUint32(buf[12:], uint32(x.Inode))
	binary.LittleEndian.PutUint32(buf[16:], uint32(x.Prev))
	binary.LittleEndian.PutUint32(buf[20:], x.DataLen)

	return buf
}

// Unmarshal decodes the header from its fixed on-flash layout.
// Returns ErrUnexpected if the magic field does not match: the region
// does not hold a block record. Referential integrity of the id
// fields is not checked here; that is projection construction's job.
func (x *DiskBlock) Unmarshal(buf []byte) error {
	x.Magic = binary.LittleEndian.Uint32(buf[0:])
	if x.Magic != Magic {
		return ErrUnexpected
	}

	x.ID = object.ID(binary.LittleEndian.Uint32(buf[4:]))
	x.Seq = binary.LittleEndian.Uint32(buf[8:])
	x.Inode = object.ID(binary.LittleEndian.Uint32(buf[12:]))
	x.Prev = object.ID(binary.LittleEndian.Uint32(buf[16:]))
	x.DataLen = binary.LittleEndian.Uint32(buf[20:])

	return nil
}
