package block

import (
	"github.com/flashfs-dev/flashfs/pkg/core/object"
	"github.com/flashfs-dev/flashfs/pkg/flash"
)

// Entry is the minimal indexed handle of a block: its id and the
// flash location of its record. It is what the object index stores
// for blocks; the full projection is rebuilt from flash on demand.
//
// Entry implements index.Entry.
type Entry struct {
	id object.ID

	loc flash.Loc
}

// NewEntry creates the index handle for a written block record. The
// id must be a block id.
func NewEntry(id object.ID, loc flash.Loc) *Entry {
	if !id.IsBlock() {
		panic("block entry with non-block id " + id.String())
	}

	return &Entry{
		id:  id,
		loc: loc,
	}
}

// Object returns the block's identifier.
func (e *Entry) Object() object.ID {
	return e.id
}

// Loc returns the flash location of the block's record.
func (e *Entry) Loc() flash.Loc {
	return e.loc
}
