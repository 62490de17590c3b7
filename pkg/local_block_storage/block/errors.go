package block

import "errors"

// ErrUnexpected is returned when a read region is not a block record:
// its magic field does not match. Scanners rely on it to tell block
// records from the other record kinds sharing the flash address
// space.
var ErrUnexpected = errors.New("not a block record")

// ErrCorrupt is returned when a structurally required reference of a
// block (its owning inode, or a declared non-head predecessor) cannot
// be resolved, or when a record's declared payload cannot fit the
// flash it claims to occupy. It signals a logically broken chain and
// must reach mount-time recovery, never be skipped silently.
var ErrCorrupt = errors.New("corrupted block chain")
