package flash

import "fmt"

// Loc packs an 8-bit area index and a 32-bit byte offset into a single
// value. It is the universal handle identifying where a record resides
// on flash, passed between the block layer and the object index.
type Loc uint64

// NewLoc packs area index and in-area byte offset into Loc.
func NewLoc(area uint8, off uint32) Loc {
	return Loc(uint64(area)<<32 | uint64(off))
}

// Area returns the area index component.
func (x Loc) Area() uint8 {
	return uint8(x >> 32)
}

// Offset returns the in-area byte offset component.
func (x Loc) Offset() uint32 {
	return uint32(x)
}

// String implements fmt.Stringer.
func (x Loc) String() string {
	return fmt.Sprintf("%d:%d", x.Area(), x.Offset())
}
