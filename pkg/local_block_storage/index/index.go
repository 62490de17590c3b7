// Package index implements the object index: the id-keyed table
// resolving object identifiers to their in-memory entries. It spans
// both inodes and blocks; the id's reserved bit tells them apart.
//
// The index is a single-owner structure passed explicitly into the
// block layer. It performs no internal locking: concurrent access, if
// any, must be serialized by the caller.
package index

import "github.com/flashfs-dev/flashfs/pkg/core/object"

// Entry is an object registered in the index.
type Entry interface {
	// Object returns the identifier the entry is registered under.
	Object() object.ID
}

// Index maps object ids to their entries.
type Index struct {
	m map[object.ID]Entry
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		m: make(map[object.ID]Entry),
	}
}

// Get returns the entry registered under id, nil when there is none.
func (x *Index) Get(id object.ID) Entry {
	return x.m[id]
}

// Put registers the entry under its own id, replacing any previous
// registration.
func (x *Index) Put(e Entry) {
	x.m[e.Object()] = e
}

// Remove drops the registration of id. Removing an absent id is a
// no-op.
func (x *Index) Remove(id object.ID) {
	delete(x.m, id)
}

// Len returns the number of registered entries.
func (x *Index) Len() int {
	return len(x.m)
}

// Iterate calls f for every registered entry in unspecified order
// until f returns false.
func (x *Index) Iterate(f func(Entry) bool) {
	for _, e := range x.m {
		if !f(e) {
			return
		}
	}
}
