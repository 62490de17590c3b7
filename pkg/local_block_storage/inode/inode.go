// Package inode holds the part of the inode entry the block layer
// depends on: the object id and the mutable tail reference naming the
// file's newest block. Directory and attribute semantics live outside
// the block layer and are not represented here.
package inode

import "github.com/flashfs-dev/flashfs/pkg/core/object"

// Inode is the in-memory inode entry. It implements index.Entry.
type Inode struct {
	id object.ID

	// id of the newest block of the chain, object.IDNone when the
	// file has no content
	lastBlock object.ID
}

// New creates an inode entry with an empty chain.
func New(id object.ID) *Inode {
	return &Inode{
		id:        id,
		lastBlock: object.IDNone,
	}
}

// Object returns the inode's identifier.
func (i *Inode) Object() object.ID {
	return i.id
}

// LastBlock returns the id of the chain's newest block. The second
// value is false when the file is empty.
func (i *Inode) LastBlock() (object.ID, bool) {
	return i.lastBlock, !i.lastBlock.IsNone()
}

// SetLastBlock moves the tail reference to the given block id.
func (i *Inode) SetLastBlock(id object.ID) {
	i.lastBlock = id
}

// ResetLastBlock marks the file empty.
func (i *Inode) ResetLastBlock() {
	i.lastBlock = object.IDNone
}
