package meta

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/flashfs-dev/flashfs/pkg/core/object"
)

// PutInode records the inode's tail: the id of its newest block,
// object.IDNone for an empty file.
func (db *DB) PutInode(id, tail object.ID) error {
	return db.boltDB.Batch(func(tx *bbolt.Tx) error {
		return tx.Bucket(inodesBucketName).Put(idKey(id), idKey(tail))
	})
}

// DeleteInode drops the inode's record. Unknown ids are ignored.
func (db *DB) DeleteInode(id object.ID) error {
	return db.boltDB.Batch(func(tx *bbolt.Tx) error {
		return tx.Bucket(inodesBucketName).Delete(idKey(id))
	})
}

// Tail returns the recorded tail of the inode.
//
// Returns ErrNotFound if the inode is not in the snapshot.
func (db *DB) Tail(id object.ID) (object.ID, error) {
	tail := object.IDNone

	err := db.boltDB.View(func(tx *bbolt.Tx) error {
		val := tx.Bucket(inodesBucketName).Get(idKey(id))
		if val == nil {
			return fmt.Errorf("%w: inode %s", ErrNotFound, id)
		}

		tail = object.ID(binary.BigEndian.Uint32(val))

		return nil
	})

	return tail, err
}

// IterateInodes calls f for every recorded inode in unspecified
// order. Iteration stops at the first error of f and propagates it.
func (db *DB) IterateInodes(f func(id, tail object.ID) error) error {
	return db.boltDB.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(inodesBucketName).ForEach(func(k, v []byte) error {
			return f(object.ID(binary.BigEndian.Uint32(k)), object.ID(binary.BigEndian.Uint32(v)))
		})
	})
}
