package meta

import (
	"encoding/binary"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/flashfs-dev/flashfs/pkg/core/object"
	"github.com/flashfs-dev/flashfs/pkg/flash"
)

// ErrNotFound is returned when the requested object has no record in
// the snapshot.
var ErrNotFound = errors.New("object not found in meta snapshot")

// PutBlock records the flash location of a block.
func (db *DB) PutBlock(id object.ID, loc flash.Loc) error {
	return db.boltDB.Batch(func(tx *bbolt.Tx) error {
		return tx.Bucket(blocksBucketName).Put(idKey(id), locValue(loc))
	})
}

// DeleteBlock drops the block's record. Unknown ids are ignored.
func (db *DB) DeleteBlock(id object.ID) error {
	return db.boltDB.Batch(func(tx *bbolt.Tx) error {
		return tx.Bucket(blocksBucketName).Delete(idKey(id))
	})
}

// Loc returns the recorded flash location of the block.
//
// Returns ErrNotFound if the block is not in the snapshot.
func (db *DB) Loc(id object.ID) (flash.Loc, error) {
	var loc flash.Loc

	err := db.boltDB.View(func(tx *bbolt.Tx) error {
		val := tx.Bucket(blocksBucketName).Get(idKey(id))
		if val == nil {
			return fmt.Errorf("%w: block %s", ErrNotFound, id)
		}

		loc = flash.Loc(binary.BigEndian.Uint64(val))

		return nil
	})

	return loc, err
}

// IterateBlocks calls f for every recorded block in unspecified
// order. Iteration stops at the first error of f and propagates it.
func (db *DB) IterateBlocks(f func(object.ID, flash.Loc) error) error {
	return db.boltDB.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(blocksBucketName).ForEach(func(k, v []byte) error {
			return f(object.ID(binary.BigEndian.Uint32(k)), flash.Loc(binary.BigEndian.Uint64(v)))
		})
	})
}

func idKey(id object.ID) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(id))

	return buf
}

func locValue(loc flash.Loc) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(loc))

	return buf
}
