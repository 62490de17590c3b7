package meta

import (
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	blocksBucketName = []byte("blocks")
	inodesBucketName = []byte("inodes")
)

// Open opens the BoltDB instance backing the snapshot.
func (db *DB) Open(readOnly bool) error {
	opts := *db.boltOptions
	opts.ReadOnly = readOnly

	var err error

	db.boltDB, err = bbolt.Open(db.path, db.perm, &opts)
	if err != nil {
		return fmt.Errorf("open boltDB instance: %w", err)
	}

	db.log.Debug("opened boltDB instance for meta snapshot")

	return nil
}

// Init creates the static buckets. Does nothing on an already
// initialized snapshot.
func (db *DB) Init() error {
	return db.boltDB.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{blocksBucketName, inodesBucketName} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create static bucket %s: %w", name, err)
			}
		}

		return nil
	})
}

// Reset drops all snapshot content, keeping the static buckets.
func (db *DB) Reset() error {
	return db.boltDB.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{blocksBucketName, inodesBucketName} {
			if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
				return err
			}

			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}

		return nil
	})
}

// Close closes the BoltDB instance.
func (db *DB) Close() error {
	if db.boltDB == nil {
		return nil
	}

	return db.boltDB.Close()
}
