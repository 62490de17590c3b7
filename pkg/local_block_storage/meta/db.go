// Package meta implements a durable snapshot of the object index on
// BoltDB. The snapshot maps block ids to their flash locations and
// inode ids to their tails; a mount that finds it intact can skip the
// full area scan. Flash itself stays the source of truth: the
// snapshot is advisory and is rebuilt from a scan whenever in doubt.
package meta

import (
	"io/fs"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// DB represents the block layer's meta snapshot.
type DB struct {
	*cfg

	boltDB *bbolt.DB
}

// Option is an option of DB's constructor.
type Option func(*cfg)

type cfg struct {
	path string

	perm fs.FileMode

	boltOptions *bbolt.Options

	log *zap.Logger
}

func defaultCfg() *cfg {
	return &cfg{
		perm: 0o640,
		boltOptions: &bbolt.Options{
			Timeout: 100 * time.Millisecond,
		},
		log: zap.L(),
	}
}

// New creates and returns new DB instance.
func New(opts ...Option) *DB {
	c := defaultCfg()

	for i := range opts {
		opts[i](c)
	}

	return &DB{
		cfg: c,
	}
}

// WithPath returns option to set system path to the snapshot file.
func WithPath(path string) Option {
	return func(c *cfg) {
		c.path = path
	}
}

// WithPermissions returns option to specify permission bits of the
// snapshot file.
func WithPermissions(perm fs.FileMode) Option {
	return func(c *cfg) {
		c.perm = perm
	}
}

// WithBoltOptions returns option to override BoltDB options.
func WithBoltOptions(o *bbolt.Options) Option {
	return func(c *cfg) {
		c.boltOptions = o
	}
}

// WithLogger returns option to specify DB's logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l.With(zap.String("component", "MetaDB"))
	}
}
