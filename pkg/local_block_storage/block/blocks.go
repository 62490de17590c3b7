// Package block implements the data-block layer of the flash file
// system: the on-flash block record codec, the in-memory block
// projection with its two construction modes, and chain maintenance
// on logical deletion.
//
// A file's content is a backward-linked chain of immutable block
// records. Records are only ever appended at fresh flash locations;
// deletion is logical (removal from the object index), reclamation of
// the flash space is the garbage collector's business.
package block

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/flashfs-dev/flashfs/pkg/flash"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/alloc"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/compression"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/index"
	"github.com/flashfs-dev/flashfs/pkg/local_block_storage/meta"
)

// Blocks provides access to block records of a single flash device.
// All operations assume single-writer use; serialization across
// goroutines, if needed, is the caller's responsibility.
type Blocks struct {
	*cfg

	dataCache *lru.Cache[flash.Loc, []byte]
}

// Option is an option of Blocks' constructor.
type Option func(*cfg)

type cfg struct {
	dev flash.Device

	alloc alloc.Allocator

	idx *index.Index

	compressor *compression.Config

	metaDB *meta.DB

	metrics *Metrics

	dataCacheSize int

	log *zap.Logger
}

func defaultCfg() *cfg {
	return &cfg{
		log: zap.L(),
	}
}

// New creates and returns new Blocks instance operating on the given
// device, space allocator and object index.
func New(dev flash.Device, a alloc.Allocator, idx *index.Index, opts ...Option) *Blocks {
	c := defaultCfg()

	c.dev = dev
	c.alloc = a
	c.idx = idx

	for i := range opts {
		opts[i](c)
	}

	b := &Blocks{
		cfg: c,
	}

	if c.dataCacheSize > 0 {
		// error is possible on non-positive size only
		b.dataCache, _ = lru.New[flash.Loc, []byte](c.dataCacheSize)
	}

	return b
}

// WithLogger returns option to specify Blocks' logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l.With(zap.String("component", "Blocks"))
	}
}

// WithCompressor returns option to enable transparent payload
// compression. The config must be initialized with Init.
func WithCompressor(cc *compression.Config) Option {
	return func(c *cfg) {
		c.compressor = cc
	}
}

// WithDataCache returns option to keep up to n recently read payloads
// in memory, keyed by flash location.
func WithDataCache(n int) Option {
	return func(c *cfg) {
		c.dataCacheSize = n
	}
}

// WithMeta returns option to maintain a durable snapshot of block
// placements in the given meta DB on every write and delete.
func WithMeta(db *meta.DB) Option {
	return func(c *cfg) {
		c.metaDB = db
	}
}

// WithMetrics returns option to account operations in m.
func WithMetrics(m *Metrics) Option {
	return func(c *cfg) {
		c.metrics = m
	}
}
