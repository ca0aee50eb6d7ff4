package badger

import (
	"errors"
	"log/slog"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/arraycompare/core"
)

// StrategyName is the name the Badger cache is registered under.
const StrategyName = "badger"

// Cache is a caching strategy that keeps objects in insertion order and
// stores core.Sample values encoded in an in-memory BadgerDB. Other values
// are held by reference. Decoded samples hold nil for empty lists.
//
// The database is opened on the first Add, so an unused Cache holds no
// resources. Close releases the database.
type Cache struct {
	backend    *Backend
	seq        *badger.Sequence
	order      []uint64       // sequence IDs in insertion order
	refs       map[uint64]any // objects that are not samples
	fallbacks  uint64
	newObjects bool
	logger     *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		refs:   make(map[uint64]any),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Constructor returns a zero-argument constructor suitable for a caching
// strategy registry.
func Constructor(opts ...Option) func() any {
	return func() any { return New(opts...) }
}

func (c *Cache) open() error {
	if c.backend != nil {
		return nil
	}
	backend, err := OpenBackend(c.logger)
	if err != nil {
		return err
	}
	seq, err := backend.GetSequence(sampleIDSeq)
	if err != nil {
		backend.Close()
		return err
	}
	c.backend = backend
	c.seq = seq
	return nil
}

// Add appends obj and returns it. Only samples open the database.
func (c *Cache) Add(obj any) any {
	c.newObjects = true

	sample, ok := obj.(core.Sample)
	if !ok {
		c.holdRef(obj)
		return obj
	}

	if err := c.open(); err != nil {
		c.logger.Error("error opening cache storage, holding object in memory", "err", err)
		c.holdRef(obj)
		return obj
	}

	id, err := c.seq.Next()
	if err != nil {
		c.logger.Error("error allocating cache sequence", "err", err)
		c.holdRef(obj)
		return obj
	}

	buf := make([]byte, core.SampleMUS.Size(sample))
	core.SampleMUS.Marshal(sample, buf)
	err = c.backend.WithTx(func(tx *badger.Txn) error {
		return tx.Set(makeSampleKey(id), buf)
	}, true)
	if err != nil {
		c.logger.Error("error storing sample, holding it in memory", "err", err)
		c.refs[id] = obj
	}
	c.order = append(c.order, id)
	return obj
}

// holdRef stores obj by reference under an ID counted down from the top of
// the uint64 range, clear of sequence IDs. Used for values that are not
// samples and when the database is unavailable.
func (c *Cache) holdRef(obj any) {
	id := math.MaxUint64 - c.fallbacks
	c.fallbacks++
	c.refs[id] = obj
	c.order = append(c.order, id)
}

// StoredObjects returns every stored object in insertion order and clears
// the new-objects flag. Samples that cannot be read back are skipped and
// logged.
func (c *Cache) StoredObjects() []any {
	c.newObjects = false

	objects := make([]any, 0, len(c.order))
	for _, id := range c.order {
		obj, err := c.load(id)
		if err != nil {
			c.logger.Error("error reading cached sample", "id", id, "err", err)
			continue
		}
		objects = append(objects, obj)
	}
	return objects
}

// Clear drops all objects.
func (c *Cache) Clear() {
	if c.backend != nil {
		if err := c.backend.DropPrefix(samplePrefix + ":"); err != nil {
			c.logger.Error("error clearing cache storage", "err", err)
		}
	}
	c.order = nil
	clear(c.refs)
}

// NewObjects reports whether objects were added since the last StoredObjects call.
func (c *Cache) NewObjects() bool {
	return c.newObjects
}

// DeleteObject removes the object at index n and returns it.
func (c *Cache) DeleteObject(n int) (any, bool) {
	if n < 0 || n >= len(c.order) {
		return nil, false
	}
	id := c.order[n]
	obj, err := c.load(id)
	if err != nil {
		c.logger.Error("error reading cached sample", "id", id, "err", err)
		return nil, false
	}

	if _, isRef := c.refs[id]; isRef {
		delete(c.refs, id)
	} else {
		err = c.backend.WithTx(func(tx *badger.Txn) error {
			return tx.Delete(makeSampleKey(id))
		}, true)
		if err != nil {
			c.logger.Error("error deleting cached sample", "id", id, "err", err)
			return nil, false
		}
	}
	c.order = slices.Delete(c.order, n, n+1)
	return obj, true
}

// FetchObject returns the object at index n.
func (c *Cache) FetchObject(n int) (any, bool) {
	if n < 0 || n >= len(c.order) {
		return nil, false
	}
	obj, err := c.load(c.order[n])
	if err != nil {
		c.logger.Error("error reading cached sample", "id", c.order[n], "err", err)
		return nil, false
	}
	return obj, true
}

// Len returns the number of stored objects.
func (c *Cache) Len() int {
	return len(c.order)
}

// Close releases the database. The cache is empty afterwards and reopens
// storage on the next Add.
func (c *Cache) Close() error {
	c.order = nil
	clear(c.refs)
	if c.backend == nil {
		return nil
	}

	var errs []error
	if err := c.seq.Release(); err != nil {
		errs = append(errs, err)
	}
	if err := c.backend.Close(); err != nil {
		errs = append(errs, err)
	}
	c.backend = nil
	c.seq = nil
	return errors.Join(errs...)
}

func (c *Cache) load(id uint64) (any, error) {
	if obj, ok := c.refs[id]; ok {
		return obj, nil
	}

	var sample core.Sample
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSampleKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			sample, _, err = core.SampleMUS.Unmarshal(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return sample, nil
}
