// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package comparator

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/poiesic/arraycompare/cache"
	"github.com/poiesic/arraycompare/core"
	"github.com/poiesic/arraycompare/registry"
)

// resultCachePrefix starts the name of each comparator's cache in its
// container. A per-process sequence number makes every name unique.
const resultCachePrefix = "comparator.result."

var resultCacheSeq atomic.Uint64

type check struct {
	strategy string
	sample   core.Sample
	probe    core.Probe
}

// Comparator holds an ordered list of probes and reports whether all of
// them succeed.
type Comparator struct {
	strategies     *registry.Registry[core.Strategy]
	cachingTypes   *registry.Registry[registry.Constructor]
	caches         *cache.Container
	ownsCaches     bool
	resultStrategy string
	resultCache    string
	results        cache.Strategy
	checks         []check
	logger         *slog.Logger
}

// Option configures a Comparator.
type Option func(*Comparator) error

// WithStrategies sets the registry probe strategies are looked up in.
// Default is DefaultStrategies().
func WithStrategies(strategies *registry.Registry[core.Strategy]) Option {
	return func(c *Comparator) error {
		if strategies == nil {
			return errors.New("strategy registry cannot be nil")
		}
		c.strategies = strategies
		return nil
	}
}

// WithCacheContainer sets the container the result cache is created in. The
// comparator does not close a container it did not create.
// Default is a new container over cache.DefaultStrategies().
func WithCacheContainer(caches *cache.Container) Option {
	return func(c *Comparator) error {
		if caches == nil {
			return errors.New("cache container cannot be nil")
		}
		c.caches = caches
		return nil
	}
}

// WithCachingStrategies sets the registry the comparator's own cache
// container builds caches from. Ignored when WithCacheContainer is given.
// Default is cache.DefaultStrategies().
func WithCachingStrategies(strategies *registry.Registry[registry.Constructor]) Option {
	return func(c *Comparator) error {
		if strategies == nil {
			return errors.New("caching strategy registry cannot be nil")
		}
		c.cachingTypes = strategies
		return nil
	}
}

// WithResultCache sets the caching strategy used to memoize the result.
// Default is cache.StrategySingleValue.
func WithResultCache(strategy string) Option {
	return func(c *Comparator) error {
		if strategy == "" {
			return errors.New("result cache strategy cannot be empty")
		}
		c.resultStrategy = strategy
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Comparator) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// New creates a comparator with no probes.
func New(opts ...Option) (*Comparator, error) {
	c := &Comparator{
		resultStrategy: cache.StrategySingleValue,
		logger:         slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.strategies == nil {
		c.strategies = DefaultStrategies()
	}
	if c.caches == nil {
		c.caches = cache.NewContainer(cache.WithStrategies(c.cachingTypes), cache.WithLogger(c.logger))
		c.ownsCaches = true
	}

	c.resultCache = resultCachePrefix + strconv.FormatUint(resultCacheSeq.Add(1), 10)
	results, err := c.caches.Add(c.resultCache, c.resultStrategy)
	if err != nil {
		if c.ownsCaches {
			c.caches.Close()
		}
		return nil, err
	}
	c.results = results
	return c, nil
}

// AddProbe builds a probe with the named strategy and appends it.
// Returns ErrUnknownProbeType if strategy is not registered; the comparator
// is unchanged in that case.
func (c *Comparator) AddProbe(data []string, strategy string, keywords []string, exceptions ...string) error {
	return c.AddSample(strategy, core.Sample{
		Data:       data,
		Keywords:   keywords,
		Exceptions: exceptions,
	})
}

// AddSample is AddProbe for a prepared sample.
func (c *Comparator) AddSample(strategy string, sample core.Sample) error {
	s, err := c.strategies.Lookup(strategy)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownProbeType, err)
	}

	probe := s.NewProbe(sample)
	if isNilProbe(probe) {
		return fmt.Errorf("%w: %q built no probe", ErrIncompatibleComparator, strategy)
	}

	c.checks = append(c.checks, check{strategy: strategy, sample: sample, probe: probe})
	c.results.Clear()
	c.logger.Debug("added probe", "strategy", strategy, "tag", sample.Tag, "count", len(c.checks))
	return nil
}

// Success reports whether every probe succeeds. A comparator with no probes
// succeeds.
func (c *Comparator) Success() bool {
	return c.Result().Success
}

// Result evaluates the probes in order and stops at the first failure.
// The result is memoized until the next probe is added.
func (c *Comparator) Result() Result {
	if obj, ok := c.results.FetchObject(0); ok {
		if r, ok := obj.(Result); ok {
			return r
		}
	}

	r := c.evaluate()
	c.results.Add(r)
	return r
}

func (c *Comparator) evaluate() Result {
	for i, ch := range c.checks {
		if !ch.probe.Success() {
			return Result{
				FailedIndex:    i,
				FailedStrategy: ch.strategy,
				FailedSample:   ch.sample,
				FailedID:       ch.sample.Fingerprint(),
			}
		}
	}
	return Result{Success: true, FailedIndex: -1}
}

// ProbeCount returns the number of probes added.
func (c *Comparator) ProbeCount() int {
	return len(c.checks)
}

// Close releases the result cache. A container created by New is closed; an
// injected one only loses the result cache.
func (c *Comparator) Close() error {
	if c.ownsCaches {
		return c.caches.Close()
	}
	return c.caches.Delete(c.resultCache)
}
