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


// Package arraycompare wires comparator and caching strategy registries
// together and hands out comparators and cache containers built from them.
package arraycompare

import (
	"log/slog"

	"github.com/poiesic/arraycompare/cache"
	"github.com/poiesic/arraycompare/cache/badger"
	"github.com/poiesic/arraycompare/comparator"
	"github.com/poiesic/arraycompare/core"
	"github.com/poiesic/arraycompare/registry"
)

// Toolkit owns a comparator strategy registry and a caching strategy
// registry. The caching registry always carries the badger strategy in
// addition to the built-ins.
type Toolkit struct {
	comparators *registry.Registry[core.Strategy]
	caching     *registry.Registry[registry.Constructor]
	logger      *slog.Logger
}

// Option configures a Toolkit.
type Option func(*Toolkit) error

// WithComparatorStrategies uses an existing comparator strategy registry.
// Default is a fresh comparator.NewStrategyRegistry().
func WithComparatorStrategies(r *registry.Registry[core.Strategy]) Option {
	return func(t *Toolkit) error {
		t.comparators = r
		return nil
	}
}

// WithCachingStrategies uses an existing caching strategy registry.
// Default is a fresh cache.NewStrategyRegistry().
func WithCachingStrategies(r *registry.Registry[registry.Constructor]) Option {
	return func(t *Toolkit) error {
		t.caching = r
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Toolkit) error {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
		return nil
	}
}

// New creates a toolkit.
func New(opts ...Option) (*Toolkit, error) {
	t := &Toolkit{
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	if t.comparators == nil {
		t.comparators = comparator.NewStrategyRegistry(registry.WithLogger(t.logger))
	}
	if t.caching == nil {
		t.caching = cache.NewStrategyRegistry(registry.WithLogger(t.logger))
	}

	err := t.caching.Register(badger.StrategyName, badger.Constructor(badger.WithLogger(t.logger)))
	if err != nil {
		return nil, err
	}
	return t, nil
}

// NewComparator creates a comparator backed by the toolkit's registries.
// opts are applied after the toolkit's own, so they may override them.
func (t *Toolkit) NewComparator(opts ...comparator.Option) (*comparator.Comparator, error) {
	base := []comparator.Option{
		comparator.WithStrategies(t.comparators),
		comparator.WithCachingStrategies(t.caching),
		comparator.WithLogger(t.logger),
	}
	return comparator.New(append(base, opts...)...)
}

// NewCacheContainer creates an empty cache container backed by the
// toolkit's caching registry.
func (t *Toolkit) NewCacheContainer(opts ...cache.ContainerOption) *cache.Container {
	base := []cache.ContainerOption{
		cache.WithStrategies(t.caching),
		cache.WithLogger(t.logger),
	}
	return cache.NewContainer(append(base, opts...)...)
}

// RegisterComparator adds a comparator strategy.
func (t *Toolkit) RegisterComparator(name string, s core.Strategy) error {
	return t.comparators.Register(name, s)
}

// RegisterCachingStrategy adds a caching strategy.
func (t *Toolkit) RegisterCachingStrategy(name string, ctor registry.Constructor) error {
	return t.caching.Register(name, ctor)
}

// ComparatorStrategies returns the comparator strategy registry.
func (t *Toolkit) ComparatorStrategies() *registry.Registry[core.Strategy] {
	return t.comparators
}

// CachingStrategies returns the caching strategy registry.
func (t *Toolkit) CachingStrategies() *registry.Registry[registry.Constructor] {
	return t.caching
}
