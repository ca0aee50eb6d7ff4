package cache

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/poiesic/arraycompare/registry"
)

// Container holds named cache instances built from registered strategies.
type Container struct {
	strategies *registry.Registry[registry.Constructor]
	caches     map[string]Strategy
	logger     *slog.Logger
}

// ContainerOption configures a Container.
type ContainerOption func(*Container)

// WithStrategies sets the registry caches are built from.
// Default is DefaultStrategies().
func WithStrategies(strategies *registry.Registry[registry.Constructor]) ContainerOption {
	return func(c *Container) {
		if strategies != nil {
			c.strategies = strategies
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewContainer creates an empty container.
func NewContainer(opts ...ContainerOption) *Container {
	c := &Container{
		caches: make(map[string]Strategy),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.strategies == nil {
		c.strategies = DefaultStrategies()
	}
	return c
}

// Add creates a cache named name using the registered strategy and returns
// it. An existing cache with the same name is closed and replaced.
// Returns ErrUnknownCachingStrategy if strategy is not registered.
func (c *Container) Add(name, strategy string) (Strategy, error) {
	if name == "" {
		return nil, ErrInvalidCacheName
	}

	ctor, err := c.strategies.Lookup(strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownCachingStrategy, strategy, err)
	}

	instance, ok := ctor().(Strategy)
	if !ok {
		// The registry contract normally rules this out.
		return nil, fmt.Errorf("%w: %q", ErrIncompatibleCachingStrategy, strategy)
	}

	if old, exists := c.caches[name]; exists {
		closeCache(old, c.logger)
	}
	c.caches[name] = instance
	c.logger.Debug("added cache", "name", name, "strategy", strategy)
	return instance, nil
}

// Get returns the cache named name.
// Returns ErrUnknownCache if it was never added.
func (c *Container) Get(name string) (Strategy, error) {
	instance, ok := c.caches[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCache, name)
	}
	return instance, nil
}

// Delete closes and removes the cache named name.
// Returns ErrUnknownCache if it was never added.
func (c *Container) Delete(name string) error {
	instance, ok := c.caches[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCache, name)
	}
	delete(c.caches, name)
	if closer, ok := instance.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Names returns the names of all caches in lexicographic order.
func (c *Container) Names() []string {
	names := make([]string, 0, len(c.caches))
	for name := range c.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes every cache that holds resources and empties the container.
func (c *Container) Close() error {
	var errs []error
	for name, instance := range c.caches {
		if closer, ok := instance.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				c.logger.Error("error closing cache", "name", name, "err", err)
				errs = append(errs, fmt.Errorf("cache %q: %w", name, err))
			}
		}
	}
	clear(c.caches)
	return errors.Join(errs...)
}

func closeCache(instance Strategy, logger *slog.Logger) {
	closer, ok := instance.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Error("error closing replaced cache", "err", err)
	}
}
