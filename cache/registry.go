package cache

import (
	"sync"

	"github.com/poiesic/arraycompare/registry"
)

// Names of the built-in caching strategies.
const (
	StrategySingleValue = "single_value"
	StrategyAnonymous   = "anonymous"
)

// NewStrategyRegistry creates a caching-strategy registry validated by
// Contract() and loaded with the built-in strategies.
func NewStrategyRegistry(opts ...registry.Option) *registry.Registry[registry.Constructor] {
	r := registry.NewWithContract("caching", Contract(), opts...)
	registry.MustRegister(r, StrategySingleValue, func() any { return NewSingleValueCache() })
	registry.MustRegister(r, StrategyAnonymous, func() any { return NewAnonymousCache() })
	return r
}

var defaultStrategies = sync.OnceValue(func() *registry.Registry[registry.Constructor] {
	return NewStrategyRegistry()
})

// DefaultStrategies returns the process-wide caching-strategy registry.
// It is created on first use.
func DefaultStrategies() *registry.Registry[registry.Constructor] {
	return defaultStrategies()
}

// Register adds a caching strategy to the process-wide registry.
func Register(name string, ctor registry.Constructor) error {
	return DefaultStrategies().Register(name, ctor)
}
