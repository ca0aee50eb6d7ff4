package comparator

import (
	"fmt"
	"sync"

	"github.com/poiesic/arraycompare/core"
	"github.com/poiesic/arraycompare/registry"
	"github.com/poiesic/arraycompare/strategies"
)

// validateStrategy is the comparator registry's capability check.
func validateStrategy(s core.Strategy) (err error) {
	if s == nil {
		return fmt.Errorf("%w: strategy is nil", ErrIncompatibleComparator)
	}
	if f, ok := s.(core.StrategyFunc); ok && f == nil {
		return fmt.Errorf("%w: strategy func is nil", ErrIncompatibleComparator)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %T panicked building a probe: %v", ErrIncompatibleComparator, s, r)
		}
	}()
	if isNilProbe(s.NewProbe(core.Sample{})) {
		return fmt.Errorf("%w: %T does not build probes", ErrIncompatibleComparator, s)
	}
	return nil
}

func isNilProbe(p core.Probe) bool {
	if p == nil {
		return true
	}
	f, ok := p.(core.ProbeFunc)
	return ok && f == nil
}

// NewStrategyRegistry creates a comparator strategy registry loaded with the
// reference strategies.
func NewStrategyRegistry(opts ...registry.Option) *registry.Registry[core.Strategy] {
	r := registry.New[core.Strategy]("comparator", registry.ValidatorFunc[core.Strategy](validateStrategy), opts...)
	for name, s := range strategies.Builtins() {
		registry.MustRegister(r, name, s)
	}
	return r
}

var defaultStrategies = sync.OnceValue(func() *registry.Registry[core.Strategy] {
	return NewStrategyRegistry()
})

// DefaultStrategies returns the process-wide comparator strategy registry.
// It is created on first use.
func DefaultStrategies() *registry.Registry[core.Strategy] {
	return defaultStrategies()
}

// Register adds a strategy to the process-wide registry.
func Register(name string, s core.Strategy) error {
	return DefaultStrategies().Register(name, s)
}
