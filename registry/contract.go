package registry

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Constructor builds a fresh, zero-configured instance of a strategy.
// Registries validated by a Contract store constructors.
type Constructor func() any

// Capability is a single named requirement checked against a constructed
// instance.
type Capability struct {
	Name      string
	Satisfied func(instance any) bool
}

// Method returns a Capability satisfied by instances implementing I.
// I is usually a one-method interface, so the capability reads as
// "exposes method name".
func Method[I any](name string) Capability {
	return Capability{
		Name: name,
		Satisfied: func(instance any) bool {
			_, ok := instance.(I)
			return ok
		},
	}
}

// Contract is a declarative capability check. Every capability must be
// satisfied by an instance built from the candidate constructor; otherwise
// the Rejection error is reported.
//
// A Contract without capabilities or without a Rejection error is
// misconfigured and reports ErrMissingRegistryConfiguration on first use.
type Contract struct {
	Capabilities []Capability
	Rejection    error
}

// Validate implements Validator for constructors.
func (c Contract) Validate(ctor Constructor) error {
	switch {
	case len(c.Capabilities) == 0 && c.Rejection == nil:
		return fmt.Errorf("%w: capabilities and rejection error not declared", ErrMissingRegistryConfiguration)
	case len(c.Capabilities) == 0:
		return fmt.Errorf("%w: capabilities not declared", ErrMissingRegistryConfiguration)
	case c.Rejection == nil:
		return fmt.Errorf("%w: rejection error not declared", ErrMissingRegistryConfiguration)
	}

	if ctor == nil {
		return fmt.Errorf("%w: constructor is nil", c.Rejection)
	}

	instance, err := construct(ctor)
	if err != nil {
		return fmt.Errorf("%w: %w", c.Rejection, err)
	}
	if closer, ok := instance.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Default().Warn("error closing validation instance", "err", err)
			}
		}()
	}

	var missing []string
	for _, capability := range c.Capabilities {
		if instance == nil || !capability.Satisfied(instance) {
			missing = append(missing, capability.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %T does not support %s", c.Rejection, instance, strings.Join(missing, ", "))
	}
	return nil
}

// construct calls ctor, turning a panic into an error.
func construct(ctor Constructor) (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("constructor panicked: %v", r)
		}
	}()
	return ctor(), nil
}

// NewWithContract creates a registry of constructors validated by contract.
func NewWithContract(kind string, contract Contract, opts ...Option) *Registry[Constructor] {
	return New[Constructor](kind, contract, opts...)
}
