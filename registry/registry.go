package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Validator checks whether a candidate implementation satisfies a
// registry's capability contract.
type Validator[T any] interface {
	Validate(impl T) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc[T any] func(impl T) error

// Validate calls f(impl).
func (f ValidatorFunc[T]) Validate(impl T) error {
	return f(impl)
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// Registry maps names to implementations of T. Every implementation is
// validated before it is stored; the last successful registration under a
// name wins.
type Registry[T any] struct {
	mu        sync.RWMutex
	kind      string
	entries   map[string]T
	validator Validator[T]
	logger    *slog.Logger
}

// New creates an empty registry. kind labels the registry in errors and
// logs, for example "comparator" or "caching".
func New[T any](kind string, validator Validator[T], opts ...Option) *Registry[T] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[T]{
		kind:      kind,
		entries:   make(map[string]T),
		validator: validator,
		logger:    o.logger,
	}
}

// Kind returns the label the registry was created with.
func (r *Registry[T]) Kind() string {
	return r.kind
}

// Register validates impl and stores it under name, replacing any previous
// entry. On failure the registry is left unchanged.
//
// Returns ErrMissingRegistryConfiguration if the registry has no usable
// contract, ErrInvalidName for an empty name and ErrRegistrationRejected
// (wrapping the validator's error) if impl fails the check.
func (r *Registry[T]) Register(name string, impl T) error {
	if isNilValidator(r.validator) {
		return fmt.Errorf("%w: %s registry has no validator", ErrMissingRegistryConfiguration, r.kind)
	}
	if name == "" {
		return fmt.Errorf("%s registry: %w", r.kind, ErrInvalidName)
	}

	if err := r.validator.Validate(impl); err != nil {
		if errors.Is(err, ErrMissingRegistryConfiguration) {
			return fmt.Errorf("%s registry: %w", r.kind, err)
		}
		return fmt.Errorf("%w: %s strategy %q: %w", ErrRegistrationRejected, r.kind, name, err)
	}

	r.mu.Lock()
	_, replaced := r.entries[name]
	r.entries[name] = impl
	r.mu.Unlock()

	if replaced {
		r.logger.Debug("replaced registered strategy", "kind", r.kind, "name", name)
	} else {
		r.logger.Debug("registered strategy", "kind", r.kind, "name", name)
	}
	return nil
}

func isNilValidator[T any](v Validator[T]) bool {
	if v == nil {
		return true
	}
	f, ok := v.(ValidatorFunc[T])
	return ok && f == nil
}

// MustRegister panics on registration error. Useful from init() blocks.
func MustRegister[T any](r *Registry[T], name string, impl T) {
	if err := r.Register(name, impl); err != nil {
		panic(err)
	}
}

// Lookup returns the implementation registered under name.
// Returns ErrUnknownStrategy if there is none.
func (r *Registry[T]) Lookup(name string) (T, error) {
	r.mu.RLock()
	impl, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s strategy %q", ErrUnknownStrategy, r.kind, name)
	}
	return impl, nil
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	_, ok := r.entries[name]
	r.mu.RUnlock()
	return ok
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns all registered names in lexicographic order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Each calls fn once for every registered entry until fn returns false.
// Order is unspecified. fn runs against a snapshot taken before the first
// call, so it may register or look up strategies itself.
func (r *Registry[T]) Each(fn func(name string, impl T) bool) {
	r.mu.RLock()
	snapshot := make(map[string]T, len(r.entries))
	for name, impl := range r.entries {
		snapshot[name] = impl
	}
	r.mu.RUnlock()

	for name, impl := range snapshot {
		if !fn(name, impl) {
			return
		}
	}
}
