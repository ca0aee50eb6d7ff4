package cache

import "github.com/poiesic/arraycompare/registry"

// Strategy is the contract every caching strategy fulfils.
type Strategy interface {
	// Add stores obj, marks the cache as having new objects and returns obj.
	Add(obj any) any

	// StoredObjects returns every stored object and clears the new-objects flag.
	StoredObjects() []any

	// Clear removes all objects. The new-objects flag is unchanged.
	Clear()

	// NewObjects reports whether objects were added since the last StoredObjects call.
	NewObjects() bool

	// DeleteObject removes and returns the object at index n.
	// Returns false if there is no such object.
	DeleteObject(n int) (any, bool)

	// FetchObject returns the object at index n without removing it.
	// Returns false if there is no such object.
	FetchObject(n int) (any, bool)
}

// Compile-time checks for the built-in strategies.
var (
	_ Strategy = (*SingleValueCache)(nil)
	_ Strategy = (*AnonymousCache)(nil)
)

// Contract returns the capability list a caching strategy must satisfy.
func Contract() registry.Contract {
	return registry.Contract{
		Capabilities: []registry.Capability{
			registry.Method[interface{ Add(obj any) any }]("Add"),
			registry.Method[interface{ StoredObjects() []any }]("StoredObjects"),
			registry.Method[interface{ Clear() }]("Clear"),
			registry.Method[interface{ NewObjects() bool }]("NewObjects"),
			registry.Method[interface{ DeleteObject(n int) (any, bool) }]("DeleteObject"),
			registry.Method[interface{ FetchObject(n int) (any, bool) }]("FetchObject"),
		},
		Rejection: ErrIncompatibleCachingStrategy,
	}
}
