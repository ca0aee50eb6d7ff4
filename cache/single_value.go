package cache

import "slices"

// SingleValueCache holds at most one object. Adding an object replaces the
// previous one.
type SingleValueCache struct {
	objects    []any
	newObjects bool
}

// NewSingleValueCache creates an empty cache.
func NewSingleValueCache() *SingleValueCache {
	return &SingleValueCache{}
}

// Add replaces the stored object with obj and returns it.
func (c *SingleValueCache) Add(obj any) any {
	c.objects = []any{obj}
	c.newObjects = true
	return obj
}

// StoredObjects returns the stored object, if any, and clears the
// new-objects flag.
func (c *SingleValueCache) StoredObjects() []any {
	c.newObjects = false
	return slices.Clone(c.objects)
}

// Clear drops the stored object.
func (c *SingleValueCache) Clear() {
	c.objects = nil
}

// NewObjects reports whether an object was added since the last StoredObjects call.
func (c *SingleValueCache) NewObjects() bool {
	return c.newObjects
}

// DeleteObject removes the stored object. Only index 0 can hold one.
func (c *SingleValueCache) DeleteObject(n int) (any, bool) {
	if n != 0 || len(c.objects) == 0 {
		return nil, false
	}
	obj := c.objects[0]
	c.objects = nil
	return obj, true
}

// FetchObject returns the stored object. Only index 0 can hold one.
func (c *SingleValueCache) FetchObject(n int) (any, bool) {
	if n != 0 || len(c.objects) == 0 {
		return nil, false
	}
	return c.objects[0], true
}
