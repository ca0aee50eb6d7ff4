package cache

import "slices"

// AnonymousCache holds objects in insertion order.
type AnonymousCache struct {
	objects    []any
	newObjects bool
}

// NewAnonymousCache creates an empty cache.
func NewAnonymousCache() *AnonymousCache {
	return &AnonymousCache{}
}

// Add appends obj and returns it.
func (c *AnonymousCache) Add(obj any) any {
	c.objects = append(c.objects, obj)
	c.newObjects = true
	return obj
}

// StoredObjects returns a copy of the stored objects and clears the
// new-objects flag.
func (c *AnonymousCache) StoredObjects() []any {
	c.newObjects = false
	return slices.Clone(c.objects)
}

// Clear drops all objects.
func (c *AnonymousCache) Clear() {
	c.objects = nil
}

// NewObjects reports whether objects were added since the last StoredObjects call.
func (c *AnonymousCache) NewObjects() bool {
	return c.newObjects
}

// DeleteObject removes the object at index n and returns it.
func (c *AnonymousCache) DeleteObject(n int) (any, bool) {
	if n < 0 || n >= len(c.objects) {
		return nil, false
	}
	obj := c.objects[n]
	c.objects = slices.Delete(c.objects, n, n+1)
	return obj, true
}

// FetchObject returns the object at index n.
func (c *AnonymousCache) FetchObject(n int) (any, bool) {
	if n < 0 || n >= len(c.objects) {
		return nil, false
	}
	return c.objects[n], true
}
