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


// Package cache provides pluggable caching strategies for intermediate values
// and a Container that holds named cache instances.
//
// # Strategies
//
// A caching strategy is any type whose zero-argument constructor returns a
// value exposing the Strategy methods. Strategies are registered by name in a
// registry validated by Contract(); a constructor whose instance lacks one of
// the methods is rejected with ErrIncompatibleCachingStrategy.
//
// Built-in strategies:
//   - single_value: holds at most one object (SingleValueCache)
//   - anonymous: holds an ordered list of objects (AnonymousCache)
//
// # Dirty Tracking
//
// Every strategy keeps a "new objects" flag. Add sets it; StoredObjects
// clears it. Clear, DeleteObject and FetchObject leave it untouched, so a
// consumer can poll NewObjects to learn whether anything was added since it
// last read the cache.
//
// # Usage
//
//	c := cache.NewContainer()
//	checks, err := c.Add("checks", cache.StrategyAnonymous)
//	if err != nil {
//	    return err
//	}
//	checks.Add(sample)
//	if checks.NewObjects() {
//	    for _, obj := range checks.StoredObjects() { ... }
//	}
//
// # Thread Safety
//
// Strategy registries are safe for concurrent use. Containers and cache
// instances are not; each belongs to a single owner.
package cache
