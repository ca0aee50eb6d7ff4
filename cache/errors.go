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


package cache

import "errors"

var (
	// ErrIncompatibleCachingStrategy indicates a registered constructor builds
	// an instance missing one of the Strategy methods.
	ErrIncompatibleCachingStrategy = errors.New("incompatible caching strategy")

	// ErrUnknownCachingStrategy indicates a cache was requested with an
	// unregistered strategy name.
	ErrUnknownCachingStrategy = errors.New("unknown caching strategy")

	// ErrUnknownCache indicates a lookup for a cache name that was never added.
	ErrUnknownCache = errors.New("unknown cache")

	// ErrInvalidCacheName indicates an empty cache name.
	ErrInvalidCacheName = errors.New("cache name cannot be empty")
)
