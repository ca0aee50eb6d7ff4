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


package registry

import "errors"

var (
	// ErrRegistrationRejected indicates a candidate failed the registry's capability check.
	ErrRegistrationRejected = errors.New("registration rejected")

	// ErrUnknownStrategy indicates a lookup for a name that was never registered.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrMissingRegistryConfiguration indicates the registry itself declares no
	// usable contract. This is a programming error in the registry variant,
	// not in the candidate.
	ErrMissingRegistryConfiguration = errors.New("registry contract not configured")

	// ErrInvalidName indicates an empty strategy name.
	ErrInvalidName = errors.New("strategy name cannot be empty")
)
