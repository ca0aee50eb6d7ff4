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


// Package registry provides a small generic registry that maps symbolic
// names to strategy implementations and checks every candidate against a
// capability contract before admitting it.
//
// # Validators
//
// Each registry is created with a Validator. Two shapes are provided:
//
//   - ValidatorFunc: a fixed check written in Go, used when the contract is
//     known up front (the comparator registry checks that a strategy can
//     build a probe and that the probe answers Success).
//   - Contract: a declarative list of capabilities that a no-argument
//     constructed instance must expose, plus the error kind reported when
//     one is missing (the caching registry uses this).
//
// A registry created without a validator, or with a Contract that omits its
// capabilities or its rejection error, is misconfigured. Registration then
// fails with ErrMissingRegistryConfiguration, which is distinct from
// ErrRegistrationRejected (a bad candidate).
//
// # Usage
//
//	strategies := registry.New[core.Strategy]("comparator", registry.ValidatorFunc[core.Strategy](check))
//	if err := strategies.Register("is_not_equal", strategies.IsNotEqual); err != nil {
//	    return err
//	}
//	s, err := strategies.Lookup("is_not_equal")
//
// # Thread Safety
//
// Registry is safe for concurrent use. Each iterates over a snapshot, so the
// visitor may call back into the registry.
package registry
