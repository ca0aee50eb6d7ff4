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


// Package comparator runs probe datasets against named matching strategies.
//
// # Strategies
//
// A comparator strategy is a core.Strategy registered by name. Registration
// applies a fixed two-part check: the strategy must be non-nil and it must
// build a non-nil probe from an empty sample. Candidates failing either part
// are rejected with ErrIncompatibleComparator. NewStrategyRegistry returns a
// registry pre-loaded with the reference strategies from package strategies.
//
// # Comparators
//
// A Comparator collects probes. Each AddProbe call looks the strategy up by
// name, builds a probe from the given data, keywords and exceptions, and
// appends it. Success is the logical AND over every probe; a comparator with
// no probes succeeds.
//
// The evaluated Result is memoized in a cache from the comparator's
// cache.Container and dropped whenever a probe is added.
//
// # Usage
//
//	c, err := comparator.New()
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	err = c.AddProbe([]string{"a", "b"}, "is_not_equal", []string{"c"})
//	if err != nil {
//	    return err
//	}
//	if !c.Success() {
//	    fmt.Println(c.Result())
//	}
//
// # Thread Safety
//
// Strategy registries are safe for concurrent use. A Comparator is not.
package comparator
