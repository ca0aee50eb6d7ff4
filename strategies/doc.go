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


// Package strategies contains the reference comparator strategies.
//
// Exact-match strategies compare whole items and ignore a sample's
// exceptions:
//   - is_equal: data and keywords hold the same items in the same order
//   - is_not_equal: data and keywords share no item (see IsNotEqual for the
//     empty case)
//   - contains_all: every keyword is an item of data
//   - contains_any: at least one keyword is an item of data
//   - contains_not: no keyword is an item of data
//
// The *_with_substring_search variants match a keyword against any data item
// that contains it. A data item containing one of the sample's exceptions
// never matches.
package strategies
