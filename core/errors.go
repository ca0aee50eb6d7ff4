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


package core

import "errors"

// Sample decoding errors
var (
	// ErrNegativeLength indicates an encoded list declared a negative length.
	ErrNegativeLength = errors.New("negative length")

	// ErrTruncatedData indicates the encoded sample ended early.
	ErrTruncatedData = errors.New("truncated data")
)
