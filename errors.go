// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package collections

import "github.com/cockroachdb/errors"

// ErrOutOfRange is reported by positional accessors handed an index outside
// the container's valid range. Engines wrap it with the offending index and
// the container's length; match it with errors.Is.
var ErrOutOfRange = errors.New("index out of range")

// ErrEmpty is reported by extraction or peek operations invoked on a
// container that holds no elements.
var ErrEmpty = errors.New("container is empty")

// ErrModified is reported by an iterator step that observed a structural
// mutation made after the iterator was created. See the package doc for the
// iteration contract.
var ErrModified = errors.New("container modified during iteration")
