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

// Package collections holds the protocol shared by the container engines in
// this module: the sentinel errors every engine reports through and the
// fail-fast iteration contract they all honor.
//
// The engines (vector, list, hashmap, ordmap, heap, ring) are single-threaded
// data structures. None of them locks; callers that need cross-goroutine
// access must serialize it externally.
//
// # Iteration
//
// Every engine tracks a modification counter that is bumped by each
// structural mutation (insert, remove, clear) and left alone by pure value
// replacement. An iterator snapshots the counter when created and re-checks
// it on every step. If the container was structurally mutated behind the
// iterator's back, the next step stops the iteration and reports ErrModified
// instead of returning an arbitrary or corrupted sequence:
//
//	it := v.Iter()
//	for it.Next() {
//		_ = it.Cur()
//	}
//	if err := it.Err(); err != nil {
//		// errors.Is(err, collections.ErrModified)
//	}
//
// Iterators are forward-only and lazy. Restarting means creating a new
// iterator; there is no mid-stream rewind.
package collections
