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

package ordmap

import (
	"github.com/cockroachdb/collections"
	"github.com/cockroachdb/errors"
)

// Iter is an in-order iterator over a Map. It keeps the path to the next
// entry on an explicit stack; stepping is amortized O(1).
type Iter[K, V any] struct {
	m        *Map[K, V]
	snapshot uint64
	stack    []*node[K, V]
	curKey   K
	curVal   V
	bounded  bool
	to       K
	err      error
}

// Iter returns a fail-fast iterator over all entries in ascending key order.
func (m *Map[K, V]) Iter() Iter[K, V] {
	it := Iter[K, V]{m: m, snapshot: m.mod}
	it.pushLeft(m.root)
	return it
}

// Range returns a fail-fast iterator over the entries with from <= key < to,
// in ascending key order. It is a lazy view over the tree, not a copy, and is
// subject to the same modification check as Iter. An empty interval (to <=
// from) yields nothing.
func (m *Map[K, V]) Range(from, to K) Iter[K, V] {
	it := Iter[K, V]{m: m, snapshot: m.mod, bounded: true, to: to}
	// Descend toward from, stacking every node on its high side.
	for n := m.root; n != nil; {
		if m.cmp(n.key, from) >= 0 {
			it.stack = append(it.stack, n)
			n = n.left
		} else {
			n = n.right
		}
	}
	return it
}

func (it *Iter[K, V]) pushLeft(n *node[K, V]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

// Next advances to the next entry, returning false when the iteration is
// done or has failed. Check Err after the loop.
func (it *Iter[K, V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.snapshot != it.m.mod {
		it.err = errors.Wrap(collections.ErrModified, "ordmap iterator")
		return false
	}
	if len(it.stack) == 0 {
		return false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if it.bounded && it.m.cmp(n.key, it.to) >= 0 {
		it.stack = it.stack[:0]
		return false
	}
	it.curKey, it.curVal = n.key, n.value
	it.pushLeft(n.right)
	return true
}

// Cur returns the entry Next advanced to.
func (it *Iter[K, V]) Cur() (K, V) {
	return it.curKey, it.curVal
}

// Err returns collections.ErrModified if the map was structurally mutated
// while this iterator was live, nil otherwise.
func (it *Iter[K, V]) Err() error {
	return it.err
}
