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

// Package ordmap implements an ordered map over a left-leaning red-black
// tree. Keys are unique under the comparator supplied at construction;
// in-order iteration yields them in ascending comparator order, and lookups,
// inserts, removals, and the nearest-key searches are O(log n).
package ordmap

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/collections/ordered"
)

type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	black       bool
}

// Map is an ordered map from K to V. The comparator must be a consistent
// total order; the tree does not check this, and handing it an inconsistent
// comparator leaves the ordering invariant undefined.
type Map[K, V any] struct {
	cmp  ordered.CompareFn[K]
	root *node[K, V]
	len  int
	mod  uint64
}

// New constructs an empty Map ordered by cmp.
func New[K, V any](cmp ordered.CompareFn[K]) *Map[K, V] {
	return &Map[K, V]{cmp: cmp}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.len
}

// Upsert stores v under k. If the key was already present its previous value
// is returned with replaced == true; the tree structure is untouched in that
// case and live iterators stay valid.
func (m *Map[K, V]) Upsert(k K, v V) (prev V, replaced bool) {
	m.root, prev, replaced = m.insert(m.root, k, v)
	m.root.black = true
	if !replaced {
		m.len++
		m.mod++
	}
	return prev, replaced
}

func (m *Map[K, V]) insert(h *node[K, V], k K, v V) (_ *node[K, V], prev V, replaced bool) {
	if h == nil {
		return &node[K, V]{key: k, value: v}, prev, false
	}
	switch c := m.cmp(k, h.key); {
	case c < 0:
		h.left, prev, replaced = m.insert(h.left, k, v)
	case c > 0:
		h.right, prev, replaced = m.insert(h.right, k, v)
	default:
		prev, h.value, replaced = h.value, v, true
	}

	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flip(h)
	}
	return h, prev, replaced
}

// Get returns the value stored under k, if any.
func (m *Map[K, V]) Get(k K) (V, bool) {
	for n := m.root; n != nil; {
		switch c := m.cmp(k, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Delete removes k and returns the value it held, if any. An absent key is
// rejected before any rebalancing touches the tree, so a failed Delete leaves
// both the structure and live iterators intact.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	if !m.Contains(k) {
		var zero V
		return zero, false
	}
	var deleted V
	var found bool
	m.root, deleted, found = m.del(m.root, k)
	if m.root != nil {
		m.root.black = true
	}
	if found {
		m.len--
		m.mod++
	}
	return deleted, found
}

func (m *Map[K, V]) del(h *node[K, V], k K) (_ *node[K, V], deleted V, found bool) {
	if m.cmp(k, h.key) < 0 {
		if h.left == nil {
			return h, deleted, false
		}
		if !isRed(h.left) && !isRed(h.left.left) {
			h = moveRedLeft(h)
		}
		h.left, deleted, found = m.del(h.left, k)
	} else {
		if isRed(h.left) {
			h = rotateRight(h)
		}
		if m.cmp(k, h.key) == 0 && h.right == nil {
			return nil, h.value, true
		}
		if h.right == nil {
			return fixUp(h), deleted, false
		}
		if !isRed(h.right) && !isRed(h.right.left) {
			h = moveRedRight(h)
		}
		if m.cmp(k, h.key) == 0 {
			deleted, found = h.value, true
			var min *node[K, V]
			h.right, min = deleteMin(h.right)
			h.key, h.value = min.key, min.value
		} else {
			h.right, deleted, found = m.del(h.right, k)
		}
	}
	return fixUp(h), deleted, found
}

// deleteMin unlinks and returns the smallest node of the subtree rooted at h.
func deleteMin[K, V any](h *node[K, V]) (_, removed *node[K, V]) {
	if h.left == nil {
		return nil, h
	}
	if !isRed(h.left) && !isRed(h.left.left) {
		h = moveRedLeft(h)
	}
	h.left, removed = deleteMin(h.left)
	return fixUp(h), removed
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.len = 0
	m.mod++
}

// First returns the smallest entry, if any.
func (m *Map[K, V]) First() (K, V, bool) {
	n := m.root
	if n == nil {
		var k K
		var v V
		return k, v, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Last returns the largest entry, if any.
func (m *Map[K, V]) Last() (K, V, bool) {
	n := m.root
	if n == nil {
		var k K
		var v V
		return k, v, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// Floor returns the largest entry whose key is <= probe, if any.
func (m *Map[K, V]) Floor(probe K) (K, V, bool) {
	return m.seek(probe, true, true)
}

// Ceiling returns the smallest entry whose key is >= probe, if any.
func (m *Map[K, V]) Ceiling(probe K) (K, V, bool) {
	return m.seek(probe, false, true)
}

// Lower returns the largest entry whose key is < probe, if any.
func (m *Map[K, V]) Lower(probe K) (K, V, bool) {
	return m.seek(probe, true, false)
}

// Higher returns the smallest entry whose key is > probe, if any.
func (m *Map[K, V]) Higher(probe K) (K, V, bool) {
	return m.seek(probe, false, false)
}

// seek walks from the root keeping the best node on the probe's below (or
// above) side, optionally accepting an exact match.
func (m *Map[K, V]) seek(probe K, below, inclusive bool) (K, V, bool) {
	var best *node[K, V]
	for n := m.root; n != nil; {
		c := m.cmp(probe, n.key)
		if c == 0 && inclusive {
			return n.key, n.value, true
		}
		if below {
			// Keys smaller than the probe are candidates; the best one is
			// the last candidate seen while descending right.
			if c > 0 {
				best = n
				n = n.right
			} else {
				n = n.left
			}
		} else {
			if c < 0 {
				best = n
				n = n.left
			} else {
				n = n.right
			}
		}
	}
	if best == nil {
		var k K
		var v V
		return k, v, false
	}
	return best.key, best.value, true
}

func isRed[K, V any](h *node[K, V]) bool {
	if h == nil {
		return false
	}
	return !h.black
}

func rotateLeft[K, V any](h *node[K, V]) *node[K, V] {
	x := h.right
	if x.black {
		panic("rotating a black link")
	}
	h.right = x.left
	x.left = h
	x.black = h.black
	h.black = false
	return x
}

func rotateRight[K, V any](h *node[K, V]) *node[K, V] {
	x := h.left
	if x.black {
		panic("rotating a black link")
	}
	h.left = x.right
	x.right = h
	x.black = h.black
	h.black = false
	return x
}

func flip[K, V any](h *node[K, V]) {
	h.black = !h.black
	h.left.black = !h.left.black
	h.right.black = !h.right.black
}

func moveRedLeft[K, V any](h *node[K, V]) *node[K, V] {
	flip(h)
	if isRed(h.right.left) {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flip(h)
	}
	return h
}

func moveRedRight[K, V any](h *node[K, V]) *node[K, V] {
	flip(h)
	if isRed(h.left.left) {
		h = rotateRight(h)
		flip(h)
	}
	return h
}

func fixUp[K, V any](h *node[K, V]) *node[K, V] {
	if isRed(h.right) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flip(h)
	}
	return h
}

// String renders the entries in order as comma-separated "k:v" pairs.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	it := m.Iter()
	for i := 0; it.Next(); i++ {
		if i != 0 {
			b.WriteString(",")
		}
		k, v := it.Cur()
		_, _ = fmt.Fprintf(&b, "%v:%v", k, v)
	}
	return b.String()
}
