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

// Package heap implements a binary min-heap over a contiguous array. The
// element at index i parents the elements at 2i+1 and 2i+2; the root is the
// best element under the comparator supplied at construction. A max-heap is
// the same engine constructed with ordered.Reverse of the comparator.
//
// Elements that compare equal are extracted in no particular order. Callers
// needing a deterministic tie-break must fold a secondary key into the
// comparator.
package heap

import (
	"github.com/cockroachdb/collections"
	"github.com/cockroachdb/collections/ordered"
	"github.com/cockroachdb/errors"
)

// Heap is a binary heap of T. Duplicates are permitted.
type Heap[T any] struct {
	cmp   ordered.CompareFn[T]
	items []T
	mod   uint64
}

// New constructs an empty min-heap under cmp.
func New[T any](cmp ordered.CompareFn[T]) *Heap[T] {
	return &Heap[T]{cmp: cmp}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Reserve grows the backing array to hold at least n elements without
// further reallocation.
func (h *Heap[T]) Reserve(n int) {
	if n <= cap(h.items) {
		return
	}
	items := make([]T, len(h.items), n)
	copy(items, h.items)
	h.items = items
}

// Push adds v to the heap in O(log n).
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
	h.mod++
}

// Peek returns the root element without removing it. It fails with
// collections.ErrEmpty on an empty heap.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, errors.Wrap(collections.ErrEmpty, "peek")
	}
	return h.items[0], nil
}

// Pop removes and returns the root element in O(log n). It fails with
// collections.ErrEmpty on an empty heap.
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, errors.Wrap(collections.ErrEmpty, "pop")
	}
	last := len(h.items) - 1
	out := h.items[0]
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]
	h.siftDown(0)
	h.mod++
	return out, nil
}

// Clear removes every element. The backing array is kept.
func (h *Heap[T]) Clear() {
	var zero T
	for i := range h.items {
		h.items[i] = zero
	}
	h.items = h.items[:0]
	h.mod++
}

// siftUp walks the element at index i toward the root until its parent
// compares no worse.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.items[i], h.items[parent]) >= 0 {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown walks the element at index i toward the leaves, swapping with the
// better-comparing child until both children compare no better.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		best := i
		if l := 2*i + 1; l < n && h.cmp(h.items[l], h.items[best]) < 0 {
			best = l
		}
		if r := 2*i + 2; r < n && h.cmp(h.items[r], h.items[best]) < 0 {
			best = r
		}
		if best == i {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}

// Iter returns a fail-fast iterator over the heap's elements in unspecified
// order.
func (h *Heap[T]) Iter() Iter[T] {
	return Iter[T]{h: h, snapshot: h.mod, pos: -1}
}

// Iter is an iterator over a Heap.
type Iter[T any] struct {
	h        *Heap[T]
	snapshot uint64
	pos      int
	cur      T
	err      error
}

// Next advances to the next element, returning false when the iteration is
// done or has failed. Check Err after the loop.
func (it *Iter[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.snapshot != it.h.mod {
		it.err = errors.Wrap(collections.ErrModified, "heap iterator")
		return false
	}
	if it.pos+1 >= len(it.h.items) {
		return false
	}
	it.pos++
	it.cur = it.h.items[it.pos]
	return true
}

// Cur returns the element Next advanced to.
func (it *Iter[T]) Cur() T {
	return it.cur
}

// Err returns collections.ErrModified if the heap was structurally mutated
// while this iterator was live, nil otherwise.
func (it *Iter[T]) Err() error {
	return it.err
}
