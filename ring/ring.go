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

// Package ring implements a deque maintained over a ring buffer.
//
// Note: it is backed by a slice (unlike container/ring which is backed by a
// linked list), so pure double-ended push/pop workloads pay no per-element
// allocation and keep cache locality.
package ring

import (
	"github.com/cockroachdb/collections"
	"github.com/cockroachdb/errors"
)

// Buffer is a deque of T maintained over a ring buffer. The zero value is an
// empty buffer ready for use.
type Buffer[T any] struct {
	buffer []T
	head   int // the index of the front of the buffer
	tail   int // the index of the first position after the end of the buffer

	// Indicates whether the buffer is empty. Necessary to distinguish
	// between an empty buffer and a buffer that uses all of its capacity.
	nonEmpty bool

	mod uint64
}

// New constructs a Buffer with capacity for n elements.
func New[T any](n int) *Buffer[T] {
	return &Buffer[T]{buffer: make([]T, n)}
}

// Len returns the number of elements in the Buffer.
func (r *Buffer[T]) Len() int {
	if !r.nonEmpty {
		return 0
	}
	if r.head < r.tail {
		return r.tail - r.head
	} else if r.head == r.tail {
		return cap(r.buffer)
	}
	return cap(r.buffer) + r.tail - r.head
}

// Cap returns the capacity of the Buffer.
func (r *Buffer[T]) Cap() int {
	return cap(r.buffer)
}

// Get returns the element at position pos in the Buffer (zero-based, counted
// from the front). It fails with collections.ErrOutOfRange unless
// 0 <= pos < Len().
func (r *Buffer[T]) Get(pos int) (T, error) {
	if pos < 0 || pos >= r.Len() {
		var zero T
		return zero, errors.Wrapf(collections.ErrOutOfRange, "position %d, length %d", pos, r.Len())
	}
	return r.buffer[(pos+r.head)%cap(r.buffer)], nil
}

// GetFirst returns the element at the front of the Buffer. It fails with
// collections.ErrEmpty on an empty buffer.
func (r *Buffer[T]) GetFirst() (T, error) {
	if !r.nonEmpty {
		var zero T
		return zero, errors.Wrap(collections.ErrEmpty, "get first")
	}
	return r.buffer[r.head], nil
}

// GetLast returns the element at the back of the Buffer. It fails with
// collections.ErrEmpty on an empty buffer.
func (r *Buffer[T]) GetLast() (T, error) {
	if !r.nonEmpty {
		var zero T
		return zero, errors.Wrap(collections.ErrEmpty, "get last")
	}
	return r.buffer[(cap(r.buffer)+r.tail-1)%cap(r.buffer)], nil
}

// grow reallocates the ring at capacity n (n > Len()) and re-linearizes it:
// the logical order is preserved but the front lands at index 0, so the old
// wraparound does not carry into the new array.
func (r *Buffer[T]) grow(n int) {
	newBuffer := make([]T, n)
	l := r.Len()
	if r.nonEmpty {
		if r.head < r.tail {
			copy(newBuffer[:l], r.buffer[r.head:r.tail])
		} else {
			copy(newBuffer[:cap(r.buffer)-r.head], r.buffer[r.head:])
			copy(newBuffer[cap(r.buffer)-r.head:l], r.buffer[:r.tail])
		}
	}
	r.head = 0
	r.tail = l
	r.buffer = newBuffer
}

func (r *Buffer[T]) maybeGrow() {
	if r.Len() != cap(r.buffer) {
		return
	}
	n := 2 * cap(r.buffer)
	if n == 0 {
		n = 1
	}
	r.grow(n)
}

// AddFirst adds element to the front of the Buffer and doubles its underlying
// slice if necessary.
func (r *Buffer[T]) AddFirst(element T) {
	r.maybeGrow()
	r.head = (cap(r.buffer) + r.head - 1) % cap(r.buffer)
	r.buffer[r.head] = element
	r.nonEmpty = true
	r.mod++
}

// AddLast adds element to the end of the Buffer and doubles its underlying
// slice if necessary.
func (r *Buffer[T]) AddLast(element T) {
	r.maybeGrow()
	r.buffer[r.tail] = element
	r.tail = (r.tail + 1) % cap(r.buffer)
	r.nonEmpty = true
	r.mod++
}

// RemoveFirst removes and returns the element at the front of the Buffer. It
// fails with collections.ErrEmpty on an empty buffer.
func (r *Buffer[T]) RemoveFirst() (T, error) {
	var zero T
	if r.Len() == 0 {
		return zero, errors.Wrap(collections.ErrEmpty, "remove first")
	}
	out := r.buffer[r.head]
	r.buffer[r.head] = zero
	r.head = (r.head + 1) % cap(r.buffer)
	if r.head == r.tail {
		r.nonEmpty = false
	}
	r.mod++
	return out, nil
}

// RemoveLast removes and returns the element at the end of the Buffer. It
// fails with collections.ErrEmpty on an empty buffer.
func (r *Buffer[T]) RemoveLast() (T, error) {
	var zero T
	if r.Len() == 0 {
		return zero, errors.Wrap(collections.ErrEmpty, "remove last")
	}
	lastPos := (cap(r.buffer) + r.tail - 1) % cap(r.buffer)
	out := r.buffer[lastPos]
	r.buffer[lastPos] = zero
	r.tail = lastPos
	if r.tail == r.head {
		r.nonEmpty = false
	}
	r.mod++
	return out, nil
}

// Reserve reserves the provided number of elements in the Buffer. It is an
// error to reserve a size less than the Buffer's current length.
func (r *Buffer[T]) Reserve(n int) error {
	if n < r.Len() {
		return errors.Newf("reserving %d elements, shorter than current length %d", n, r.Len())
	}
	if n > cap(r.buffer) {
		r.grow(n)
	}
	return nil
}

// Reset makes the Buffer treat its underlying memory as if it were empty.
// This allows for reusing the same memory again without explicitly removing
// old elements. Reset is a structural mutation.
func (r *Buffer[T]) Reset() {
	r.head = 0
	r.tail = 0
	r.nonEmpty = false
	r.mod++
}

// Iter returns a fail-fast iterator over the buffer's elements from front to
// back.
func (r *Buffer[T]) Iter() Iter[T] {
	return Iter[T]{r: r, snapshot: r.mod, pos: -1}
}

// Iter is an iterator over a Buffer.
type Iter[T any] struct {
	r        *Buffer[T]
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
	if it.snapshot != it.r.mod {
		it.err = errors.Wrap(collections.ErrModified, "ring iterator")
		return false
	}
	if it.pos+1 >= it.r.Len() {
		return false
	}
	it.pos++
	it.cur = it.r.buffer[(it.pos+it.r.head)%cap(it.r.buffer)]
	return true
}

// Cur returns the element Next advanced to.
func (it *Iter[T]) Cur() T {
	return it.cur
}

// Err returns collections.ErrModified if the buffer was structurally mutated
// while this iterator was live, nil otherwise.
func (it *Iter[T]) Err() error {
	return it.err
}
