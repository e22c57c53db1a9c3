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

// Package vector implements a contiguous, index-addressable growable array.
package vector

import (
	"github.com/cockroachdb/collections"
	"github.com/cockroachdb/errors"
)

// defaultCapacity is the capacity allocated by the first append into a
// vector constructed without a capacity hint.
const defaultCapacity = 8

// Vector is a growable array of T. Elements keep their insertion positions;
// duplicates are permitted. Appends are amortized O(1); positional insert and
// removal shift the tail of the array and cost O(n) in the distance from the
// index to the end.
type Vector[T any] struct {
	buf []T // len(buf) is the capacity
	len int
	mod uint64
}

// Option configures a Vector during construction.
type Option[T any] func(*Vector[T]) error

// WithCapacity pre-sizes the vector's backing array for n elements.
func WithCapacity[T any](n int) Option[T] {
	return func(v *Vector[T]) error {
		if n < 0 {
			return errors.Newf("invalid capacity %d", n)
		}
		v.buf = make([]T, n)
		return nil
	}
}

// New constructs an empty Vector.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	v := &Vector[T]{}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.len
}

// Cap returns the capacity of the backing array.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Get returns the element at position i. It fails with
// collections.ErrOutOfRange unless 0 <= i < Len().
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.len {
		var zero T
		return zero, errors.Wrapf(collections.ErrOutOfRange, "index %d, length %d", i, v.len)
	}
	return v.buf[i], nil
}

// Set replaces the element at position i. Replacement is not a structural
// mutation: live iterators stay valid.
func (v *Vector[T]) Set(i int, elem T) error {
	if i < 0 || i >= v.len {
		return errors.Wrapf(collections.ErrOutOfRange, "index %d, length %d", i, v.len)
	}
	v.buf[i] = elem
	return nil
}

// grow reallocates the backing array at double the current capacity and
// copies the live elements over in order.
func (v *Vector[T]) grow() {
	n := 2 * len(v.buf)
	if n == 0 {
		n = defaultCapacity
	}
	newBuf := make([]T, n)
	copy(newBuf, v.buf[:v.len])
	v.buf = newBuf
}

// Append adds elem after the last element.
func (v *Vector[T]) Append(elem T) {
	if v.len == len(v.buf) {
		v.grow()
	}
	v.buf[v.len] = elem
	v.len++
	v.mod++
}

// Insert places elem at position i, shifting the elements at positions >= i
// up by one. i == Len() appends. It fails with collections.ErrOutOfRange
// unless 0 <= i <= Len(), in which case the vector is left untouched.
func (v *Vector[T]) Insert(i int, elem T) error {
	if i < 0 || i > v.len {
		return errors.Wrapf(collections.ErrOutOfRange, "insert index %d, length %d", i, v.len)
	}
	if v.len == len(v.buf) {
		v.grow()
	}
	copy(v.buf[i+1:v.len+1], v.buf[i:v.len])
	v.buf[i] = elem
	v.len++
	v.mod++
	return nil
}

// RemoveAt removes and returns the element at position i, shifting the
// elements at positions > i down by one.
func (v *Vector[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.len {
		return zero, errors.Wrapf(collections.ErrOutOfRange, "index %d, length %d", i, v.len)
	}
	out := v.buf[i]
	copy(v.buf[i:v.len-1], v.buf[i+1:v.len])
	v.len--
	v.buf[v.len] = zero
	v.mod++
	return out, nil
}

// Clear removes every element. The backing array is kept.
func (v *Vector[T]) Clear() {
	var zero T
	for i := 0; i < v.len; i++ {
		v.buf[i] = zero
	}
	v.len = 0
	v.mod++
}

// Iter returns a forward iterator positioned before the first element. It
// honors the fail-fast contract described in the collections package doc.
func (v *Vector[T]) Iter() Iter[T] {
	return Iter[T]{v: v, snapshot: v.mod, pos: -1}
}

// Iter is a forward iterator over a Vector.
type Iter[T any] struct {
	v        *Vector[T]
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
	if it.snapshot != it.v.mod {
		it.err = errors.Wrap(collections.ErrModified, "vector iterator")
		return false
	}
	if it.pos+1 >= it.v.len {
		return false
	}
	it.pos++
	it.cur = it.v.buf[it.pos]
	return true
}

// Cur returns the element Next advanced to.
func (it *Iter[T]) Cur() T {
	return it.cur
}

// Err returns collections.ErrModified if the vector was structurally mutated
// while this iterator was live, nil otherwise.
func (it *Iter[T]) Err() error {
	return it.err
}
