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

// Package list implements a doubly linked list of T.
//
// The API follows container/list: pushes return the inserted *Element, and an
// element reference makes removal and neighbor insertion O(1). The same chain
// serves as a stack (PushFront/PopFront) or a FIFO queue (PushBack/PopFront).
package list

import (
	"github.com/cockroachdb/collections"
	"github.com/cockroachdb/errors"
)

// Element is a node of a List.
type Element[T any] struct {
	// next and prev point within the ring that root closes; the forward
	// direction owns the chain, prev is a traversal back-reference only.
	next, prev *Element[T]
	list       *List[T]

	// Value is the element's payload.
	Value T
}

// Next returns the next list element or nil. Navigation through Element is
// unchecked; use List.Iter for fail-fast traversal.
func (e *Element[T]) Next() *Element[T] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List is a doubly linked list. The zero value is not usable; call New.
type List[T any] struct {
	root Element[T] // sentinel; root.next is the head, root.prev the tail
	len  int
	mod  uint64
}

// New constructs an empty List.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of the list or nil.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// insert inserts e after at, increments l.len, and returns e.
func (l *List[T]) insert(e, at *Element[T]) *Element[T] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	l.mod++
	return e
}

// remove unlinks e from its list and decrements l.len.
func (l *List[T]) remove(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
	l.mod++
}

// PushFront inserts a new element with value v at the front of the list and
// returns it.
func (l *List[T]) PushFront(v T) *Element[T] {
	return l.insert(&Element[T]{Value: v}, &l.root)
}

// PushBack inserts a new element with value v at the back of the list and
// returns it.
func (l *List[T]) PushBack(v T) *Element[T] {
	return l.insert(&Element[T]{Value: v}, l.root.prev)
}

// PopFront removes and returns the value at the front of the list. It fails
// with collections.ErrEmpty on an empty list.
func (l *List[T]) PopFront() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, errors.Wrap(collections.ErrEmpty, "pop front")
	}
	e := l.root.next
	l.remove(e)
	return e.Value, nil
}

// PopBack removes and returns the value at the back of the list. It fails
// with collections.ErrEmpty on an empty list.
func (l *List[T]) PopBack() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, errors.Wrap(collections.ErrEmpty, "pop back")
	}
	e := l.root.prev
	l.remove(e)
	return e.Value, nil
}

// InsertAfter inserts a new element with value v immediately after mark and
// returns it. If mark is not an element of l, the list is not modified and
// nil is returned.
func (l *List[T]) InsertAfter(v T, mark *Element[T]) *Element[T] {
	if mark.list != l {
		return nil
	}
	return l.insert(&Element[T]{Value: v}, mark)
}

// InsertBefore inserts a new element with value v immediately before mark and
// returns it. If mark is not an element of l, the list is not modified and
// nil is returned.
func (l *List[T]) InsertBefore(v T, mark *Element[T]) *Element[T] {
	if mark.list != l {
		return nil
	}
	return l.insert(&Element[T]{Value: v}, mark.prev)
}

// Remove removes e from l and returns its value. e must be an element of l;
// removing an element that belongs to another list (or was already removed)
// leaves l untouched and returns the zero value.
func (l *List[T]) Remove(e *Element[T]) T {
	var zero T
	if e.list != l {
		return zero
	}
	l.remove(e)
	v := e.Value
	e.Value = zero
	return v
}

// Clear removes every element.
func (l *List[T]) Clear() {
	// Unlink eagerly so removed elements cannot resurrect the chain.
	for e := l.root.next; e != &l.root; {
		next := e.next
		e.next, e.prev, e.list = nil, nil, nil
		e = next
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	l.mod++
}

// Iter returns a fail-fast forward iterator over the list's values.
func (l *List[T]) Iter() Iter[T] {
	return Iter[T]{l: l, snapshot: l.mod, next: l.root.next}
}

// Iter is a forward iterator over a List.
type Iter[T any] struct {
	l        *List[T]
	snapshot uint64
	next     *Element[T]
	cur      T
	err      error
}

// Next advances to the next element, returning false when the iteration is
// done or has failed. Check Err after the loop.
func (it *Iter[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.snapshot != it.l.mod {
		it.err = errors.Wrap(collections.ErrModified, "list iterator")
		return false
	}
	if it.next == &it.l.root {
		return false
	}
	it.cur = it.next.Value
	it.next = it.next.next
	return true
}

// Cur returns the value Next advanced to.
func (it *Iter[T]) Cur() T {
	return it.cur
}

// Err returns collections.ErrModified if the list was structurally mutated
// while this iterator was live, nil otherwise.
func (it *Iter[T]) Err() error {
	return it.err
}
