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

// Package ordered provides the comparator capability the ordered engines
// (ordmap, heap) are parameterized over. Containers never reach into their
// element type for ordering; the comparator is an explicit function value
// supplied at construction.
package ordered

import "golang.org/x/exp/constraints"

// CompareFn is a total order over K. It returns a negative value if a sorts
// before b, zero if the two are equivalent, and a positive value otherwise.
// The function must be transitive and antisymmetric; containers do not check
// this, and handing them an inconsistent comparator leaves their behavior
// undefined.
type CompareFn[K any] func(a, b K) int

// Compare is the natural order for types that support < directly.
func Compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reverse inverts cmp. Handing heap.New a reversed comparator turns the
// min-heap into a max-heap.
func Reverse[K any](cmp CompareFn[K]) CompareFn[K] {
	return func(a, b K) int { return cmp(b, a) }
}
