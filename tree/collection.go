//
// Copyright 2022 Sean C Foley
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

package tree

import "sort"

// Collection is an ordered collection whose membership is unique under a
// caller-supplied equality rule.
//
// Items iterate in insertion order until a comparator is installed with SortBy,
// after which the comparator order is re-applied on every structural change.
//
// Trees use collections both for the child nodes of each tree node and for
// the content items attached to a node.
type Collection[T any] struct {
	items  []T
	equals EqualFunc[T]
	cmp    CompareFunc[T]
}

// NewCollection creates an empty collection using the given equality rule.
// A nil equality function is a programming error and panics.
func NewCollection[T any](equals EqualFunc[T]) *Collection[T] {
	if equals == nil {
		panic("tree: nil equality function")
	}
	return &Collection[T]{equals: equals}
}

// Add appends the item, returning false without modification when an equal
// item is already present.
func (collection *Collection[T]) Add(item T) bool {
	for _, existing := range collection.items {
		if collection.equals(existing, item) {
			return false
		}
	}
	collection.items = append(collection.items, item)
	collection.resort()
	return true
}

// Remove removes the item equal to the given one, returning whether it was present.
func (collection *Collection[T]) Remove(item T) bool {
	for i, existing := range collection.items {
		if collection.equals(existing, item) {
			collection.items = append(collection.items[:i], collection.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all items.
func (collection *Collection[T]) Clear() {
	collection.items = nil
}

// Contains reports whether any item matches the given predicate.
// A nil predicate is a programming error and panics.
func (collection *Collection[T]) Contains(match func(T) bool) bool {
	_, found := collection.Find(match)
	return found
}

// Find returns the first item matching the given predicate.
// A nil predicate is a programming error and panics.
func (collection *Collection[T]) Find(match func(T) bool) (result T, found bool) {
	if match == nil {
		panic("tree: nil predicate")
	}
	for _, item := range collection.items {
		if match(item) {
			return item, true
		}
	}
	return
}

// Len returns the number of items.
func (collection *Collection[T]) Len() int {
	if collection == nil {
		return 0
	}
	return len(collection.items)
}

// At returns the item at the given position in iteration order.
func (collection *Collection[T]) At(index int) T {
	return collection.items[index]
}

// ForEach visits each item in iteration order until the visitor returns false.
func (collection *Collection[T]) ForEach(visit func(T) bool) {
	for _, item := range collection.items {
		if !visit(item) {
			return
		}
	}
}

// SortBy installs a comparator, sorting the collection immediately and again
// after every subsequent structural change.
func (collection *Collection[T]) SortBy(cmp CompareFunc[T]) {
	collection.cmp = cmp
	collection.resort()
}

func (collection *Collection[T]) resort() {
	if collection.cmp == nil {
		return
	}
	sort.SliceStable(collection.items, func(i, j int) bool {
		return collection.cmp(collection.items[i], collection.items[j]) < 0
	})
}
