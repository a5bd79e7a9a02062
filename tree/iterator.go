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

// WordIterator iterates lazily through the words of a tree in depth-first
// child order. The walk is recomputed for each iterator; it is not a
// reusable cursor.
type WordIterator interface {
	HasNext() bool

	// Next returns the next word. It panics when HasNext is false and when
	// the originating tree was structurally modified since the iterator was
	// created.
	Next() string
}

// TrieNodeIterator iterates through the nodes of a Trie in depth-first child
// order, the root first.
type TrieNodeIterator[V any] interface {
	HasNext() bool
	Next() *TrieNode[V]
}

// RadixNodeIterator iterates through the nodes of a RadixTrie in depth-first
// child order, the root first.
type RadixNodeIterator[V any] interface {
	HasNext() bool
	Next() *RadixNode[V]
}

func checkNotChanged(tracker *changeTracker, change uint64) {
	if tracker.changedSince(change) {
		panic("tree: structural modification during iteration")
	}
}

// trieFrame is one pending step of an explicit-stack walk, carrying the word
// spelled from the root down to (and including) the frame's node.
type trieFrame[V any] struct {
	node *TrieNode[V]
	word string
}

type trieWordIterator[V any] struct {
	stack   []trieFrame[V]
	next    string
	hasNext bool
	tracker *changeTracker
	change  uint64
}

func newTrieWordIterator[V any](trie *Trie[V]) *trieWordIterator[V] {
	iterator := &trieWordIterator[V]{
		stack:   []trieFrame[V]{{node: trie.root}},
		tracker: trie.config.cTracker,
		change:  trie.config.cTracker.currentChange(),
	}
	iterator.advance()
	return iterator
}

func (iterator *trieWordIterator[V]) HasNext() bool {
	return iterator.hasNext
}

func (iterator *trieWordIterator[V]) Next() string {
	if !iterator.hasNext {
		panic("tree: iteration past the end")
	}
	checkNotChanged(iterator.tracker, iterator.change)
	next := iterator.next
	iterator.advance()
	return next
}

func (iterator *trieWordIterator[V]) advance() {
	for len(iterator.stack) > 0 {
		top := len(iterator.stack) - 1
		frame := iterator.stack[top]
		iterator.stack = iterator.stack[:top]
		pushTrieChildren(&iterator.stack, frame)
		node := frame.node
		if node.parent != nil && (node.IsLeaf() || node.word) {
			iterator.next, iterator.hasNext = frame.word, true
			return
		}
	}
	iterator.next, iterator.hasNext = "", false
}

// pushTrieChildren pushes the frame's children in reverse child order,
// so the lowest character is popped first.
func pushTrieChildren[V any](stack *[]trieFrame[V], frame trieFrame[V]) {
	children := frame.node.children
	for i := children.Len() - 1; i >= 0; i-- {
		child := children.At(i)
		*stack = append(*stack, trieFrame[V]{
			node: child,
			word: frame.word + string(child.char),
		})
	}
}

type trieNodeIterator[V any] struct {
	stack   []*TrieNode[V]
	tracker *changeTracker
	change  uint64
}

func newTrieNodeIterator[V any](trie *Trie[V]) *trieNodeIterator[V] {
	return &trieNodeIterator[V]{
		stack:   []*TrieNode[V]{trie.root},
		tracker: trie.config.cTracker,
		change:  trie.config.cTracker.currentChange(),
	}
}

func (iterator *trieNodeIterator[V]) HasNext() bool {
	return len(iterator.stack) > 0
}

func (iterator *trieNodeIterator[V]) Next() *TrieNode[V] {
	if len(iterator.stack) == 0 {
		panic("tree: iteration past the end")
	}
	checkNotChanged(iterator.tracker, iterator.change)
	top := len(iterator.stack) - 1
	node := iterator.stack[top]
	iterator.stack = iterator.stack[:top]
	for i := node.children.Len() - 1; i >= 0; i-- {
		iterator.stack = append(iterator.stack, node.children.At(i))
	}
	return node
}

type radixFrame[V any] struct {
	node *RadixNode[V]
	word string
}

type radixWordIterator[V any] struct {
	stack   []radixFrame[V]
	next    string
	hasNext bool
	tracker *changeTracker
	change  uint64
}

func newRadixWordIterator[V any](trie *RadixTrie[V]) *radixWordIterator[V] {
	iterator := &radixWordIterator[V]{
		stack:   []radixFrame[V]{{node: trie.root}},
		tracker: trie.config.cTracker,
		change:  trie.config.cTracker.currentChange(),
	}
	iterator.advance()
	return iterator
}

func (iterator *radixWordIterator[V]) HasNext() bool {
	return iterator.hasNext
}

func (iterator *radixWordIterator[V]) Next() string {
	if !iterator.hasNext {
		panic("tree: iteration past the end")
	}
	checkNotChanged(iterator.tracker, iterator.change)
	next := iterator.next
	iterator.advance()
	return next
}

func (iterator *radixWordIterator[V]) advance() {
	for len(iterator.stack) > 0 {
		top := len(iterator.stack) - 1
		frame := iterator.stack[top]
		iterator.stack = iterator.stack[:top]
		children := frame.node.children
		for i := children.Len() - 1; i >= 0; i-- {
			child := children.At(i)
			iterator.stack = append(iterator.stack, radixFrame[V]{
				node: child,
				word: frame.word + child.label,
			})
		}
		node := frame.node
		if node.parent != nil && (node.IsLeaf() || node.content.Len() > 0) {
			iterator.next, iterator.hasNext = frame.word, true
			return
		}
	}
	iterator.next, iterator.hasNext = "", false
}

type radixNodeIterator[V any] struct {
	stack   []*RadixNode[V]
	tracker *changeTracker
	change  uint64
}

func newRadixNodeIterator[V any](trie *RadixTrie[V]) *radixNodeIterator[V] {
	return &radixNodeIterator[V]{
		stack:   []*RadixNode[V]{trie.root},
		tracker: trie.config.cTracker,
		change:  trie.config.cTracker.currentChange(),
	}
}

func (iterator *radixNodeIterator[V]) HasNext() bool {
	return len(iterator.stack) > 0
}

func (iterator *radixNodeIterator[V]) Next() *RadixNode[V] {
	if len(iterator.stack) == 0 {
		panic("tree: iteration past the end")
	}
	checkNotChanged(iterator.tracker, iterator.change)
	top := len(iterator.stack) - 1
	node := iterator.stack[top]
	iterator.stack = iterator.stack[:top]
	for i := node.children.Len() - 1; i >= 0; i-- {
		iterator.stack = append(iterator.stack, node.children.At(i))
	}
	return node
}
