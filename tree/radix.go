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

import "strings"

// RadixTrie is an edge-compressed word trie: each node holds a label that
// may span several characters, and inserting a word that only partially
// matches an existing label splits the node at the shared prefix.
//
// RadixTrie indexes text the same way Trie does, lowercased and split on the
// separator set, and carries the same attached-content model. Unlike Trie it
// has no per-node word marker: a word is contained when its characters
// exactly consume node labels from the root down to some node. Labels
// manufactured by a split therefore also become contained words.
//
// A RadixTrie is not safe for concurrent use. Structural mutation while an
// iterator from the same tree is in progress causes the iterator to panic.
//
// Use NewRadixTrie to create one; the zero value is not usable.
type RadixTrie[V any] struct {
	wordTree[V]

	root *RadixNode[V]
}

// NewRadixTrie creates an empty compressed word trie with the default
// separator set and default content equality.
func NewRadixTrie[V any]() *RadixTrie[V] {
	config := newTreeConfig[V]()
	return &RadixTrie[V]{
		wordTree: wordTree[V]{config: config},
		root:     newRadixNode("", nil, config),
	}
}

// GetRoot returns the sentinel root of this trie.
// The root holds the empty label and is never part of a word.
func (trie *RadixTrie[V]) GetRoot() *RadixNode[V] {
	if trie == nil {
		return nil
	}
	return trie.root
}

// NodeSize returns the number of nodes in the trie including the root.
func (trie *RadixTrie[V]) NodeSize() int {
	return trie.root.nodeCount()
}

// Insert indexes the given text, attaching the given content items to the
// terminal node of each indexed word.
//
// The text is lowercased and split on the separator set; each resulting word
// is inserted independently. Insert returns whether any word was newly
// added. Inserting a word that is already contained only attaches content.
//
// Empty text is a programming error and panics.
func (trie *RadixTrie[V]) Insert(text string, content ...V) bool {
	if text == "" {
		panic("tree: empty word")
	}
	added := false
	for _, word := range trie.config.splitWords(text) {
		if trie.insert(trie.root, word, content) {
			added = true
		}
	}
	return added
}

// insert descends from node with the unconsumed part of the word.
// Invariant on entry: remaining is non-empty, and for a non-root node it
// shares at least its first character with the node's label.
func (trie *RadixTrie[V]) insert(node *RadixNode[V], remaining string, content []V) bool {
	matches := commonPrefixLen(remaining, node.label)
	if matches == len(node.label) {
		// the whole label is consumed; the root always lands here
		if matches == len(remaining) {
			// the word is already represented exactly by this node
			for _, item := range content {
				node.AddContent(item)
			}
			return false
		}
		suffix := remaining[matches:]
		if child, ok := node.childSharing(firstRune(suffix)); ok {
			return trie.insert(child, suffix, content)
		}
		child := newRadixNode(suffix, node, trie.config)
		child.counted = true
		for _, item := range content {
			child.content.Add(item)
		}
		node.children.Add(child)
		trie.size++
		trie.config.cTracker.changed()
		return true
	}
	// genuine partial match inside the label
	trie.split(node, matches, remaining[matches:], content)
	trie.size++
	trie.config.cTracker.changed()
	return true
}

// split shortens the node's label to the matched common prefix and pushes
// the remainder of the original label, together with all of the node's
// children and its own content, down into a new intermediate node. The
// unconsumed input suffix becomes a sibling of that intermediate node, or,
// when the new word is a proper prefix of the original label, the shortened
// node itself becomes the word's terminal node.
//
// The intermediate node is fully built before the original node is touched,
// so every word reachable before the split stays reachable throughout.
func (trie *RadixTrie[V]) split(node *RadixNode[V], matches int, wordRemainder string, content []V) {
	intermediate := newRadixNode(node.label[matches:], node, trie.config)
	intermediate.children = node.children
	intermediate.children.ForEach(func(child *RadixNode[V]) bool {
		child.parent = intermediate
		return true
	})
	intermediate.content = node.content
	// the node's old word now ends at the intermediate
	intermediate.counted = node.counted

	node.label = node.label[:matches]
	node.children = newRadixChildren(trie.config)
	node.content = newContentCollection(trie.config)
	node.children.Add(intermediate)

	if wordRemainder == "" {
		node.counted = true
		for _, item := range content {
			node.content.Add(item)
		}
		return
	}
	node.counted = false
	sibling := newRadixNode(wordRemainder, node, trie.config)
	sibling.counted = true
	for _, item := range content {
		sibling.content.Add(item)
	}
	node.children.Add(sibling)
}

// Contains returns whether the given word is represented in the trie,
// which is the case exactly when the lowercased word consumes node labels
// completely from the root down to some node with nothing left over.
func (trie *RadixTrie[V]) Contains(word string) bool {
	_, found := trie.findExact(normalize(word))
	return found
}

// findExact descends consuming whole labels only,
// returning the node whose path spells the word exactly.
func (trie *RadixTrie[V]) findExact(word string) (*RadixNode[V], bool) {
	if word == "" {
		return nil, false
	}
	node, remaining := trie.root, word
	for remaining != "" {
		child, ok := node.childSharing(firstRune(remaining))
		if !ok || !strings.HasPrefix(remaining, child.label) {
			return nil, false
		}
		remaining = remaining[len(child.label):]
		node = child
	}
	return node, true
}

// Successor returns a best-effort lexicographic neighbor after the given
// word: the trie is descended along matching labels as far as possible, and
// at the point of divergence the accumulated label path is extended with the
// smallest child label. The result approximates, but does not guarantee,
// the next word in sorted order. The second result is false when the trie
// holds nothing on the word's path.
func (trie *RadixTrie[V]) Successor(word string) (string, bool) {
	node, accumulated, _ := trie.descend(normalize(word))
	if smallest, ok := node.smallestChild(); ok {
		return accumulated + smallest.label, true
	}
	if node == trie.root {
		return "", false
	}
	return accumulated, true
}

// Predecessor returns a best-effort lexicographic neighbor before the given
// word: the accumulated prefix consumed on the way down, cut at the point
// where the word stops matching a label. Children past the divergence point
// are not examined. The second result is false when nothing on the word's
// path is present.
func (trie *RadixTrie[V]) Predecessor(word string) (string, bool) {
	node, accumulated, matches := trie.descend(normalize(word))
	if node == trie.root {
		return "", false
	}
	prefix := accumulated[:len(accumulated)-(len(node.label)-matches)]
	if prefix == "" {
		return "", false
	}
	return prefix, true
}

// descend walks down matching edges as far as possible. It returns the node
// where the walk stopped, the concatenation of the labels of every node
// entered including the final one, and how many bytes of the final node's
// label were matched. At the root the accumulation is empty.
func (trie *RadixTrie[V]) descend(word string) (node *RadixNode[V], accumulated string, matches int) {
	node = trie.root
	remaining := word
	for remaining != "" {
		child, ok := node.childSharing(firstRune(remaining))
		if !ok {
			break
		}
		matches = commonPrefixLen(remaining, child.label)
		accumulated += child.label
		node = child
		if matches < len(child.label) {
			break
		}
		remaining = remaining[matches:]
	}
	return
}

// Remove removes the words of the given text, returning whether anything was
// detached. A word is removed only when its terminal node is childless; the
// node is then detached from its parent. No upward pruning cascade follows:
// an ancestor left childless stays in place, and a parent left with a single
// child is not re-compressed. This is deliberately asymmetric with
// Trie.Remove.
//
// A label manufactured by a split is a contained word and can be detached
// like any other, but since it was never inserted, doing so leaves Size
// unchanged.
//
// Empty text is a programming error and panics.
func (trie *RadixTrie[V]) Remove(text string) bool {
	if text == "" {
		panic("tree: empty word")
	}
	removed := false
	for _, word := range trie.config.splitWords(text) {
		if trie.removeWord(word) {
			removed = true
		}
	}
	return removed
}

func (trie *RadixTrie[V]) removeWord(word string) bool {
	node, found := trie.findExact(word)
	if !found || !node.IsLeaf() {
		return false
	}
	node.detach()
	// split-manufactured labels are contained words but were never inserted,
	// so detaching one leaves the word count alone
	if node.counted {
		trie.size--
	}
	trie.config.cTracker.changed()
	return true
}

// RemoveContent detaches every attachment of the given item anywhere in the
// tree, under the configured content equality, independent of word
// structure. It returns whether any node held the item.
func (trie *RadixTrie[V]) RemoveContent(item V) bool {
	return removeRadixContentBelow(trie.root, item)
}

func removeRadixContentBelow[V any](node *RadixNode[V], item V) bool {
	removed := node.RemoveContent(item)
	node.children.ForEach(func(child *RadixNode[V]) bool {
		if removeRadixContentBelow(child, item) {
			removed = true
		}
		return true
	})
	return removed
}

// Words returns an iterator over the words of the trie in child order: every
// root-to-node label concatenation ending at a leaf or at a node carrying
// its own content. Each call starts a fresh walk over the live tree.
// Structural mutation during iteration causes the iterator to panic.
func (trie *RadixTrie[V]) Words() WordIterator {
	return newRadixWordIterator(trie)
}

// Nodes returns an iterator over every node of the trie in depth-first child
// order, starting with the root. Structural mutation during iteration causes
// the iterator to panic.
func (trie *RadixTrie[V]) Nodes() RadixNodeIterator[V] {
	return newRadixNodeIterator(trie)
}

// Clear removes all words, nodes, and content.
func (trie *RadixTrie[V]) Clear() {
	trie.root = newRadixNode("", nil, trie.config)
	trie.size = 0
	trie.config.cTracker.changed()
}

// String returns a visual representation of the tree with one node per line.
func (trie *RadixTrie[V]) String() string {
	if trie == nil {
		return nilString()
	}
	return trie.TreeString()
}

// TreeString returns a visual representation of the tree with one node per
// line, sub-nodes indented below their parents.
func (trie *RadixTrie[V]) TreeString() string {
	return treeString(trie.root)
}
