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

// TrieNode is a node of a Trie, representing a single character of one or
// more inserted words.
//
// The root node is a sentinel whose character is the zero rune and is not
// part of any word. Every other node has exactly one parent. A node owns its
// children exclusively: detaching a node from its parent detaches the whole
// subtree below it.
type TrieNode[V any] struct {
	char     rune
	parent   *TrieNode[V]
	children *Collection[*TrieNode[V]]
	content  *Collection[V]
	word     bool
	config   *treeConfig[V]
}

func newTrieNode[V any](char rune, parent *TrieNode[V], config *treeConfig[V]) *TrieNode[V] {
	node := &TrieNode[V]{
		char:   char,
		parent: parent,
		config: config,
	}
	node.children = NewCollection(func(a, b *TrieNode[V]) bool {
		return a.char == b.char
	})
	// sorted children keep traversal deterministic
	node.children.SortBy(func(a, b *TrieNode[V]) int {
		return int(a.char) - int(b.char)
	})
	node.content = newContentCollection(config)
	return node
}

// Char returns the character this node represents.
// The root sentinel returns the zero rune.
func (node *TrieNode[V]) Char() rune {
	return node.char
}

// Parent returns the parent of this node, or nil for the root.
func (node *TrieNode[V]) Parent() *TrieNode[V] {
	if node == nil {
		return nil
	}
	return node.parent
}

// Depth returns the number of ancestors of this node.
// The root has depth 0 and every other node has its parent's depth plus one.
func (node *TrieNode[V]) Depth() int {
	depth := 0
	for next := node.parent; next != nil; next = next.parent {
		depth++
	}
	return depth
}

// IsRoot returns whether this node is the sentinel root of its tree.
func (node *TrieNode[V]) IsRoot() bool {
	return node.parent == nil
}

// IsLeaf returns whether this node has no children.
func (node *TrieNode[V]) IsLeaf() bool {
	return node.children.Len() == 0
}

// IsWord returns whether the characters from the root down to this node
// spell a word that was inserted and not since removed.
// A word node may still have children when the word is a prefix of a longer word.
func (node *TrieNode[V]) IsWord() bool {
	return node != nil && node.word
}

// Children returns the ordered child collection of this node.
func (node *TrieNode[V]) Children() *Collection[*TrieNode[V]] {
	return node.children
}

// Word returns the word this node represents, the concatenation of the
// characters from the root down to this node.
func (node *TrieNode[V]) Word() string {
	if node == nil || node.parent == nil {
		return ""
	}
	return node.parent.Word() + string(node.char)
}

// OwnContent returns the content items attached directly to this node.
func (node *TrieNode[V]) OwnContent() []V {
	items := make([]V, 0, node.content.Len())
	node.content.ForEach(func(item V) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Content returns the externally visible content of this node.
// When the owning tree has ParentsKnowChildItems set, this is the union of
// the node's own content and the content of all its descendants, computed on
// demand. Otherwise it is the node's own content only.
func (node *TrieNode[V]) Content() []V {
	if !node.config.parentsKnowChildItems {
		return node.OwnContent()
	}
	union := newContentCollection(node.config)
	node.gatherContent(union)
	items := make([]V, 0, union.Len())
	union.ForEach(func(item V) bool {
		items = append(items, item)
		return true
	})
	return items
}

func (node *TrieNode[V]) gatherContent(union *Collection[V]) {
	node.content.ForEach(func(item V) bool {
		union.Add(item)
		return true
	})
	node.children.ForEach(func(child *TrieNode[V]) bool {
		child.gatherContent(union)
		return true
	})
}

// AddContent attaches a content item to this node,
// returning false when an equal item is already attached.
func (node *TrieNode[V]) AddContent(item V) bool {
	if node.content.Add(item) {
		node.config.cTracker.changed()
		return true
	}
	return false
}

// RemoveContent detaches the content item equal to the given one from this
// node only, returning whether it was attached.
func (node *TrieNode[V]) RemoveContent(item V) bool {
	if node.content.Remove(item) {
		node.config.cTracker.changed()
		return true
	}
	return false
}

// detach removes this node from its parent, dropping the subtree below it.
// Detaching the root is a structural violation and panics.
func (node *TrieNode[V]) detach() {
	if node.parent == nil {
		panic("tree: cannot detach the root node")
	}
	node.parent.children.Remove(node)
	node.parent = nil
}

// getChild returns the child representing the given character, if any.
func (node *TrieNode[V]) getChild(char rune) (*TrieNode[V], bool) {
	return node.children.Find(func(child *TrieNode[V]) bool {
		return child.char == char
	})
}

// String returns a visual representation of this node,
// a filled circle for word nodes and an open circle otherwise.
func (node *TrieNode[V]) String() string {
	if node == nil {
		return nilString()
	}
	circle := nonWordNodeCircle
	if node.word {
		circle = wordNodeCircle
	}
	if node.parent == nil {
		return circle
	}
	return circle + " " + string(node.char)
}

func (node *TrieNode[V]) subNodes() []fmtNode {
	subs := make([]fmtNode, 0, node.children.Len())
	node.children.ForEach(func(child *TrieNode[V]) bool {
		subs = append(subs, child)
		return true
	})
	return subs
}

func (node *TrieNode[V]) nodeCount() int {
	count := 1
	node.children.ForEach(func(child *TrieNode[V]) bool {
		count += child.nodeCount()
		return true
	})
	return count
}
