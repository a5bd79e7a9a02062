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

// RadixNode is a node of a RadixTrie. Unlike a TrieNode it holds a label
// spanning one or more characters; the word a node represents is the
// concatenation of the labels from the root down to it.
//
// The root node is a sentinel with an empty label. No two sibling labels
// share a first character; inserting a word that partially matches an
// existing label splits the node instead.
type RadixNode[V any] struct {
	label    string
	parent   *RadixNode[V]
	children *Collection[*RadixNode[V]]
	content  *Collection[V]
	config   *treeConfig[V]

	// counted marks nodes created as insertion terminals, as opposed to
	// labels manufactured by a split; only those contribute to the word count
	counted bool
}

func newRadixNode[V any](label string, parent *RadixNode[V], config *treeConfig[V]) *RadixNode[V] {
	node := &RadixNode[V]{
		label:  label,
		parent: parent,
		config: config,
	}
	node.children = newRadixChildren(config)
	node.content = newContentCollection(config)
	return node
}

func newRadixChildren[V any](config *treeConfig[V]) *Collection[*RadixNode[V]] {
	children := NewCollection(func(a, b *RadixNode[V]) bool {
		return a.label == b.label
	})
	children.SortBy(func(a, b *RadixNode[V]) int {
		switch {
		case a.label < b.label:
			return -1
		case a.label > b.label:
			return 1
		}
		return 0
	})
	return children
}

// Label returns the string fragment this node represents.
// The root sentinel returns the empty string.
func (node *RadixNode[V]) Label() string {
	if node == nil {
		return ""
	}
	return node.label
}

// Parent returns the parent of this node, or nil for the root.
func (node *RadixNode[V]) Parent() *RadixNode[V] {
	if node == nil {
		return nil
	}
	return node.parent
}

// Depth returns the number of ancestors of this node. Depth counts nodes,
// not characters: a label spanning several characters still adds one level.
func (node *RadixNode[V]) Depth() int {
	depth := 0
	for next := node.parent; next != nil; next = next.parent {
		depth++
	}
	return depth
}

// IsRoot returns whether this node is the sentinel root of its tree.
func (node *RadixNode[V]) IsRoot() bool {
	return node.parent == nil
}

// IsLeaf returns whether this node has no children.
func (node *RadixNode[V]) IsLeaf() bool {
	return node.children.Len() == 0
}

// Children returns the ordered child collection of this node.
func (node *RadixNode[V]) Children() *Collection[*RadixNode[V]] {
	return node.children
}

// Word returns the concatenation of the labels from the root down to this node.
func (node *RadixNode[V]) Word() string {
	if node == nil || node.parent == nil {
		return ""
	}
	return node.parent.Word() + node.label
}

// OwnContent returns the content items attached directly to this node.
func (node *RadixNode[V]) OwnContent() []V {
	items := make([]V, 0, node.content.Len())
	node.content.ForEach(func(item V) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Content returns the externally visible content of this node, the union of
// own and descendant content when the owning tree has ParentsKnowChildItems
// set, otherwise the node's own content only.
func (node *RadixNode[V]) Content() []V {
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

func (node *RadixNode[V]) gatherContent(union *Collection[V]) {
	node.content.ForEach(func(item V) bool {
		union.Add(item)
		return true
	})
	node.children.ForEach(func(child *RadixNode[V]) bool {
		child.gatherContent(union)
		return true
	})
}

// AddContent attaches a content item to this node,
// returning false when an equal item is already attached.
func (node *RadixNode[V]) AddContent(item V) bool {
	if node.content.Add(item) {
		node.config.cTracker.changed()
		return true
	}
	return false
}

// RemoveContent detaches the content item equal to the given one from this
// node only, returning whether it was attached.
func (node *RadixNode[V]) RemoveContent(item V) bool {
	if node.content.Remove(item) {
		node.config.cTracker.changed()
		return true
	}
	return false
}

// detach removes this node from its parent, dropping the subtree below it.
// Detaching the root is a structural violation and panics.
func (node *RadixNode[V]) detach() {
	if node.parent == nil {
		panic("tree: cannot detach the root node")
	}
	node.parent.children.Remove(node)
	node.parent = nil
}

// childSharing returns the child whose label starts with the given character.
// Sibling labels never share a first character, so at most one child matches.
func (node *RadixNode[V]) childSharing(char rune) (*RadixNode[V], bool) {
	return node.children.Find(func(child *RadixNode[V]) bool {
		return firstRune(child.label) == char
	})
}

// smallestChild returns the child with the lexicographically smallest label.
func (node *RadixNode[V]) smallestChild() (*RadixNode[V], bool) {
	if node.children.Len() == 0 {
		return nil, false
	}
	return node.children.At(0), true
}

// String returns a visual representation of this node,
// a filled circle for content-bearing nodes and an open circle otherwise.
func (node *RadixNode[V]) String() string {
	if node == nil {
		return nilString()
	}
	circle := nonWordNodeCircle
	if node.content.Len() > 0 {
		circle = wordNodeCircle
	}
	if node.parent == nil {
		return circle
	}
	return circle + " " + node.label
}

func (node *RadixNode[V]) subNodes() []fmtNode {
	subs := make([]fmtNode, 0, node.children.Len())
	node.children.ForEach(func(child *RadixNode[V]) bool {
		subs = append(subs, child)
		return true
	})
	return subs
}

func (node *RadixNode[V]) nodeCount() int {
	count := 1
	node.children.ForEach(func(child *RadixNode[V]) bool {
		count += child.nodeCount()
		return true
	})
	return count
}
