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

// Path is a list of nodes derived from a tree.
// Each node in the list corresponds to a node in the tree, and each is a
// direct sub-node of the previous one: a path follows a pathway through a
// tree from the root towards a leaf.
//
// A Path is a snapshot of fragments and word markers; it does not reference
// live tree nodes and stays valid after the tree changes.
type Path struct {
	root, leaf *PathNode
}

// GetRoot returns the beginning of the Path,
// corresponding to the root of the originating tree.
func (path *Path) GetRoot() *PathNode {
	return path.root
}

// GetLeaf returns the end of the Path,
// which may or may not correspond to a leaf in the originating tree.
func (path *Path) GetLeaf() *PathNode {
	return path.leaf
}

// Word returns the concatenation of the fragments along the path,
// the word or word prefix the path spells.
func (path *Path) Word() string {
	builder := strings.Builder{}
	for node := path.root; node != nil; node = node.next {
		builder.WriteString(node.fragment)
	}
	return builder.String()
}

// Len returns the number of nodes in the path, including the root.
func (path *Path) Len() int {
	count := 0
	for node := path.root; node != nil; node = node.next {
		count++
	}
	return count
}

func (path *Path) prepend(node *PathNode) {
	if path.root == nil {
		path.root, path.leaf = node, node
		return
	}
	node.next = path.root
	path.root.previous = node
	path.root = node
}

// String returns a visual representation of the Path with one node per line.
func (path *Path) String() string {
	return path.GetRoot().ListString()
}

// PathNode is an element in the list of a Path.
type PathNode struct {
	previous, next *PathNode

	// the character or label fragment of the corresponding tree node
	fragment string

	word bool
}

func (node *PathNode) Next() *PathNode {
	return node.next
}

func (node *PathNode) Previous() *PathNode {
	return node.previous
}

// Fragment returns the character or label fragment of the corresponding tree
// node, the empty string for the root.
func (node *PathNode) Fragment() (fragment string) {
	if node != nil {
		fragment = node.fragment
	}
	return
}

// IsWord returns whether the corresponding tree node marked the end of an
// inserted word at the time the path was taken.
func (node *PathNode) IsWord() bool {
	return node != nil && node.word
}

// Returns a visual representation of this node including the fragment, with
// an open circle indicating a non-word node and a closed circle a word node.
func (node *PathNode) String() string {
	if node == nil {
		return nilString()
	}
	circle := nonWordNodeCircle
	if node.word {
		circle = wordNodeCircle
	}
	if node.fragment == "" {
		return circle
	}
	return circle + " " + node.fragment
}

// ListString returns a visual representation of the sub-list with this node
// as root, with one node per line.
func (node *PathNode) ListString() string {
	builder := strings.Builder{}
	builder.WriteByte('\n')
	node.printList(&builder, indents{})
	return builder.String()
}

func (node *PathNode) printList(builder *strings.Builder, inds indents) {
	if node == nil {
		builder.WriteString(inds.nodeIndent)
		builder.WriteString(nilString())
		builder.WriteByte('\n')
		return
	}
	next := node
	for {
		builder.WriteString(inds.nodeIndent)
		builder.WriteString(next.String())
		builder.WriteByte('\n')
		inds.nodeIndent = inds.subNodeInd + rightElbow
		inds.subNodeInd = inds.subNodeInd + belowElbows
		if next = next.next; next == nil {
			break
		}
	}
}
