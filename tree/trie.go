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

// Trie is a word trie with one node per character.
//
// Inserted text is lowercased and split on a configurable separator set into
// independent words before indexing. Each node of a word is a single
// character; children are kept sorted by character so traversal order is
// deterministic.
//
// Each node can hold attached content items, making Trie an associative trie.
// Content equality defaults to Go interface equality and may be replaced with
// SetContentEquality for payload types that need a custom rule.
//
// A Trie is not safe for concurrent use. Structural mutation while an
// iterator from the same tree is in progress causes the iterator to panic.
//
// Use NewTrie to create one; the zero value is not usable.
type Trie[V any] struct {
	wordTree[V]

	root *TrieNode[V]
}

// NewTrie creates an empty word trie with the default separator set and
// default content equality.
func NewTrie[V any]() *Trie[V] {
	config := newTreeConfig[V]()
	return &Trie[V]{
		wordTree: wordTree[V]{config: config},
		root:     newTrieNode(0, nil, config),
	}
}

// GetRoot returns the sentinel root of this trie.
// The root represents no character and is never part of a word.
func (trie *Trie[V]) GetRoot() *TrieNode[V] {
	if trie == nil {
		return nil
	}
	return trie.root
}

// NodeSize returns the number of nodes in the trie including the root,
// which is always more than the number of words in a non-empty trie.
func (trie *Trie[V]) NodeSize() int {
	return trie.root.nodeCount()
}

// Insert indexes the given text, attaching the given content items to the
// terminal node of each indexed word.
//
// The text is lowercased and split on the separator set; each resulting word
// is inserted independently. Insert returns whether any word was newly added.
// Inserting a word twice adds nothing and does not grow the size.
//
// Empty text is a programming error and panics.
func (trie *Trie[V]) Insert(text string, content ...V) bool {
	if text == "" {
		panic("tree: empty word")
	}
	added := false
	for _, word := range trie.config.splitWords(text) {
		if trie.insertWord(word, content) {
			added = true
		}
	}
	return added
}

func (trie *Trie[V]) insertWord(word string, content []V) bool {
	node := trie.root
	for _, char := range word {
		child, ok := node.getChild(char)
		if !ok {
			child = newTrieNode(char, node, trie.config)
			node.children.Add(child)
			trie.config.cTracker.changed()
		}
		node = child
	}
	added := !node.word
	if added {
		node.word = true
		trie.size++
		trie.config.cTracker.changed()
	}
	for _, item := range content {
		node.AddContent(item)
	}
	return added
}

// Contains returns whether the given word was inserted and not since removed.
// The word is lowercased before matching. A word that is merely a prefix of
// inserted words is not contained.
func (trie *Trie[V]) Contains(word string) bool {
	node, matched := trie.findNode(normalize(word))
	return matched && node.word
}

// FindNode walks the given prefix as far as it matches and returns the
// deepest matched node, without ever creating nodes. When the full prefix is
// not present the walk stops early and the last matched node is returned, so
// callers can continue from the longest indexed prefix. The root is returned
// when nothing matches.
func (trie *Trie[V]) FindNode(prefix string) *TrieNode[V] {
	node, _ := trie.findNode(normalize(prefix))
	return node
}

// findNode returns the deepest node on the path of word,
// and whether the whole word was consumed.
func (trie *Trie[V]) findNode(word string) (*TrieNode[V], bool) {
	node := trie.root
	for _, char := range word {
		child, ok := node.getChild(char)
		if !ok {
			return node, false
		}
		node = child
	}
	return node, node != trie.root
}

// Remove removes the words of the given text from the trie, returning
// whether any word was removed. The text is normalized and split exactly as
// Insert does, so Insert followed by Remove of the same text is symmetric.
//
// After a word is unmarked, ancestors that are now childless, unmarked, and
// hold no content are pruned, walking upward until a non-prunable ancestor or
// the root is reached. Content attached to surviving nodes is untouched;
// removing content is a separate operation, RemoveContent.
//
// Empty text is a programming error and panics.
func (trie *Trie[V]) Remove(text string) bool {
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

func (trie *Trie[V]) removeWord(word string) bool {
	node, matched := trie.findNode(word)
	if !matched || !node.word {
		return false
	}
	node.word = false
	trie.size--
	for node.parent != nil && node.IsLeaf() && !node.word && node.content.Len() == 0 {
		parent := node.parent
		node.detach()
		node = parent
	}
	trie.config.cTracker.changed()
	return true
}

// RemoveContent detaches every attachment of the given item anywhere in the
// tree, under the configured content equality. It returns whether any node
// held the item. Word membership is unaffected.
func (trie *Trie[V]) RemoveContent(item V) bool {
	return removeContentBelow(trie.root, item)
}

func removeContentBelow[V any](node *TrieNode[V], item V) bool {
	removed := node.RemoveContent(item)
	node.children.ForEach(func(child *TrieNode[V]) bool {
		if removeContentBelow(child, item) {
			removed = true
		}
		return true
	})
	return removed
}

// PathTo walks the given prefix as far as it matches and returns the pathway
// from the root to the deepest matched node as a Path.
func (trie *Trie[V]) PathTo(prefix string) *Path {
	path := &Path{}
	node, _ := trie.findNode(normalize(prefix))
	for ; node != nil; node = node.parent {
		fragment := ""
		if node.parent != nil {
			fragment = string(node.char)
		}
		path.prepend(&PathNode{fragment: fragment, word: node.word})
	}
	return path
}

// Words returns an iterator over every word in the trie, in child order.
// Each call starts a fresh depth-first walk; nothing is copied, so the walk
// reflects the live tree. Structural mutation during iteration causes the
// iterator to panic.
func (trie *Trie[V]) Words() WordIterator {
	return newTrieWordIterator(trie)
}

// Nodes returns an iterator over every node of the trie in depth-first child
// order, starting with the root. Structural mutation during iteration causes
// the iterator to panic.
func (trie *Trie[V]) Nodes() TrieNodeIterator[V] {
	return newTrieNodeIterator(trie)
}

// Clear removes all words, nodes, and content.
func (trie *Trie[V]) Clear() {
	trie.root = newTrieNode(0, nil, trie.config)
	trie.size = 0
	trie.config.cTracker.changed()
}

// String returns a visual representation of the tree with one node per line.
func (trie *Trie[V]) String() string {
	if trie == nil {
		return nilString()
	}
	return trie.TreeString()
}

// TreeString returns a visual representation of the tree with one node per
// line, sub-nodes indented below their parents.
func (trie *Trie[V]) TreeString() string {
	return treeString(trie.root)
}
