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

import (
	"strings"
	"unicode/utf8"
)

// EqualFunc reports whether two items are considered equal.
type EqualFunc[T any] func(a, b T) bool

// CompareFunc returns a negative number when a sorts before b,
// zero when they sort the same, and a positive number when a sorts after b.
type CompareFunc[T any] func(a, b T) int

// DefaultSeparators is the separator set used by trees unless SetSeparators is called.
const DefaultSeparators = " .,;()[]{}/\\-_"

// treeConfig is shared by a tree and every node it owns.
// Nodes consult it when computing their externally visible content.
type treeConfig[V any] struct {
	cTracker *changeTracker

	// contentEquals is the equality rule for attached content items
	contentEquals EqualFunc[V]

	// parentsKnowChildItems, when set, makes a node's visible content
	// the union of its own content and all descendant content
	parentsKnowChildItems bool

	separators map[rune]struct{}
}

func newTreeConfig[V any]() *treeConfig[V] {
	cfg := &treeConfig[V]{
		cTracker: &changeTracker{},
		contentEquals: func(a, b V) bool {
			return any(a) == any(b)
		},
	}
	cfg.setSeparators(DefaultSeparators)
	return cfg
}

// newContentCollection creates a content list that indirects through the
// config on every equality check, so a later SetContentEquality call applies
// to nodes that already exist.
func newContentCollection[V any](config *treeConfig[V]) *Collection[V] {
	return NewCollection(func(a, b V) bool {
		return config.contentEquals(a, b)
	})
}

func (cfg *treeConfig[V]) setSeparators(separators string) {
	set := make(map[rune]struct{}, len(separators))
	for _, r := range separators {
		set[r] = struct{}{}
	}
	cfg.separators = set
}

// splitWords normalizes raw caller input: lowercase, then split into
// independent sub-words on the configured separator set.
func (cfg *treeConfig[V]) splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		_, ok := cfg.separators[r]
		return ok
	})
}

// normalize lowercases a single word without separator splitting,
// for the query operations that match one word at a time.
func normalize(word string) string {
	return strings.ToLower(word)
}

// commonPrefixLen returns the byte length of the longest common prefix of a and b,
// always aligned on a rune boundary.
func commonPrefixLen(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) {
		ra, size := utf8.DecodeRuneInString(a[i:])
		rb, _ := utf8.DecodeRuneInString(b[i:])
		if ra != rb {
			break
		}
		i += size
	}
	return i
}

// firstRune returns the first rune of s, which must be non-empty.
func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// wordTree carries the state shared by both tree variants:
// the word counter and the per-tree configuration handed to every node.
type wordTree[V any] struct {
	size   int
	config *treeConfig[V]
}

// Size returns the number of distinct words currently in the tree.
func (tree *wordTree[V]) Size() int {
	return tree.size
}

// IsEmpty returns whether the tree holds no words.
func (tree *wordTree[V]) IsEmpty() bool {
	return tree.size == 0
}

// SetSeparators replaces the separator set used to split inserted text into words.
func (tree *wordTree[V]) SetSeparators(separators string) {
	tree.config.setSeparators(separators)
}

// SetContentEquality replaces the equality rule for attached content items.
// The new rule takes effect immediately for every node in the tree, existing
// nodes included; items already attached are not re-deduplicated against each
// other. A nil rule is a programming error and panics.
func (tree *wordTree[V]) SetContentEquality(equals EqualFunc[V]) {
	if equals == nil {
		panic("tree: nil equality function")
	}
	tree.config.contentEquals = equals
}

// SetParentsKnowChildItems toggles content aggregation: when set, the visible
// content of every node includes the content of all its descendants.
func (tree *wordTree[V]) SetParentsKnowChildItems(know bool) {
	tree.config.parentsKnowChildItems = know
}

// ParentsKnowChildItems returns whether content aggregation is enabled.
func (tree *wordTree[V]) ParentsKnowChildItems() bool {
	return tree.config.parentsKnowChildItems
}

// changeTracker detects structural modification of a tree while one of its
// iterators is in progress. Each structural change bumps the current change.
type changeTracker struct {
	current uint64
}

func (tracker *changeTracker) changed() {
	tracker.current++
}

func (tracker *changeTracker) currentChange() uint64 {
	return tracker.current
}

func (tracker *changeTracker) changedSince(change uint64) bool {
	return tracker.current != change
}
