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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childLabels[V any](node *RadixNode[V]) []string {
	labels := make([]string, 0, node.Children().Len())
	node.Children().ForEach(func(child *RadixNode[V]) bool {
		labels = append(labels, child.Label())
		return true
	})
	return labels
}

func radixChild[V any](t *testing.T, node *RadixNode[V], label string) *RadixNode[V] {
	t.Helper()
	child, found := node.Children().Find(func(child *RadixNode[V]) bool {
		return child.Label() == label
	})
	require.True(t, found, "expected child %q under %q", label, node.Label())
	return child
}

func TestRadixInsertWithoutSharedPrefix(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("cat")
	trie.Insert("dog")

	assert.Equal(t, []string{"cat", "dog"}, childLabels(trie.GetRoot()))
	assert.True(t, trie.Contains("cat"))
	assert.True(t, trie.Contains("dog"))
	assert.False(t, trie.Contains("ca"))
	assert.Equal(t, 2, trie.Size())
}

func TestRadixInsertSplitsOnPartialMatch(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test")
	trie.Insert("team")

	root := trie.GetRoot()
	require.Equal(t, []string{"te"}, childLabels(root))
	te := radixChild(t, root, "te")
	assert.ElementsMatch(t, []string{"st", "am"}, childLabels(te))

	assert.True(t, trie.Contains("test"))
	assert.True(t, trie.Contains("team"))
	assert.True(t, trie.Contains("te"), "a split branch point is exactly consumable")
	assert.False(t, trie.Contains("tea"))
	assert.False(t, trie.Contains("testing"))
}

func TestRadixSplitPreservesDescendants(t *testing.T) {
	trie := NewRadixTrie[string]()
	words := []string{"romane", "romanus", "romulus", "rubens", "ruber", "rubicon"}
	for _, word := range words {
		trie.Insert(word)
		for _, inserted := range words {
			if inserted == word {
				break
			}
			require.True(t, trie.Contains(inserted), "%q lost after inserting %q", inserted, word)
		}
	}
	for _, word := range words {
		assert.True(t, trie.Contains(word))
	}
}

func TestRadixSplitStructure(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("romane")
	trie.Insert("romanus")
	trie.Insert("romulus")

	root := trie.GetRoot()
	rom := radixChild(t, root, "rom")
	assert.ElementsMatch(t, []string{"an", "ulus"}, childLabels(rom))
	an := radixChild(t, rom, "an")
	assert.ElementsMatch(t, []string{"e", "us"}, childLabels(an))
}

func TestRadixWordAsProperPrefixOfLabel(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test")
	trie.Insert("te", "marker")

	root := trie.GetRoot()
	te := radixChild(t, root, "te")
	assert.Equal(t, []string{"st"}, childLabels(te))
	assert.Equal(t, []string{"marker"}, te.OwnContent())
	assert.True(t, trie.Contains("te"))
	assert.True(t, trie.Contains("test"))
}

func TestRadixSplitMovesContentToIntermediate(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test", "suite")
	trie.Insert("team", "crew")

	root := trie.GetRoot()
	te := radixChild(t, root, "te")
	assert.Empty(t, te.OwnContent())
	assert.Equal(t, []string{"suite"}, radixChild(t, te, "st").OwnContent())
	assert.Equal(t, []string{"crew"}, radixChild(t, te, "am").OwnContent())
}

func TestRadixDuplicateInsertOnlyAttachesContent(t *testing.T) {
	trie := NewRadixTrie[string]()
	require.True(t, trie.Insert("test"))
	require.False(t, trie.Insert("test", "extra"))

	assert.Equal(t, 1, trie.Size())
	assert.Equal(t, 2, trie.NodeSize())
	assert.Equal(t, []string{"extra"}, radixChild(t, trie.GetRoot(), "test").OwnContent())
}

func TestRadixSuccessorAndPredecessor(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("romane")
	trie.Insert("romanus")
	trie.Insert("romulus")

	successor, found := trie.Successor("rubens")
	require.True(t, found)
	assert.Equal(t, "roman", successor, "smallest branch after the divergence under rom")

	predecessor, found := trie.Predecessor("rubens")
	require.True(t, found)
	assert.Equal(t, "r", predecessor, "shared prefix up to the divergence")
}

func TestRadixSuccessorOfContainedWord(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("romane")
	trie.Insert("romanus")
	trie.Insert("romulus")

	successor, found := trie.Successor("rom")
	require.True(t, found)
	assert.Equal(t, "roman", successor)

	predecessor, found := trie.Predecessor("rom")
	require.True(t, found)
	assert.Equal(t, "rom", predecessor)
}

func TestRadixNeighborsWithoutAnyMatch(t *testing.T) {
	trie := NewRadixTrie[string]()

	_, found := trie.Successor("anything")
	assert.False(t, found)
	_, found = trie.Predecessor("anything")
	assert.False(t, found)

	trie.Insert("romane")
	successor, found := trie.Successor("zebra")
	require.True(t, found)
	assert.Equal(t, "romane", successor, "divergence at the root falls back to the smallest branch")
	_, found = trie.Predecessor("zebra")
	assert.False(t, found)
}

func TestRadixRemoveDetachesChildlessNodeOnly(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test")
	trie.Insert("team")

	require.True(t, trie.Remove("team"))
	assert.False(t, trie.Contains("team"))
	assert.True(t, trie.Contains("test"))

	// no upward cascade and no re-compression: the te node keeps its place
	// even though it is left with a single child
	root := trie.GetRoot()
	require.Equal(t, []string{"te"}, childLabels(root))
	assert.Equal(t, []string{"st"}, childLabels(radixChild(t, root, "te")))
	assert.True(t, trie.Contains("te"))
}

func TestRadixRemoveSplitLabelLeavesSizeAlone(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test")
	trie.Insert("team")
	require.Equal(t, 2, trie.Size())

	require.True(t, trie.Remove("test"))
	require.True(t, trie.Remove("team"))
	require.Equal(t, 0, trie.Size())

	// te was manufactured by the split, never inserted: detaching it is
	// allowed but does not count as a word removal
	assert.True(t, trie.Remove("te"))
	assert.Equal(t, 0, trie.Size())
	assert.True(t, trie.IsEmpty())
}

func TestRadixRemoveRefusesNodeWithChildren(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test")
	trie.Insert("team")

	assert.False(t, trie.Remove("te"))
	assert.True(t, trie.Contains("test"))
	assert.True(t, trie.Contains("team"))
}

func TestRadixRemoveMissingWordIsNoOp(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test")
	size, nodes := trie.Size(), trie.NodeSize()

	assert.False(t, trie.Remove("toast"))
	assert.False(t, trie.Remove("tes"))
	assert.Equal(t, size, trie.Size())
	assert.Equal(t, nodes, trie.NodeSize())
}

func TestRadixRemoveContent(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test", "shared")
	trie.Insert("team", "shared")
	trie.Insert("toast", "other")

	require.True(t, trie.RemoveContent("shared"))
	require.False(t, trie.RemoveContent("shared"))

	iterator := trie.Nodes()
	for iterator.HasNext() {
		node := iterator.Next()
		assert.NotContains(t, node.OwnContent(), "shared")
	}
	assert.True(t, trie.Contains("toast"))
}

func TestRadixContentAggregation(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test", "one")
	trie.Insert("team", "two")

	te := radixChild(t, trie.GetRoot(), "te")
	assert.Empty(t, te.Content())

	trie.SetParentsKnowChildItems(true)
	assert.ElementsMatch(t, []string{"one", "two"}, te.Content())
}

func TestRadixWords(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test")
	trie.Insert("team")
	trie.Insert("toast")

	assert.Equal(t, []string{"team", "test", "toast"}, collectWords(trie.Words()))
}

func TestRadixWordsIncludeContentBearingBranches(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test")
	trie.Insert("te", "marker")

	assert.ElementsMatch(t, []string{"te", "test"}, collectWords(trie.Words()))
}

func TestRadixNormalizesAndSplits(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("Tea-Time")

	assert.True(t, trie.Contains("tea"))
	assert.True(t, trie.Contains("time"))
	assert.Equal(t, 2, trie.Size())
}

func TestRadixDepthInvariant(t *testing.T) {
	trie := NewRadixTrie[string]()
	for _, word := range []string{"romane", "romanus", "romulus", "rubens", "ruber"} {
		trie.Insert(word)
	}

	iterator := trie.Nodes()
	for iterator.HasNext() {
		node := iterator.Next()
		if node.IsRoot() {
			assert.Equal(t, 0, node.Depth())
			continue
		}
		assert.Equal(t, node.Parent().Depth()+1, node.Depth())
		assert.NotEmpty(t, node.Label())
	}
}

func TestRadixSiblingsNeverShareFirstCharacter(t *testing.T) {
	trie := NewRadixTrie[string]()
	for _, word := range []string{"test", "team", "tea", "toast", "to", "ten"} {
		trie.Insert(word)
	}

	iterator := trie.Nodes()
	for iterator.HasNext() {
		node := iterator.Next()
		seen := map[rune]bool{}
		node.Children().ForEach(func(child *RadixNode[string]) bool {
			first := firstRune(child.Label())
			assert.False(t, seen[first], "siblings under %q share first character %q", node.Label(), first)
			seen[first] = true
			return true
		})
	}
}

func TestRadixEmptyInputPanics(t *testing.T) {
	trie := NewRadixTrie[string]()
	assert.Panics(t, func() { trie.Insert("") })
	assert.Panics(t, func() { trie.Remove("") })
}

func TestRadixIteratorDetectsMutation(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test")
	trie.Insert("team")

	iterator := trie.Words()
	trie.Insert("toast")
	assert.Panics(t, func() { iterator.Next() })
}

func TestRadixClear(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test")
	trie.Insert("team")
	trie.Clear()

	assert.True(t, trie.IsEmpty())
	assert.Equal(t, 1, trie.NodeSize())
	assert.Empty(t, collectWords(trie.Words()))
}

func TestRadixTreeString(t *testing.T) {
	trie := NewRadixTrie[string]()
	trie.Insert("test", "content")
	trie.Insert("team")

	rendered := trie.TreeString()
	assert.Contains(t, rendered, nonWordNodeCircle+" te")
	assert.Contains(t, rendered, wordNodeCircle+" st")
	assert.Contains(t, rendered, nonWordNodeCircle+" am")
}
