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

func TestPathToWholeWord(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert("cat")
	trie.Insert("car")

	path := trie.PathTo("cat")
	require.NotNil(t, path)
	assert.Equal(t, "cat", path.Word())
	assert.Equal(t, 4, path.Len(), "root plus one node per character")

	leaf := path.GetLeaf()
	assert.True(t, leaf.IsWord())
	assert.Equal(t, "t", leaf.Fragment())

	root := path.GetRoot()
	assert.Equal(t, "", root.Fragment())
	assert.False(t, root.IsWord())
}

func TestPathToPartialPrefixStopsAtDeepestMatch(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert("cat")

	path := trie.PathTo("cable")
	assert.Equal(t, "ca", path.Word())
	assert.Equal(t, 3, path.Len())
}

func TestPathLinksAreBidirectional(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert("ca")

	path := trie.PathTo("ca")
	leaf := path.GetLeaf()
	assert.Same(t, leaf.Previous().Next(), leaf)
	assert.Nil(t, leaf.Next())
	assert.Nil(t, path.GetRoot().Previous())
}

func TestPathIsSnapshot(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert("cat")

	path := trie.PathTo("cat")
	trie.Remove("cat")
	assert.Equal(t, "cat", path.Word())
	assert.True(t, path.GetLeaf().IsWord())
}

func TestPathString(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert("ca")

	rendered := trie.PathTo("ca").String()
	assert.Contains(t, rendered, nonWordNodeCircle+" c")
	assert.Contains(t, rendered, rightElbow+wordNodeCircle+" a")

	var nilNode *PathNode
	assert.Equal(t, nilString(), nilNode.String())
}
