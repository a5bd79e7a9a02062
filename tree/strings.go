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

const (
	leftElbow       = "├─"
	inBetweenElbows = "│ "
	rightElbow      = "└─"
	belowElbows     = "  "

	wordNodeCircle    = "●"
	nonWordNodeCircle = "○"
)

func nilString() string {
	return "<nil>"
}

// indents holds the indentation for a node line and for the lines of its sub-nodes.
type indents struct {
	nodeIndent, subNodeInd string
}

// fmtNode is what the tree rendering needs from a node of either tree variant.
type fmtNode interface {
	String() string
	subNodes() []fmtNode
}

type indentedNode struct {
	inds indents
	node fmtNode
}

// treeString renders the sub-tree below the given node with one node per
// line, using an explicit stack so arbitrarily deep trees do not recurse.
func treeString(root fmtNode) string {
	builder := strings.Builder{}
	builder.WriteByte('\n')
	var stack []indentedNode
	next := indentedNode{node: root}
	for {
		builder.WriteString(next.inds.nodeIndent)
		builder.WriteString(next.node.String())
		builder.WriteByte('\n')

		subNodes := next.node.subNodes()
		if len(subNodes) > 0 {
			subNodeIndent := next.inds.subNodeInd
			lastIndents := indents{
				nodeIndent: subNodeIndent + rightElbow,
				subNodeInd: subNodeIndent + belowElbows,
			}
			i := len(subNodes) - 1
			stack = append(stack, indentedNode{lastIndents, subNodes[i]})
			if len(subNodes) > 1 {
				firstIndents := indents{
					nodeIndent: subNodeIndent + leftElbow,
					subNodeInd: subNodeIndent + inBetweenElbows,
				}
				for i--; i >= 0; i-- {
					stack = append(stack, indentedNode{firstIndents, subNodes[i]})
				}
			}
		}
		stackLen := len(stack)
		if stackLen == 0 {
			break
		}
		next = stack[stackLen-1]
		stack = stack[:stackLen-1]
	}
	return builder.String()
}
