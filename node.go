// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package skc

import "fmt"

// Kind discriminates the two node variants stored in a Tree's node arena.
type Kind int

const (
	// KindKey marks a node whose payload is a single identifier word.
	KindKey Kind = iota
	// KindValue marks a node whose payload is a value string.
	KindValue
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindValue {
		return "value"
	}
	return "key"
}

// flagValue is the high bit of a rawNode.data field, set for value nodes.
const flagValue uint16 = 1 << 15

// dataMask isolates the byte offset bits of a rawNode.data field.
const dataMask uint16 = flagValue - 1

// noParent is the sentinel stored in rawNode.parent for the root node,
// the only node with no parent.
const noParent uint16 = NodeMax

// sentinelOpen is the temporary marker stored in rawNode.next while a
// brace-delimited block is open (awaiting its matching '}').
const sentinelOpen uint16 = NodeMax

// rawNode is one packed entry of the node arena: four indices, the high
// bit of data distinguishing a key node from a value node, the low 15
// bits giving the byte offset of the node's payload in the character
// arena.
type rawNode struct {
	next, child, parent, data uint16
}

func (n rawNode) kind() Kind {
	if n.data&flagValue != 0 {
		return KindValue
	}
	return KindKey
}

func (n rawNode) offset() int {
	return int(n.data & dataMask)
}

// Node is a handle to one entry of a Tree's node arena. The zero Node is
// not valid; Nodes are only produced by Tree methods.
type Node struct {
	t   *Tree
	idx uint16
}

// valid reports whether n refers to a real node of its Tree.
func (n Node) valid() bool {
	return n.t != nil
}

// Kind returns whether n is a key node or a value node.
func (n Node) Kind() Kind {
	return n.t.nodes[n.idx].kind()
}

// IsKey reports whether n is a key node.
func (n Node) IsKey() bool {
	return n.Kind() == KindKey
}

// IsValue reports whether n is a value node.
func (n Node) IsValue() bool {
	return n.Kind() == KindValue
}

// IsArray reports whether n is a value node with a following sibling
// value node. The last element of an array has none, so it reports
// false.
func (n Node) IsArray() bool {
	return n.IsValue() && n.t.nodes[n.idx].next != 0
}

// IsLeaf reports whether n is a key node with no child, or whose only
// child is a value node (i.e. a terminal key in the tree, as opposed to
// a key that groups other keys).
func (n Node) IsLeaf() bool {
	if !n.IsKey() {
		return false
	}
	childIdx := n.t.nodes[n.idx].child
	return childIdx == 0 || n.t.nodes[childIdx].kind() == KindValue
}

// Data returns the node's payload string: the key word for a key node,
// or the value string for a value node.
func (n Node) Data() string {
	return n.t.readCString(n.t.nodes[n.idx].offset())
}

// Parent returns the parent of n and true, or the zero Node and false if
// n is the root.
func (n Node) Parent() (Node, bool) {
	p := n.t.nodes[n.idx].parent
	if p == noParent {
		return Node{}, false
	}
	return Node{t: n.t, idx: p}, true
}

// Child returns the first child of n and true, or the zero Node and
// false if n has no children.
func (n Node) Child() (Node, bool) {
	c := n.t.nodes[n.idx].child
	if c == 0 {
		return Node{}, false
	}
	return Node{t: n.t, idx: c}, true
}

// Next returns the next sibling of n and true, or the zero Node and
// false if n has no following sibling.
//
// A false return does not by itself mean n has no siblings at all: n
// could still be reached by walking from its parent's child pointer if
// n is not first in the chain.
func (n Node) Next() (Node, bool) {
	nx := n.t.nodes[n.idx].next
	if nx == 0 || nx == sentinelOpen {
		return Node{}, false
	}
	return Node{t: n.t, idx: nx}, true
}

// Index returns the position of n within its Tree's node arena.
func (n Node) Index() int {
	return int(n.idx)
}

// String renders a short debug form of n.
func (n Node) String() string {
	return fmt.Sprintf("%s(%q)", n.Kind(), n.Data())
}
