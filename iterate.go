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

import "iter"

// Children iterates the direct children of n in document order,
// whether they are key nodes or value nodes.
func Children(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		cur, ok := n.Child()
		for ok {
			if !yield(cur) {
				return
			}
			cur, ok = cur.Next()
		}
	}
}

// ArrayValues iterates the value children of key, the values of a
// single-valued key or the elements of an array-valued key in document
// order. It yields nothing if key has no value children.
func ArrayValues(key Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		cur, ok := key.Child()
		if !ok || !cur.IsValue() {
			return
		}
		for ok {
			if !yield(cur) {
				return
			}
			cur, ok = cur.Next()
		}
	}
}

// ArrayValuesOf is ArrayValues over the string payloads of key's
// values, the common case of reading out an array's contents directly.
func ArrayValuesOf(key Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		for v := range ArrayValues(key) {
			if !yield(v.Data()) {
				return
			}
		}
	}
}

// KeyValues iterates every leaf key under root that has at least one
// value attached, together with its first value node, in document
// order.
func KeyValues(root Node) iter.Seq2[Node, Node] {
	return func(yield func(Node, Node) bool) {
		key, value, ok := firstKeyValueUnder(root)
		for ok {
			if !yield(key, value) {
				return
			}
			key, value, ok = NextKeyValueUnder(root, key)
		}
	}
}

// firstKeyValueUnder returns the first leaf key under root (root
// itself included) that has a value attached.
func firstKeyValueUnder(root Node) (Node, Node, bool) {
	if v, ok := root.Child(); ok && v.IsValue() && root.IsLeaf() {
		return root, v, true
	}
	return NextKeyValueUnder(root, root)
}

// NextKeyValueUnder is NextKeyValue bounded to leaves that are
// descendants of root, stopping once the walk would leave root's
// subtree.
func NextKeyValueUnder(root, after Node) (Node, Node, bool) {
	key, value, ok := NextKeyValue(after)
	for ok {
		if !isDescendant(root, key) {
			return Node{}, Node{}, false
		}
		return key, value, true
	}
	return Node{}, Node{}, false
}

// isDescendant reports whether n is root or nested under it.
func isDescendant(root, n Node) bool {
	cur := n
	for {
		if cur.Index() == root.Index() {
			return true
		}
		parent, ok := cur.Parent()
		if !ok {
			return false
		}
		cur = parent
	}
}
