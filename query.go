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

import "strings"

// FindChild descends from parent through a dotted key, returning the
// key node named by the final segment and true, or the zero Node and
// false if any segment along the way has no matching child.
func (t *Tree) FindChild(parent Node, dottedKey string) (Node, bool) {
	cur := parent
	for _, word := range strings.Split(dottedKey, ".") {
		if word == "" {
			return Node{}, false
		}
		child, ok := cur.Child()
		if !ok {
			return Node{}, false
		}

		var found Node
		matched := false
		for {
			if child.IsKey() && child.Data() == word {
				found = child
				matched = true
				break
			}
			next, ok := child.Next()
			if !ok {
				break
			}
			child = next
		}
		if !matched {
			return Node{}, false
		}
		cur = found
	}
	return cur, true
}

// Find is a convenience wrapper for FindChild starting at the Tree's
// root.
func (t *Tree) Find(dottedKey string) (Node, bool) {
	return t.FindChild(t.Root(), dottedKey)
}

// FindValue resolves dottedKey under parent as FindChild does, then
// returns the data string of the resolved key's first value child. It
// returns false if the key does not resolve or resolves to a key with
// no value attached.
func (t *Tree) FindValue(parent Node, dottedKey string) (string, bool) {
	key, ok := t.FindChild(parent, dottedKey)
	if !ok {
		return "", false
	}
	v, ok := key.Child()
	if !ok || !v.IsValue() {
		return "", false
	}
	return v.Data(), true
}

// Value is a convenience wrapper for FindValue starting at the Tree's
// root.
func (t *Tree) Value(dottedKey string) (string, bool) {
	return t.FindValue(t.Root(), dottedKey)
}

// Values returns every value attached to the key named by dottedKey
// under parent, in document order, or nil if the key does not resolve
// or has no values.
func (t *Tree) Values(parent Node, dottedKey string) []string {
	key, ok := t.FindChild(parent, dottedKey)
	if !ok {
		return nil
	}
	v, ok := key.Child()
	if !ok || !v.IsValue() {
		return nil
	}
	var out []string
	for {
		out = append(out, v.Data())
		next, ok := v.Next()
		if !ok {
			break
		}
		v = next
	}
	return out
}

// ComposeKey joins n and its key-node ancestors up to (but not
// including) the root with '.', in root-to-leaf order, e.g.
// "kernel.printk.devkmsg" for a node three levels deep. It returns
// ErrInvalid for the zero Node, and ErrOutOfRange if n is nested deeper
// than DepthMax.
func ComposeKey(n Node) (string, error) {
	if !n.valid() {
		return "", ErrInvalid
	}

	if n.IsValue() {
		return "", ErrInvalid
	}

	var words []string
	cur := n
	for {
		parent, ok := cur.Parent()
		if !ok {
			// cur is the root: it carries no key word of its own.
			break
		}
		words = append(words, cur.Data())
		if len(words) > DepthMax {
			return "", ErrOutOfRange
		}
		cur = parent
	}

	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, "."), nil
}

// NextLeaf returns the next leaf key node in a pre-order walk of the
// tree starting after n, and true, or the zero Node and false if n is
// the last leaf. NextLeaf treats value nodes as not themselves visited;
// walking a key's value children is done separately via Children or
// ArrayValues.
//
// NextLeaf(Tree.Root()) begins the walk; repeated calls to
// NextLeaf(prev) visit every leaf exactly once, in document order.
func NextLeaf(n Node) (Node, bool) {
	next, ok := firstDescendantLeaf(n)
	if ok {
		return next, true
	}

	cur := n
	for {
		if sib, ok := cur.Next(); ok {
			return firstDescendantLeafOrSelf(sib)
		}
		parent, ok := cur.Parent()
		if !ok {
			return Node{}, false
		}
		cur = parent
	}
}

// firstDescendantLeaf returns the first leaf strictly under n (not n
// itself), or false if n has no key children.
func firstDescendantLeaf(n Node) (Node, bool) {
	child, ok := n.Child()
	if !ok || child.IsValue() {
		return Node{}, false
	}
	return firstDescendantLeafOrSelf(child)
}

// firstDescendantLeafOrSelf returns n if it is a leaf, otherwise the
// first leaf under it.
func firstDescendantLeafOrSelf(n Node) (Node, bool) {
	cur := n
	for {
		if cur.IsLeaf() {
			return cur, true
		}
		child, ok := cur.Child()
		if !ok || child.IsValue() {
			return cur, true
		}
		cur = child
	}
}

// NextKeyValue returns the next leaf key node that has at least one
// value attached, starting the search after n, together with its first
// value node. It returns false once no further leaf with a value
// remains.
func NextKeyValue(n Node) (key Node, value Node, ok bool) {
	cur := n
	for {
		next, hasNext := NextLeaf(cur)
		if !hasNext {
			return Node{}, Node{}, false
		}
		cur = next
		if v, ok := cur.Child(); ok && v.IsValue() {
			return cur, v, true
		}
	}
}
