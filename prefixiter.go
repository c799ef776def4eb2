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

// prefixState tracks a PrefixIterator's position in its scan of the
// tree's leaves.
type prefixState int

const (
	// prefixSeeking means the iterator is still scanning for the next
	// leaf matching its prefix.
	prefixSeeking prefixState = iota
	// prefixYielding means Next last returned a matching leaf, which
	// UnmatchedWords now describes.
	prefixYielding
	// prefixDone means the scan has reached the end of the tree.
	prefixDone
)

// PrefixIterator walks every leaf key in a Tree whose composed dotted
// key begins with a fixed sequence of words, yielding the matching
// leaves one at a time along with the words of each leaf's key past the
// matched prefix (its "unmatched" tail).
//
// For example, given a tree parsed from:
//
//	kernel.printk.devkmsg = "on";
//	kernel.cpuset = "0-7";
//	net.ipv4.forwarding = 1;
//
// a PrefixIterator over "kernel" yields the printk.devkmsg and cpuset
// leaves, reporting unmatched tails ["printk", "devkmsg"] and
// ["cpuset"] respectively.
type PrefixIterator struct {
	root    Node
	prefix  []string
	cur     Node
	started bool
	state   prefixState

	unmatched []string
}

// NewPrefixIterator returns a PrefixIterator over the leaves of root's
// subtree whose composed key, relative to root, begins with the
// segments of dottedPrefix. An empty dottedPrefix matches every leaf.
func NewPrefixIterator(root Node, dottedPrefix string) *PrefixIterator {
	var words []string
	if dottedPrefix != "" {
		words = strings.Split(dottedPrefix, ".")
	}
	return &PrefixIterator{root: root, prefix: words, state: prefixSeeking}
}

// Start rewinds the iterator to scan from the beginning again.
func (it *PrefixIterator) Start() {
	it.started = false
	it.state = prefixSeeking
	it.cur = Node{}
	it.unmatched = nil
}

// Next advances to the next matching leaf and returns it, or returns
// the zero Node and false once no further leaf matches. Call
// UnmatchedWords after a true return to read the matched leaf's tail
// words relative to root.
func (it *PrefixIterator) Next() (Node, bool) {
	if it.state == prefixDone {
		return Node{}, false
	}

	var n Node
	var ok bool
	if !it.started {
		it.started = true
		n, ok = firstDescendantLeafOrSelf(it.root)
	} else {
		n, ok = NextLeaf(it.cur)
	}

	for ok {
		if !isDescendant(it.root, n) {
			break
		}
		if tail, matched := it.matchPrefix(n); matched {
			it.cur = n
			it.unmatched = tail
			it.state = prefixYielding
			return n, true
		}
		n, ok = NextLeaf(n)
	}

	it.state = prefixDone
	return Node{}, false
}

// UnmatchedWords returns the words of the most recently yielded leaf's
// key that come after the matched prefix, e.g. ["printk", "devkmsg"]
// for a "kernel.printk.devkmsg" leaf matched against prefix "kernel".
// It returns nil if Next has not yet returned true.
func (it *PrefixIterator) UnmatchedWords() []string {
	if it.state != prefixYielding {
		return nil
	}
	return it.unmatched
}

// matchPrefix reports whether n's key, composed relative to it.root,
// begins with it.prefix, returning the remaining words if so.
func (it *PrefixIterator) matchPrefix(n Node) ([]string, bool) {
	words := relativeKeyWords(it.root, n)
	if len(words) < len(it.prefix) {
		return nil, false
	}
	for i, w := range it.prefix {
		if words[i] != w {
			return nil, false
		}
	}
	return words[len(it.prefix):], true
}

// relativeKeyWords returns the key words from root (exclusive) down to
// n (inclusive), in root-to-leaf order.
func relativeKeyWords(root, n Node) []string {
	var words []string
	cur := n
	for cur.Index() != root.Index() {
		words = append(words, cur.Data())
		parent, ok := cur.Parent()
		if !ok {
			break
		}
		cur = parent
	}
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return words
}
