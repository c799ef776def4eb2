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

// Package format renders a parsed [skc.Tree] back to text, in three
// styles: the brace-delimited source form, a flat dotted key/value
// list, and a raw per-node debug dump.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/mhiramat/skc"
)

// Tree writes t back out in brace-delimited source form, reconstructing
// indentation from nesting depth. The output is a valid document that,
// re-parsed, produces an equivalent tree; it is not guaranteed to be
// byte-identical to whatever text originally produced t, since
// whitespace and comments are not preserved across a parse.
func Tree(w io.Writer, t *skc.Tree) error {
	return writeChildren(w, t.Root(), 0)
}

func writeChildren(w io.Writer, parent skc.Node, depth int) error {
	for key := range skc.Children(parent) {
		if !key.IsKey() {
			continue
		}
		indent := strings.Repeat("\t", depth)

		child, hasChild := key.Child()
		switch {
		case !hasChild:
			if _, err := fmt.Fprintf(w, "%s%s;\n", indent, key.Data()); err != nil {
				return err
			}
		case child.IsValue():
			if _, err := fmt.Fprintf(w, "%s%s = ", indent, key.Data()); err != nil {
				return err
			}
			if err := writeValues(w, key); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "%s%s {\n", indent, key.Data()); err != nil {
				return err
			}
			if err := writeChildren(w, key, depth+1); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s}\n", indent); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeValues(w io.Writer, key skc.Node) error {
	first := true
	for v := range skc.ArrayValues(key) {
		sep := ""
		if !first {
			sep = ", "
		}
		first = false
		if _, err := fmt.Fprintf(w, "%s%q", sep, v.Data()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, ";")
	return err
}

// KeyValueList writes every leaf key/value pair in t, one per line, as
// "dotted.key = value1, value2".
func KeyValueList(w io.Writer, t *skc.Tree) error {
	for key := range skc.KeyValues(t.Root()) {
		composed, err := skc.ComposeKey(key)
		if err != nil {
			return err
		}
		var values []string
		for v := range skc.ArrayValuesOf(key) {
			values = append(values, v)
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", composed, strings.Join(values, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// Debug writes one line per node in t's arena, in arena order, showing
// its index, kind, payload, and the indices of its parent/child/next
// links. It is meant for troubleshooting a Tree, not for
// round-tripping.
func Debug(w io.Writer, t *skc.Tree) error {
	for i := 0; i < t.Len(); i++ {
		n := t.NodeAt(i)
		parent, hasParent := n.Parent()
		child, hasChild := n.Child()
		next, hasNext := n.Next()

		parentIdx, childIdx, nextIdx := -1, -1, -1
		if hasParent {
			parentIdx = parent.Index()
		}
		if hasChild {
			childIdx = child.Index()
		}
		if hasNext {
			nextIdx = next.Index()
		}

		if _, err := fmt.Fprintf(w, "%4d %-5s %-24q parent=%-4d child=%-4d next=%-4d\n",
			n.Index(), n.Kind(), n.Data(), parentIdx, childIdx, nextIdx); err != nil {
			return err
		}
	}
	return nil
}
