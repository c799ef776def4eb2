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

// Command skcdump parses a document file and prints it back out in one
// of a few forms: a flat key/value list (the default), a reconstructed
// brace-delimited tree, a raw per-node debug dump, or the value of a
// single queried key.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhiramat/skc"
	"github.com/mhiramat/skc/format"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		query string
		tree  bool
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "skcdump FILE",
		Short: "Parse and dump a document in various forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], query, tree, debug)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "print the value(s) of a single dotted key")
	cmd.Flags().BoolVarP(&tree, "tree", "t", false, "print the reconstructed brace-delimited tree")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "print a raw per-node debug dump")

	return cmd
}

func run(cmd *cobra.Command, path string, query string, tree, debug bool) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("skcdump: %w", err)
	}

	t := skc.New()
	if err := t.Parse(buf); err != nil {
		return fmt.Errorf("skcdump: parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	switch {
	case query != "":
		values := t.Values(t.Root(), query)
		if values == nil {
			return fmt.Errorf("skcdump: key %q not found", query)
		}
		fmt.Fprintln(out, strings.Join(values, ", "))
		return nil
	case tree:
		return format.Tree(out, t)
	case debug:
		return format.Debug(out, t)
	default:
		return format.KeyValueList(out, t)
	}
}
