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

// Command skcpack manages a document packed as a trailer on an initrd
// image: appending one, deleting one, or listing the one already
// present. A separate lint mode parses a batch of standalone document
// files and reports every parse failure found across all of them,
// without touching any initrd.
package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/spf13/cobra"

	"github.com/mhiramat/skc"
	"github.com/mhiramat/skc/format"
	"github.com/mhiramat/skc/initrd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		appendPath string
		del        bool
		lint       []string
	)

	cmd := &cobra.Command{
		Use:   "skcpack INITRD",
		Short: "Append, delete, or list a document packed onto an initrd image",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(lint) > 0 {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(lint) > 0 {
				return runLint(cmd, lint)
			}
			return run(cmd, args[0], appendPath, del)
		},
	}

	cmd.Flags().StringVarP(&appendPath, "append", "a", "", "pack FILE onto the initrd, replacing any existing trailer")
	cmd.Flags().BoolVarP(&del, "delete", "d", false, "remove the packed document trailer from the initrd")
	cmd.Flags().StringArrayVar(&lint, "lint", nil, "parse each FILE and report every failure (no initrd is touched)")

	cmd.MarkFlagsMutuallyExclusive("append", "delete")
	return cmd
}

func run(cmd *cobra.Command, path, appendPath string, del bool) error {
	switch {
	case appendPath != "":
		if err := initrd.AppendFile(path, appendPath); err != nil {
			return fmt.Errorf("skcpack: %w", err)
		}
		return nil
	case del:
		if err := initrd.Delete(path); err != nil {
			return fmt.Errorf("skcpack: %w", err)
		}
		return nil
	default:
		doc, err := initrd.Read(path)
		if err != nil {
			return fmt.Errorf("skcpack: %w", err)
		}
		t := skc.New()
		if err := t.Parse(doc); err != nil {
			return fmt.Errorf("skcpack: parsing packed document: %w", err)
		}
		return format.Tree(cmd.OutOrStdout(), t)
	}
}

// runLint parses every file in paths independently, accumulating every
// failure with multierr so one bad file does not hide failures in the
// rest of the batch.
func runLint(cmd *cobra.Command, paths []string) error {
	var errs error
	for _, path := range paths {
		buf, err := os.ReadFile(path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if err := skc.New().Parse(buf); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
	}
	return errs
}
