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

package format_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mhiramat/skc"
	"github.com/mhiramat/skc/format"
)

const doc = `
kernel {
	printk.devkmsg = "on";
	cpuset = "0-7", "8-15";
}
bare;
`

func mustParse(t *testing.T) *skc.Tree {
	t.Helper()
	tr := skc.New()
	if err := tr.Parse([]byte(doc)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tr
}

func TestKeyValueList(t *testing.T) {
	tr := mustParse(t)

	var buf strings.Builder
	if err := format.KeyValueList(&buf, tr); err != nil {
		t.Fatalf("KeyValueList: %v", err)
	}

	want := "kernel.printk.devkmsg = on\nkernel.cpuset = 0-7, 8-15\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("KeyValueList mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_roundTripsThroughReparse(t *testing.T) {
	tr := mustParse(t)

	var buf strings.Builder
	if err := format.Tree(&buf, tr); err != nil {
		t.Fatalf("Tree: %v", err)
	}

	tr2 := skc.New()
	if err := tr2.Parse([]byte(buf.String())); err != nil {
		t.Fatalf("re-parsing formatted output: %v\noutput was:\n%s", err, buf.String())
	}

	if v, ok := tr2.Value("kernel.printk.devkmsg"); !ok || v != "on" {
		t.Errorf("kernel.printk.devkmsg = %q, %v", v, ok)
	}
	if got := tr2.Values(tr2.Root(), "kernel.cpuset"); len(got) != 2 {
		t.Errorf("kernel.cpuset = %v, want 2 elements", got)
	}
}

func TestDebug_oneLinePerNode(t *testing.T) {
	tr := mustParse(t)

	var buf strings.Builder
	if err := format.Debug(&buf, tr); err != nil {
		t.Fatalf("Debug: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != tr.Len() {
		t.Errorf("got %d lines, want %d (one per node)", len(lines), tr.Len())
	}
}
