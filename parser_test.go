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

package skc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mhiramat/skc"
)

func TestTree_Parse_simpleKeyValue(t *testing.T) {
	tr := skc.New()
	if err := tr.Parse([]byte(`log.buflen = 64;`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got, ok := tr.Value("log.buflen")
	if !ok {
		t.Fatal("log.buflen not found")
	}
	if diff := cmp.Diff("64", got); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_Parse_nestedBraces(t *testing.T) {
	doc := []byte(`
kernel {
	printk.devkmsg = "on";
	cpuset = "0-7", "8-15";
}
`)
	tr := skc.New()
	if err := tr.Parse(doc); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got, ok := tr.Value("kernel.printk.devkmsg"); !ok || got != "on" {
		t.Errorf("kernel.printk.devkmsg = %q, %v", got, ok)
	}

	gotValues := tr.Values(tr.Root(), "kernel.cpuset")
	if diff := cmp.Diff([]string{"0-7", "8-15"}, gotValues); diff != "" {
		t.Errorf("kernel.cpuset mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_Parse_dottedKeyMerge(t *testing.T) {
	doc := []byte(`
a.b.c = 1;
a.b.d = 2;
a.e = 3;
`)
	tr := skc.New()
	if err := tr.Parse(doc); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	ab, ok := tr.Find("a.b")
	if !ok {
		t.Fatal("a.b not found")
	}
	var children int
	for range skc.Children(ab) {
		children++
	}
	if children != 2 {
		t.Errorf("a.b has %d children, want 2", children)
	}

	if v, ok := tr.Value("a.e"); !ok || v != "3" {
		t.Errorf("a.e = %q, %v", v, ok)
	}
}

func TestTree_Parse_comments(t *testing.T) {
	doc := []byte(`
# a leading comment
key = "value"; # trailing comment
other = 1 # comment with no terminator before EOF
`)
	tr := skc.New()
	if err := tr.Parse(doc); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v, ok := tr.Value("key"); !ok || v != "value" {
		t.Errorf("key = %q, %v", v, ok)
	}
	if v, ok := tr.Value("other"); !ok || v != "1" {
		t.Errorf("other = %q, %v", v, ok)
	}
}

func TestTree_Parse_errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"invalid key char", `a$b = 1;`, skc.ErrInvalidKey},
		{"unterminated quote", `a = "unterminated;`, skc.ErrNoClosingQuote},
		{"empty bare value", `a = ;`, skc.ErrNoDelimiter},
		{"extra closing brace", `a { b = 1; } }`, skc.ErrUnexpectedBrace},
		{"missing closing brace", `a { b = 1;`, skc.ErrNoClosingBrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := skc.New()
			err := tr.Parse([]byte(tt.doc))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.doc)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want Is(%v)", tt.doc, err, tt.want)
			}
		})
	}
}

func TestTree_Parse_emptyQuotedValueAllowed(t *testing.T) {
	tr := skc.New()
	if err := tr.Parse([]byte(`a = "";`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, ok := tr.Value("a")
	if !ok {
		t.Fatal("a not found")
	}
	if diff := cmp.Diff("", v); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_Parse_boundary(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		tr := skc.New()
		err := tr.Parse([]byte(""))
		if !errors.Is(err, skc.ErrOutOfRange) {
			t.Errorf("err = %v, want Is(ErrOutOfRange)", err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		tr := skc.New()
		big := strings.Repeat("a", skc.DataMax)
		err := tr.Parse([]byte(big))
		if !errors.Is(err, skc.ErrOutOfRange) {
			t.Errorf("err = %v, want Is(ErrOutOfRange)", err)
		}
	})

	t.Run("too many nodes", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < skc.NodeMax; i++ {
			sb.WriteString("k")
			sb.WriteString(string(rune('a' + i%26)))
			sb.WriteString(string(rune('0' + i%10)))
			sb.WriteString(" = 1;\n")
		}
		tr := skc.New()
		err := tr.Parse([]byte(sb.String()))
		if !errors.Is(err, skc.ErrNoMem) {
			t.Errorf("err = %v, want Is(ErrNoMem)", err)
		}
	})

	t.Run("reparse without reset", func(t *testing.T) {
		tr := skc.New()
		if err := tr.Parse([]byte("a = 1;")); err != nil {
			t.Fatalf("first Parse: %v", err)
		}
		err := tr.Parse([]byte("b = 2;"))
		if !errors.Is(err, skc.ErrBusy) {
			t.Errorf("err = %v, want Is(ErrBusy)", err)
		}

		tr.Reset()
		if err := tr.Parse([]byte("b = 2;")); err != nil {
			t.Fatalf("Parse after Reset: %v", err)
		}
		if v, ok := tr.Value("b"); !ok || v != "2" {
			t.Errorf("b = %q, %v", v, ok)
		}
	})
}

func TestParseError_Unwrap(t *testing.T) {
	tr := skc.New()
	err := tr.Parse([]byte(`a = "no closing quote;`))
	if diff := cmp.Diff(skc.ErrNoClosingQuote, errors.Unwrap(err), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("Unwrap mismatch (-want +got):\n%s", diff)
	}
}
