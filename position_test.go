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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mhiramat/skc"
)

func TestPositionOf(t *testing.T) {
	text := []byte("a = 1;\nb = \"x;\n")

	tests := []struct {
		name   string
		offset int
		want   skc.Position
	}{
		{"start", 0, skc.Position{Offset: 0, Line: 1, Column: 1}},
		{"second line", 7, skc.Position{Offset: 7, Line: 2, Column: 1}},
		{"mid second line", 9, skc.Position{Offset: 9, Line: 2, Column: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := skc.PositionOf(text, tt.offset)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PositionOf mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPositionOf_parseErrorOffset(t *testing.T) {
	doc := []byte("a = 1;\nb$ = 2;")
	// Parse overwrites delimiters in doc, so translate against a copy of
	// the original text.
	orig := append([]byte(nil), doc...)
	tr := skc.New()
	err := tr.Parse(doc)
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}

	var perr *skc.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is not a *skc.ParseError: %v", err)
	}

	pos := skc.PositionOf(orig, perr.Offset)
	if pos.Line != 2 {
		t.Errorf("Line = %d, want 2", pos.Line)
	}
}
