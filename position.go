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

import (
	"bytes"
	"io"

	"github.com/ianlewis/runeio"
)

// Position locates a byte offset within the original document text as
// a 1-based line and column, counted in runes rather than bytes so a
// multi-byte character is one column wide.
type Position struct {
	// Offset is the byte offset into the original document text.
	Offset int
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based column number within Line.
	Column int
}

// PositionOf translates a byte offset recorded by this package (e.g.
// [ParseError.Offset]) into a line and column within the document text
// Parse was originally given. Offsets past the end of the text are
// clamped to the position just after the last rune.
//
// PositionOf re-scans the document text from the beginning every call;
// callers translating many offsets from the same parse should decode
// once themselves rather than calling it in a loop.
func PositionOf(text []byte, offset int) Position {
	if offset < 0 {
		offset = 0
	}

	r := runeio.NewReader(bytes.NewReader(text))
	pos := Position{Line: 1, Column: 1}
	for pos.Offset < offset {
		c, size, err := r.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			break
		}
		pos.Offset += size
		if c == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
