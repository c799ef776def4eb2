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
	"errors"
	"fmt"
)

// Sentinel error kinds. ParseError wraps one of the grammar/lexical
// sentinels (ErrInvalidKey, ErrNoClosingQuote, ErrNoDelimiter,
// ErrUnexpectedBrace, ErrNoClosingBrace); the others are returned
// directly.
var (
	// ErrInvalidKey is returned when a key word fails the
	// [A-Za-z0-9_-]+ character-class rule.
	ErrInvalidKey = errors.New("skc: invalid key")

	// ErrNoClosingQuote is returned when a quoted value has no matching
	// closing quote before the end of input.
	ErrNoClosingQuote = errors.New("skc: no closing quote")

	// ErrNoDelimiter is returned when a value is not followed by one of
	// the expected terminator characters, or when a value is missing
	// entirely between '=' and the statement terminator.
	ErrNoDelimiter = errors.New("skc: no delimiter for value")

	// ErrUnexpectedBrace is returned for a '}' that does not close a
	// currently open brace block.
	ErrUnexpectedBrace = errors.New("skc: unexpected closing brace")

	// ErrNoClosingBrace is returned when input ends with a brace block
	// still open.
	ErrNoClosingBrace = errors.New("skc: no closing brace")

	// ErrNoMem is returned when the node arena or character arena
	// capacity would be exceeded.
	ErrNoMem = errors.New("skc: no memory")

	// ErrTooBig is returned when a caller-supplied output buffer is too
	// small to hold a composed key or unmatched-word list.
	ErrTooBig = errors.New("skc: buffer too small")

	// ErrOutOfRange is returned when input text exceeds DataMax-1 bytes,
	// is empty, or a composed key's depth exceeds DepthMax.
	ErrOutOfRange = errors.New("skc: out of range")

	// ErrBusy is returned by Parse when the Tree already holds a
	// successfully parsed document.
	ErrBusy = errors.New("skc: tree is busy")

	// ErrInvalid is returned by ComposeKey when given the zero Node.
	ErrInvalid = errors.New("skc: invalid node")
)

// ParseError reports a grammar or lexical violation encountered while
// parsing, together with the byte offset of the offending character.
type ParseError struct {
	// Msg is a human-readable description of the error.
	Msg string
	// Offset is the byte offset into the parsed buffer of the
	// offending character.
	Offset int
	// Kind is one of the sentinel errors above, unwrapped by Unwrap.
	Kind error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("skc: parse error at offset %d: %s", e.Offset, e.Msg)
}

// Unwrap allows errors.Is(err, ErrInvalidKey) and similar to work against
// a *ParseError.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func parseErrorf(offset int, kind error, format string, args ...any) *ParseError {
	return &ParseError{
		Msg:    fmt.Sprintf(format, args...),
		Offset: offset,
		Kind:   kind,
	}
}
