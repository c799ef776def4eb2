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

// Package initrd reads and writes a document appended as a trailer to
// an initrd image: the document bytes, followed by a little-sized
// pair of host-endian uint32 fields giving the document's size and a
// checksum over it.
//
// The trailer layout is:
//
//	| ... initrd image ... | document bytes | u32 size | u32 checksum |
//
// checksum is the least-significant 32 bits of the unsigned byte-wise
// sum of the document, matching the reference packer's simple running
// total rather than a CRC.
package initrd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mhiramat/skc"
)

// trailerLen is the size in bytes of the size+checksum trailer.
const trailerLen = 8

// ErrNotFound is returned by Read when the image has no recognizable
// document trailer.
var ErrNotFound = errors.New("initrd: no document trailer found")

// ErrChecksum is returned by Read when a trailer's recorded size is
// plausible but its checksum does not match the document bytes.
var ErrChecksum = errors.New("initrd: checksum mismatch")

func checksum(data []byte) uint32 {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return sum
}

// Detect reports whether the image at path ends in a document trailer
// whose recorded checksum matches the bytes it covers.
func Detect(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	size, csum, ok, err := readTrailer(f)
	if err != nil || !ok || size == 0 {
		return false, err
	}

	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	docStart := info.Size() - trailerLen - size
	if docStart < 0 {
		return false, nil
	}

	doc := make([]byte, size)
	if _, err := f.ReadAt(doc, docStart); err != nil {
		return false, err
	}
	return checksum(doc) == csum, nil
}

// Read extracts the document appended to the image at path. It returns
// ErrNotFound if the image is too short to hold a trailer or the
// trailer's size field does not fit within the image, and ErrChecksum
// if the recorded checksum does not match the document bytes.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	size, csum, ok, err := readTrailer(f)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	docStart := info.Size() - trailerLen - int64(size)
	if docStart < 0 {
		return nil, ErrNotFound
	}

	doc := make([]byte, size)
	if _, err := f.ReadAt(doc, docStart); err != nil {
		return nil, err
	}

	if checksum(doc) != csum {
		return nil, ErrChecksum
	}
	return doc, nil
}

// readTrailer reads the last 8 bytes of f as a (size, checksum) pair.
// ok is false if f is too short to hold a trailer at all.
func readTrailer(f *os.File) (size int64, csum uint32, ok bool, err error) {
	info, err := f.Stat()
	if err != nil {
		return 0, 0, false, err
	}
	if info.Size() < trailerLen {
		return 0, 0, false, nil
	}

	var raw [trailerLen]byte
	if _, err := f.ReadAt(raw[:], info.Size()-trailerLen); err != nil {
		return 0, 0, false, err
	}

	sz := binary.NativeEndian.Uint32(raw[0:4])
	cs := binary.NativeEndian.Uint32(raw[4:8])
	if info.Size() < int64(sz)+trailerLen {
		return 0, 0, false, nil
	}
	return int64(sz), cs, true, nil
}

// Delete removes a previously Append-ed document trailer from the image
// at path, truncating it back to its original size. It is a no-op,
// returning nil, if the image has no document trailer.
func Delete(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	size, csum, ok, err := readTrailer(f)
	if err != nil {
		return err
	}
	if !ok || size == 0 {
		return nil
	}

	info, err := f.Stat()
	if err != nil {
		return err
	}
	docStart := info.Size() - trailerLen - size
	if docStart < 0 {
		return nil
	}

	doc := make([]byte, size)
	if _, err := f.ReadAt(doc, docStart); err != nil {
		return err
	}
	if checksum(doc) != csum {
		// Not our trailer; leave the image untouched.
		return nil
	}

	return f.Truncate(docStart)
}

// Append deletes any existing document trailer from the image at path,
// then appends doc as a new trailer. doc must parse as a well-formed
// document; Append rejects it with the parser's error otherwise, the
// same format check the reference packer runs before appending.
func Append(path string, doc []byte) error {
	// Parse writes into its buffer, so check a copy and keep doc intact.
	if err := skc.New().Parse(append([]byte(nil), doc...)); err != nil {
		return fmt.Errorf("initrd: %w", err)
	}

	if err := Delete(path); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	if _, err := f.Write(doc); err != nil {
		return err
	}

	var trailer [trailerLen]byte
	binary.NativeEndian.PutUint32(trailer[0:4], uint32(len(doc)))
	binary.NativeEndian.PutUint32(trailer[4:8], checksum(doc))
	_, err = f.Write(trailer[:])
	return err
}

// Replace is Append: it always removes any prior trailer first, so
// calling it with a new document is how an existing one is replaced.
// It is provided as a distinct name so callers can express intent
// ("replace the packed config") rather than "append", even though the
// operation is identical.
func Replace(path string, doc []byte) error {
	return Append(path, doc)
}

// AppendFile is a convenience wrapper reading the document from
// docPath before appending it to the image at path.
func AppendFile(path, docPath string) error {
	doc, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("initrd: reading %s: %w", docPath, err)
	}
	return Append(path, doc)
}
