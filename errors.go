// Copyright 2024 The awsmimg Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package awsmimg

import (
	"errors"
	"fmt"
	"io"

	"github.com/kmeisthax/awsmimg/lib/agbformat"
	"github.com/kmeisthax/awsmimg/lib/agbhuffman"
)

// Kind classifies why an encode or decode call failed.
type Kind int

const (
	// InputFormat covers an unknown format string, or dimensions/data
	// lengths that are not a multiple of the target format's tile size.
	InputFormat Kind = iota
	// IO covers a read or write failure from the underlying byte source
	// or sink.
	IO
	// UnexpectedEof covers a header, tree, bitstream, or indexed stream
	// that is truncated relative to its declared or requested size.
	UnexpectedEof
	// InvalidData covers a Huffman header whose type nibble isn't 2, or
	// a tree branch offset pointing past the tree table.
	InvalidData
	// OutOfRange covers a requested seek offset beyond the current
	// output file's length.
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case InputFormat:
		return "InputFormat"
	case IO:
		return "IO"
	case UnexpectedEof:
		return "UnexpectedEof"
	case InvalidData:
		return "InvalidData"
	case OutOfRange:
		return "OutOfRange"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every exported operation of this
// package that can fail. Op names the failing operation (e.g. "EncodeIndexed"); Kind
// classifies the failure for callers that want to branch on it; Err, when
// present, is the underlying cause and is reachable via errors.Unwrap.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("awsmimg: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("awsmimg: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// classify assigns a Kind to an error surfaced by lib/agbformat or
// lib/agbhuffman, falling back to IO for anything it doesn't recognize
// (typically a failure from the caller's own byte source or sink).
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	switch {
	case errors.Is(err, agbformat.ErrDimensionMismatch):
		return &Error{Op: op, Kind: InputFormat, Err: err}
	case errors.Is(err, agbhuffman.ErrInvalidData):
		return &Error{Op: op, Kind: InvalidData, Err: err}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return &Error{Op: op, Kind: UnexpectedEof, Err: err}
	default:
		return &Error{Op: op, Kind: IO, Err: err}
	}
}
