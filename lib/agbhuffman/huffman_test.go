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

package agbhuffman

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func compressAll(t *testing.T, data []byte, bps int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, bps)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decompressAll(t *testing.T, compressed []byte, n int) []byte {
	t.Helper()
	r := NewReader(bytes.NewReader(compressed))
	out := make([]byte, n)
	if _, err := io.ReadFull(r, out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestRoundTripSpecScenario(t *testing.T) {
	input := []byte("AAAAAAAABBBBCCDD")
	compressed := compressAll(t, input, 8)
	got := decompressAll(t, compressed, len(input))
	if !bytes.Equal(got, input) {
		t.Errorf("got %q, want %q", got, input)
	}
}

func TestRoundTripAllBitWidths(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog 0123456789")
	for _, bps := range []int{1, 2, 4, 8} {
		compressed := compressAll(t, input, bps)
		got := decompressAll(t, compressed, len(input))
		if !bytes.Equal(got, input) {
			t.Errorf("bps=%d: got %q, want %q", bps, got, input)
		}
	}
}

func TestRoundTripSingleDistinctSymbol(t *testing.T) {
	input := bytes.Repeat([]byte{0x42}, 20)
	compressed := compressAll(t, input, 8)
	got := decompressAll(t, compressed, len(input))
	if !bytes.Equal(got, input) {
		t.Errorf("got %q, want %q", got, input)
	}
}

func TestRoundTripTwoDistinctSymbols(t *testing.T) {
	// Exercises the root-children-forced-to-branches wrap: a 2-symbol
	// alphabet's natural Huffman tree is just two leaves under the root.
	input := bytes.Repeat([]byte{0x00, 0xFF}, 10)
	compressed := compressAll(t, input, 8)
	got := decompressAll(t, compressed, len(input))
	if !bytes.Equal(got, input) {
		t.Errorf("got %q, want %q", got, input)
	}
}

func TestRoundTripEmptyInput(t *testing.T) {
	compressed := compressAll(t, nil, 8)
	got := decompressAll(t, compressed, 0)
	if len(got) != 0 {
		t.Errorf("got %q, want empty", got)
	}
}

func TestHeaderByteLayout(t *testing.T) {
	compressed := compressAll(t, []byte("AB"), 4)
	if compressed[0]&0xF != 4 {
		t.Errorf("bits_per_symbol nibble = %d, want 4", compressed[0]&0xF)
	}
	if compressed[0]>>4 != 2 {
		t.Errorf("type nibble = %d, want 2", compressed[0]>>4)
	}
	size := int(compressed[1]) | int(compressed[2])<<8 | int(compressed[3])<<16
	if size != 2 {
		t.Errorf("decompressed size = %d, want 2", size)
	}
}

func TestInvalidCompressionType(t *testing.T) {
	data := []byte{0x18, 0, 0, 0, 0}
	r := NewReader(bytes.NewReader(data))
	_, err := r.Read(make([]byte, 1))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestTruncatedHeaderIsUnexpectedEOF(t *testing.T) {
	data := []byte{0x28, 0, 0}
	r := NewReader(bytes.NewReader(data))
	_, err := r.Read(make([]byte, 1))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("got %v, want wrapped io.ErrUnexpectedEOF", err)
	}
}

func TestRoundTripFullyBalancedTree(t *testing.T) {
	// 256 distinct symbols at equal frequency forces buildTree to produce a
	// perfectly balanced, complete binary tree of 255 branch nodes -- the
	// worst case for the flat branch-offset tree layout.
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}
	compressed := compressAll(t, input, 8)
	got := decompressAll(t, compressed, len(input))
	if !bytes.Equal(got, input) {
		t.Errorf("got %q, want %q", got, input)
	}
}

func TestReadAfterDoneReturnsEOF(t *testing.T) {
	compressed := compressAll(t, []byte("x"), 8)
	r := NewReader(bytes.NewReader(compressed))
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(buf); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}
