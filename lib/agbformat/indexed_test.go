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

package agbformat

import (
	"bytes"
	"testing"
)

func sequentialIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestAGB4EncodeSequential(t *testing.T) {
	got, err := EncodeIndexed(sequentialIndices(64), 8, 8, AGB4)
	if err != nil {
		t.Fatal(err)
	}
	want := bytes.Repeat([]byte{0x10, 0x32, 0x54, 0x76, 0x98, 0xBA, 0xDC, 0xFE}, 4)
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestAGB4DecodeSequential(t *testing.T) {
	in := bytes.Repeat([]byte{0x10, 0x32, 0x54, 0x76, 0x98, 0xBA, 0xDC, 0xFE}, 4)
	got, err := DecodeIndexed(in, 8, 8, AGB4)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]int, 0, 64)
	for i := 0; i < 4; i++ {
		want = append(want, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAGB8TiledAndChunkyIdentityForOneTile(t *testing.T) {
	src := sequentialIndices(64)
	tiled, err := EncodeIndexed(src, 8, 8, AGB8Tiled)
	if err != nil {
		t.Fatal(err)
	}
	chunky, err := EncodeIndexed(src, 8, 8, AGB8Chunky)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 64)
	for i := range want {
		want[i] = byte(i)
	}
	if !bytes.Equal(tiled, want) {
		t.Errorf("tiled: got % X, want % X", tiled, want)
	}
	if !bytes.Equal(chunky, want) {
		t.Errorf("chunky: got % X, want % X", chunky, want)
	}
}

func TestIndexedRoundTrip(t *testing.T) {
	// Exercises multiple tiles in both dimensions: decode(encode(src)) must
	// equal src exactly, including the pixels that only a correct inverse
	// tile reorder (not just an inverse bit-unpack) can recover.
	for _, f := range []IndexedFormat{AGB4, AGB8Tiled, AGB8Chunky} {
		tw, th := f.TileSize()
		w, h := tw*3, th*2
		src := make([]int, w*h)
		for i := range src {
			src[i] = i % (f.MaxCol() + 1)
		}
		encoded, err := EncodeIndexed(src, w, h, f)
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		decoded, err := DecodeIndexed(encoded, w, h, f)
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		if len(decoded) != len(src) {
			t.Fatalf("%v: len = %d, want %d", f, len(decoded), len(src))
		}
		for i := range src {
			if decoded[i] != src[i] {
				t.Errorf("%v: index %d: got %d, want %d", f, i, decoded[i], src[i])
			}
		}
	}
}

func TestEncodeIndexedRejectsBadDimensions(t *testing.T) {
	_, err := EncodeIndexed(sequentialIndices(63), 7, 9, AGB8Tiled)
	if err != ErrDimensionMismatch {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestEncodeIndexedTruncatesOutOfRangeIndices(t *testing.T) {
	// AGB4: index 17 should truncate to 1 (17 mod 16), not clamp to 15.
	src := []int{17, 0}
	for i := 2; i < 64; i++ {
		src = append(src, 0)
	}
	got, err := EncodeIndexed(src, 8, 8, AGB4)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0x01 {
		t.Errorf("first byte = %#x, want 0x01 (17 mod 16 | 0<<4)", got[0])
	}
}
