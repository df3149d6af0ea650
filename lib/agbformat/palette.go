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

import "image/color"

// EncodeEntry packs a single color into its RGB5(A1) on-disk word. alpha is
// only honored when withAlpha is set (NTR16); AGB16 callers pass
// withAlpha=false and the returned word always has bit 15 clear.
func EncodeEntry(c color.NRGBA, withAlpha bool) uint16 {
	r := uint16(c.R>>3) & 0x1F
	g := uint16(c.G>>3) & 0x1F
	b := uint16(c.B>>3) & 0x1F
	word := r | g<<5 | b<<10
	if withAlpha && c.A >= 128 {
		word |= 1 << 15
	}
	return word
}

// EncodePalette packs an ordered sequence of colors into a byte slice of
// entries, two bytes each, little-endian, with no padding to any implicit
// "palette slot" size: len(result) == 2*len(entries) always.
func EncodePalette(entries []color.NRGBA, withAlpha bool) []byte {
	out := make([]byte, 2*len(entries))
	for i, c := range entries {
		word := EncodeEntry(c, withAlpha)
		out[2*i] = byte(word)
		out[2*i+1] = byte(word >> 8)
	}
	return out
}

// DecodeEntry unpacks a single RGB5(A1) word into a color. When withAlpha is
// false, bit 15 is ignored and the returned color is always fully opaque
// (matching AGB16, which never stores a real alpha bit).
func DecodeEntry(word uint16, withAlpha bool) color.NRGBA {
	r := uint8(word&0x1F) << 3
	g := uint8((word>>5)&0x1F) << 3
	b := uint8((word>>10)&0x1F) << 3
	a := uint8(0xFF)
	if withAlpha && word&0x8000 == 0 {
		a = 0
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// DecodePalette is the inverse of EncodePalette.
func DecodePalette(data []byte, withAlpha bool) []color.NRGBA {
	n := len(data) / 2
	out := make([]color.NRGBA, n)
	for i := 0; i < n; i++ {
		word := uint16(data[2*i]) | uint16(data[2*i+1])<<8
		out[i] = DecodeEntry(word, withAlpha)
	}
	return out
}
