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
	"image"
	"image/draw"
)

// EncodeDirect streams every pixel of img, row-major, as an RGB5(A1) entry
// per f's alpha rule: AGB16 forces the alpha bit to 0; NTR16 sets it from
// the source pixel's alpha (rounded at the 50% threshold).
func EncodeDirect(img image.Image, f DirectFormat) []byte {
	b := img.Bounds()
	flat := image.NewNRGBA(b)
	draw.Draw(flat, b, img, b.Min, draw.Src)

	entries := make([]byte, 0, 2*b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			word := EncodeEntry(flat.NRGBAAt(x, y), f.HasAlpha())
			entries = append(entries, byte(word), byte(word>>8))
		}
	}
	return entries
}

// DecodeDirect reconstructs an NRGBA image, width x height, from f's
// on-disk RGB5(A1) byte stream.
func DecodeDirect(data []byte, width, height int, f DirectFormat) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	n := width * height
	if len(data) < 2*n {
		n = len(data) / 2
	}
	for i := 0; i < n; i++ {
		word := uint16(data[2*i]) | uint16(data[2*i+1])<<8
		x, y := i%width, i/width
		img.SetNRGBA(x, y, DecodeEntry(word, f.HasAlpha()))
	}
	return img
}
