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

// ----------------

// Package lumaidx bridges image luminance and palette indices.
//
// The forward direction quantizes a source image's grayscale value into an
// index in [0, maxcol], skipping pixels the source marked fully transparent.
// The inverse direction reconstructs a grayscale+alpha preview image from a
// decoded index buffer.
package lumaidx

import (
	"image"
	"math"
)

// FromImage quantizes img's luminance into indices in [0, maxcol], laid out
// in raster (row-major) order. Tiling into the format's tile-major storage
// order is the codec's job (package tilescan), not this mapper's -- doing
// it here too would reorder the data twice.
//
// A source pixel with zero alpha is treated as blank: it does not
// contribute a value, and the grow-to-length step below may leave its
// target offset (and any offset between it and the previous non-blank
// pixel) at the zero value. Per the format this mapper targets, callers
// must not depend on the value left behind at such offsets.
func FromImage(img image.Image, maxcol int) []int {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	out := make([]int, w*h)
	maxOffset := -1

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grayAlphaModelFunc(img.At(b.Min.X+x, b.Min.Y+y)).(GrayAlphaColor)
			offset := y*w + x

			if c.A == 0 {
				continue
			}

			idx := int(math.Round(float64(c.Y) / 255 * float64(maxcol)))
			if idx < 0 {
				idx = 0
			} else if idx > maxcol {
				idx = maxcol
			}
			out[offset] = idx
			if offset > maxOffset {
				maxOffset = offset
			}
		}
	}

	return out[:maxOffset+1]
}

// AutoSize returns the smallest square tile grid (in pixels) that fits at
// least n tiles of size tw x th.
func AutoSize(n, tw, th int) (iw, ih int) {
	if n <= 0 {
		return tw, th
	}
	side := 1
	for side*side < n {
		side++
	}
	return side * tw, side * th
}

// ToImage reconstructs a grayscale+alpha preview image from decoded
// indices in raster order, sized iw x ih pixels, with maxcol the largest
// representable index. Offsets beyond len(indices) are emitted as fully
// transparent. Untiling the format's tile-major storage order back to
// raster order is the codec's job (package tilescan); indices here must
// already be in raster order.
func ToImage(indices []int, maxcol, iw, ih int) *Image {
	img := New(image.Rect(0, 0, iw, ih))
	if iw <= 0 || ih <= 0 {
		return img
	}

	for y := 0; y < ih; y++ {
		for x := 0; x < iw; x++ {
			offset := y*iw + x

			if offset < 0 || offset >= len(indices) {
				img.SetGrayAlpha(x, y, GrayAlphaColor{0, 0})
				continue
			}

			idx := indices[offset]
			var y8 uint8
			if maxcol > 0 {
				y8 = uint8(idx * 255 / maxcol)
			}
			img.SetGrayAlpha(x, y, GrayAlphaColor{y8, 255})
		}
	}

	return img
}
