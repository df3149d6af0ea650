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

package lumaidx

import (
	"image"
	"image/color"
)

// GrayAlphaColor is an 8-bit luminance value with an 8-bit alpha channel.
// The standard library has no such color model (color.Gray carries no
// alpha, color.NRGBA carries three redundant identical channels), so the
// decoded preview image defined by the inverse Luma<->Index mapping uses
// this one instead.
type GrayAlphaColor struct {
	Y, A uint8
}

// RGBA implements color.Color. The returned values are alpha-premultiplied,
// as required by the interface.
func (c GrayAlphaColor) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y) * 0x101
	a = uint32(c.A) * 0x101
	y = y * a / 0xffff
	return y, y, y, a
}

// grayAlphaModel converts an arbitrary color.Color to GrayAlphaColor using
// the same 601 luma weights as the forward mapper.
var grayAlphaModel = color.ModelFunc(grayAlphaModelFunc)

func grayAlphaModelFunc(c color.Color) color.Color {
	if g, ok := c.(GrayAlphaColor); ok {
		return g
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return GrayAlphaColor{0, 0}
	}
	// Undo premultiplication before applying the luma weights.
	r = r * 0xffff / a
	g = g * 0xffff / a
	b = b * 0xffff / a
	y := (299*r + 587*g + 114*b + 500) / 1000
	return GrayAlphaColor{uint8(y >> 8), uint8(a >> 8)}
}

// Image is an in-memory image.Image whose pixels are GrayAlphaColor values,
// laid out as two bytes (Y, A) per pixel in row-major order. It is the
// concrete type produced by the inverse Luma<->Index mapping.
type Image struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// New returns a new Image with the given bounds, fully zeroed (opaque black
// would be wrong here: zero alpha means "not drawn", matching the mapper's
// out-of-range convention).
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	return &Image{
		Pix:    make([]uint8, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

func (p *Image) ColorModel() color.Model { return grayAlphaModel }

func (p *Image) Bounds() image.Rectangle { return p.Rect }

func (p *Image) At(x, y int) color.Color {
	return p.GrayAlphaAt(x, y)
}

// GrayAlphaAt returns the pixel at (x, y) without the color.Color boxing
// overhead of At.
func (p *Image) GrayAlphaAt(x, y int) GrayAlphaColor {
	if !(image.Pt(x, y).In(p.Rect)) {
		return GrayAlphaColor{}
	}
	i := p.pixOffset(x, y)
	return GrayAlphaColor{p.Pix[i], p.Pix[i+1]}
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Pt(x, y).In(p.Rect)) {
		return
	}
	i := p.pixOffset(x, y)
	g := grayAlphaModel.Convert(c).(GrayAlphaColor)
	p.Pix[i], p.Pix[i+1] = g.Y, g.A
}

func (p *Image) SetGrayAlpha(x, y int, c GrayAlphaColor) {
	if !(image.Pt(x, y).In(p.Rect)) {
		return
	}
	i := p.pixOffset(x, y)
	p.Pix[i], p.Pix[i+1] = c.Y, c.A
}

func (p *Image) pixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
