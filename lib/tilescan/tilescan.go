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

// Package tilescan iterates a linear pixel buffer in tile-row-major order.
//
// A buffer of width "stride" is walked left to right within a tile row, top
// to bottom across tile rows, yielding one tw*th sub-buffer per tile. With
// tw == th == 1 this degenerates to a plain linear scan.
package tilescan

// Index is a single entry of a raster buffer (a palette index, pre- or
// post-mapping).
type Index = int

// Scanner walks src in tile-row-major order, producing tw*th sub-buffers.
type Scanner struct {
	src        []Index
	tw, th     int
	stride     int
	x, y       int
}

// New returns a Scanner over src, whose rows are stride elements wide, that
// yields tw*th tiles.
func New(src []Index, tw, th, stride int) *Scanner {
	return &Scanner{src: src, tw: tw, th: th, stride: stride}
}

// Next returns the next tile's pixels in row-major order within the tile, or
// ok=false once no full tile remains.
func (s *Scanner) Next() (tile []Index, ok bool) {
	x2, y2 := s.x+s.tw, s.y+s.th

	// If the next tile would run off the right edge, wrap to the next tile row.
	if x2 > s.stride {
		s.x, s.y = 0, y2
		x2, y2 = s.x+s.tw, s.y+s.th
	}

	// If the next tile row would run off the end of the buffer, we're done.
	if y2*s.stride > len(s.src) {
		return nil, false
	}

	out := make([]Index, 0, s.tw*s.th)
	for j := s.y; j < y2; j++ {
		row := j * s.stride
		for i := s.x; i < x2; i++ {
			out = append(out, s.src[row+i])
		}
	}
	s.x += s.tw

	return out, true
}

// All drains the scanner, returning every tile it yields.
func All(src []Index, tw, th, stride int) [][]Index {
	sc := New(src, tw, th, stride)
	var tiles [][]Index
	for {
		tile, ok := sc.Next()
		if !ok {
			break
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

// Untile is the inverse of All followed by flattening: given src laid out
// as consecutive tw*th tiles in tile-row-major order, it returns a
// stride*height buffer in plain row-major order. If src holds fewer
// indices than a full stride*height grid (a caller-supplied height taller
// than the actual decoded tile data), the remaining offsets are left at
// the zero value, mirroring the tolerance ToImage already affords short
// index buffers.
func Untile(src []Index, tw, th, stride, height int) []Index {
	out := make([]Index, stride*height)
	tilesPerRow := stride / tw

	pos := 0
	for tileRow := 0; tileRow*th < height && pos < len(src); tileRow++ {
		for tileCol := 0; tileCol < tilesPerRow && pos < len(src); tileCol++ {
			x0, y0 := tileCol*tw, tileRow*th
			for j := 0; j < th; j++ {
				row := (y0 + j) * stride
				for i := 0; i < tw; i++ {
					if pos >= len(src) {
						break
					}
					out[row+x0+i] = src[pos]
					pos++
				}
			}
		}
	}

	return out
}
