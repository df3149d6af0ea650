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

import "github.com/kmeisthax/awsmimg/lib/tilescan"

// EncodeIndexed packs a raster of palette indices, width x height, into f's
// on-disk byte layout. width and height must each be a multiple of f's tile
// size. Indices outside [0, f.MaxCol()] are truncated via idx mod 2^bpp,
// not clamped.
func EncodeIndexed(indices []int, width, height int, f IndexedFormat) ([]byte, error) {
	tw, th := f.TileSize()
	if width%tw != 0 || height%th != 0 {
		return nil, ErrDimensionMismatch
	}

	tiles := tilescan.All(indices, tw, th, width)
	bpp := f.BitsPerPixel()
	mask := (1 << uint(bpp)) - 1

	var out []byte
	if bpp == 4 {
		out = make([]byte, 0, len(tiles)*tw*th/2)
		for _, tile := range tiles {
			for i := 0; i+1 < len(tile); i += 2 {
				a := tile[i] & mask
				b := tile[i+1] & mask
				out = append(out, byte(a)|byte(b)<<4)
			}
		}
	} else {
		out = make([]byte, 0, len(tiles)*tw*th)
		for _, tile := range tiles {
			for _, idx := range tile {
				out = append(out, byte(idx&mask))
			}
		}
	}

	return out, nil
}

// DecodeIndexed unpacks f's on-disk byte layout, width x height, back into
// a raster of palette indices in the same row-major order EncodeIndexed
// was given. width and height must each be a multiple of f's tile size.
func DecodeIndexed(data []byte, width, height int, f IndexedFormat) ([]int, error) {
	tw, th := f.TileSize()
	if width%tw != 0 || height%th != 0 {
		return nil, ErrDimensionMismatch
	}

	bpp := f.BitsPerPixel()
	var tiled []int
	if bpp == 4 {
		tiled = make([]int, 0, len(data)*2)
		for _, b := range data {
			tiled = append(tiled, int(b&0xF), int(b>>4))
		}
	} else {
		tiled = make([]int, len(data))
		for i, b := range data {
			tiled[i] = int(b)
		}
	}

	return tilescan.Untile(tiled, tw, th, width, height), nil
}
