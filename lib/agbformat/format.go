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

// Package agbformat packs and unpacks the AGB/NTR indexed and direct-color
// graphics layouts: AGB4 (4bpp tiled), AGB8Tiled and AGB8Chunky (8bpp), and
// AGB16/NTR16 (RGB5/RGB5A1 direct color), along with the RGB5(A1) palette
// entry writer they share.
package agbformat

import "strings"

// IndexedFormat names one of the packed palette-index on-disk layouts.
type IndexedFormat int

const (
	AGB4 IndexedFormat = iota
	AGB8Tiled
	AGB8Chunky
)

func (f IndexedFormat) String() string {
	switch f {
	case AGB4:
		return "agb4"
	case AGB8Tiled:
		return "agb8t"
	case AGB8Chunky:
		return "agb8c"
	default:
		return "unknown"
	}
}

// BitsPerPixel returns the on-disk width of a single index in this format.
func (f IndexedFormat) BitsPerPixel() int {
	if f == AGB4 {
		return 4
	}
	return 8
}

// MaxCol returns the largest representable index, i.e. 2^bpp - 1.
func (f IndexedFormat) MaxCol() int {
	return (1 << f.BitsPerPixel()) - 1
}

// TileSize returns the tile dimensions this format scans in: 8x8 for the
// tiled formats, 1x1 (a plain linear scan) for the chunky format.
func (f IndexedFormat) TileSize() (tw, th int) {
	if f == AGB8Chunky {
		return 1, 1
	}
	return 8, 8
}

// ParseIndexedFormat recognizes format tags case-insensitively.
func ParseIndexedFormat(s string) (IndexedFormat, bool) {
	switch strings.ToLower(s) {
	case "agb4":
		return AGB4, true
	case "agb8t":
		return AGB8Tiled, true
	case "agb8c":
		return AGB8Chunky, true
	default:
		return 0, false
	}
}

// DirectFormat names one of the packed direct-color on-disk layouts.
type DirectFormat int

const (
	AGB16 DirectFormat = iota
	NTR16
)

func (f DirectFormat) String() string {
	if f == NTR16 {
		return "ntr16"
	}
	return "agb16"
}

// HasAlpha reports whether this direct format stores an alpha bit (bit 15).
// AGB16 always forces it to 0; only NTR16 carries real alpha.
func (f DirectFormat) HasAlpha() bool {
	return f == NTR16
}

// ParseDirectFormat recognizes format tags case-insensitively.
func ParseDirectFormat(s string) (DirectFormat, bool) {
	switch strings.ToLower(s) {
	case "agb16":
		return AGB16, true
	case "ntr16":
		return NTR16, true
	default:
		return 0, false
	}
}
