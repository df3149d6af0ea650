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

// Package awsmimg converts between modern bitmap images and the packed
// indexed/direct-color graphics formats consumed by AGB and NTR video
// hardware. It composes lib/lumaidx, lib/tilescan (by way of
// lib/agbformat), and lib/agbformat into five named format operations, and
// provides a file-oriented Encode/Decode pair that honors an offset/size
// window into the target file the way the on-disk blob formats require.
package awsmimg

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/kmeisthax/awsmimg/lib/agbformat"
	"github.com/kmeisthax/awsmimg/lib/lumaidx"
)

// EncodeIndexed quantizes img's luminance into palette indices and packs
// them into format f's on-disk byte layout. img's width and height must
// each be a multiple of f's tile size.
func EncodeIndexed(img image.Image, f agbformat.IndexedFormat) ([]byte, error) {
	const op = "EncodeIndexed"
	indices := lumaidx.FromImage(img, f.MaxCol())
	b := img.Bounds()
	data, err := agbformat.EncodeIndexed(indices, b.Dx(), b.Dy(), f)
	if err != nil {
		return nil, classify(op, err)
	}
	return data, nil
}

// DecodeIndexed unpacks format f's on-disk byte layout and reconstructs a
// grayscale+alpha preview image. If iw and ih are both zero, the image is
// auto-sized to the smallest square tile grid that fits the decoded tiles.
func DecodeIndexed(data []byte, f agbformat.IndexedFormat, iw, ih int) (*lumaidx.Image, error) {
	const op = "DecodeIndexed"
	tw, th := f.TileSize()
	if n := len(data) * 8 / f.BitsPerPixel(); n%(tw*th) != 0 {
		return nil, &Error{Op: op, Kind: InputFormat, Err: fmt.Errorf("data length %d is not a multiple of the tile size", len(data))}
	}
	if iw == 0 && ih == 0 {
		bpp := f.BitsPerPixel()
		totalIndices := len(data)
		if bpp == 4 {
			totalIndices = len(data) * 2
		}
		tileArea := tw * th
		numTiles := (totalIndices + tileArea - 1) / tileArea
		iw, ih = lumaidx.AutoSize(numTiles, tw, th)
	}
	indices, err := agbformat.DecodeIndexed(data, iw, ih, f)
	if err != nil {
		return nil, classify(op, err)
	}
	return lumaidx.ToImage(indices, f.MaxCol(), iw, ih), nil
}

// EncodeDirect streams every pixel of img as an RGB5(A1) entry per format
// f's alpha rule.
func EncodeDirect(img image.Image, f agbformat.DirectFormat) []byte {
	return agbformat.EncodeDirect(img, f)
}

// DecodeDirect reconstructs an image from format f's on-disk RGB5(A1)
// byte stream.
func DecodeDirect(data []byte, iw, ih int, f agbformat.DirectFormat) *image.NRGBA {
	return agbformat.DecodeDirect(data, iw, ih, f)
}

// Encode dispatches to EncodeIndexed or EncodeDirect based on the
// case-insensitive format tag (agb4, agb8t, agb8c, agb16, ntr16).
func Encode(img image.Image, formatTag string) ([]byte, error) {
	const op = "Encode"
	if f, ok := agbformat.ParseIndexedFormat(formatTag); ok {
		return EncodeIndexed(img, f)
	}
	if f, ok := agbformat.ParseDirectFormat(formatTag); ok {
		return EncodeDirect(img, f), nil
	}
	return nil, &Error{Op: op, Kind: InputFormat, Err: fmt.Errorf("unrecognized format %q", formatTag)}
}

// Decode dispatches to DecodeIndexed based on the case-insensitive format
// tag (agb4, agb8t, agb8c). Direct formats are decoded with DecodeDirect
// directly, since doing so requires an explicit image size rather than an
// auto-sized tile grid.
func Decode(data []byte, formatTag string, iw, ih int) (image.Image, error) {
	const op = "Decode"
	f, ok := agbformat.ParseIndexedFormat(formatTag)
	if !ok {
		return nil, &Error{Op: op, Kind: InputFormat, Err: fmt.Errorf("unrecognized format %q", formatTag)}
	}
	return DecodeIndexed(data, f, iw, ih)
}

// Options configures the file-windowing behavior shared by EncodeToFile and
// DecodeFromFile.
type Options struct {
	// Offset seeks into the file before reading or writing.
	Offset int64
	// Overlay, when set, leaves any existing file content past the
	// written region untouched. The default is to truncate the file to
	// exactly the written region.
	Overlay bool
	// Size caps the number of bytes DecodeFromFile reads from the file.
	// Zero means read to EOF.
	Size int64
}

// EncodeToFile encodes img per formatTag and writes the result into f at
// opts.Offset, truncating f to the written region unless opts.Overlay is
// set. Seeking past the file's current length is rejected as OutOfRange,
// matching the original tool's seek-past-EOF guard.
func EncodeToFile(f *os.File, img image.Image, formatTag string, opts Options) error {
	const op = "EncodeToFile"
	info, err := f.Stat()
	if err != nil {
		return classify(op, err)
	}
	if opts.Offset > info.Size() {
		return &Error{Op: op, Kind: OutOfRange, Err: fmt.Errorf("offset %d is past current file length %d", opts.Offset, info.Size())}
	}

	data, err := Encode(img, formatTag)
	if err != nil {
		return err
	}

	if _, err := f.Seek(opts.Offset, io.SeekStart); err != nil {
		return classify(op, err)
	}
	if _, err := f.Write(data); err != nil {
		return classify(op, err)
	}
	if !opts.Overlay {
		if err := f.Truncate(opts.Offset + int64(len(data))); err != nil {
			return classify(op, err)
		}
	}
	return nil
}

// DecodeFromFile reads up to opts.Size bytes (or to EOF if zero) from f
// starting at opts.Offset, and decodes them per formatTag.
func DecodeFromFile(f *os.File, formatTag string, opts Options) (image.Image, error) {
	const op = "DecodeFromFile"
	info, err := f.Stat()
	if err != nil {
		return nil, classify(op, err)
	}
	if opts.Offset > info.Size() {
		return nil, &Error{Op: op, Kind: OutOfRange, Err: fmt.Errorf("offset %d is past current file length %d", opts.Offset, info.Size())}
	}

	if _, err := f.Seek(opts.Offset, io.SeekStart); err != nil {
		return nil, classify(op, err)
	}

	var data []byte
	if opts.Size > 0 {
		data = make([]byte, opts.Size)
		n, err := io.ReadFull(f, data)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return nil, classify(op, err)
		}
		data = data[:n]
	} else {
		data, err = io.ReadAll(f)
		if err != nil {
			return nil, classify(op, err)
		}
	}

	return Decode(data, formatTag, 0, 0)
}
