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

// awsmimg-decode reconstructs a viewable PNG from a packed AGB/NTR
// indexed graphics blob.
//
// Usage:
//
//	awsmimg-decode -format agb4 input.bin output.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/kmeisthax/awsmimg"
)

var (
	format = flag.String("format", "", "input format: agb4, agb8t, or agb8c")
	offset = flag.Int64("offset", 0, "byte offset into the input file")
	size   = flag.Int64("size", 0, "maximum number of bytes to read (0 means read to EOF)")
)

func main() {
	flag.Parse()
	if err := main1(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main1() error {
	if flag.NArg() != 2 {
		return fmt.Errorf("usage: awsmimg-decode -format FORMAT input output")
	}
	if *format == "" {
		return fmt.Errorf("-format is required")
	}

	inputName, outputName := flag.Arg(0), flag.Arg(1)
	fmt.Printf("Decoding %s to %s\n", inputName, outputName)

	in, err := os.Open(inputName)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := awsmimg.DecodeFromFile(in, *format, awsmimg.Options{
		Offset: *offset,
		Size:   *size,
	})
	if err != nil {
		return err
	}

	out, err := os.Create(outputName)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, img)
}
