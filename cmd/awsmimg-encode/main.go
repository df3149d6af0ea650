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

// awsmimg-encode converts a bitmap image into a packed AGB/NTR graphics
// blob.
//
// Usage:
//
//	awsmimg-encode -format agb4 input.png output.bin
//
// The output file is truncated to the encoded region by default; pass
// -overlay to leave bytes past the encoded region untouched.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/kmeisthax/awsmimg"
)

var (
	format  = flag.String("format", "", "output format: agb4, agb8t, agb8c, agb16, or ntr16")
	offset  = flag.Int64("offset", 0, "byte offset into the output file")
	overlay = flag.Bool("overlay", false, "leave bytes past the encoded region untouched (default: truncate to it)")
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
		return fmt.Errorf("usage: awsmimg-encode -format FORMAT input output")
	}
	if *format == "" {
		return fmt.Errorf("-format is required")
	}

	inputName, outputName := flag.Arg(0), flag.Arg(1)
	fmt.Printf("Converting %s to %s\n", inputName, outputName)

	in, err := os.Open(inputName)
	if err != nil {
		return err
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return err
	}

	out, err := os.OpenFile(outputName, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	return awsmimg.EncodeToFile(out, img, *format, awsmimg.Options{
		Offset:  *offset,
		Overlay: *overlay,
	})
}
