// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audsynth/formats/vorbis"
)

// Example decodes an Ogg Vorbis file at 24-bit resolution.
func Example() {
	in, err := os.Open("testdata/sample.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	stream, err := vorbis.Decoder{BitDepth: 24}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Format:", stream.Format())
	fmt.Println("Duration:", stream.Duration())
}
