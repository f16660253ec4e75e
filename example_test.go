// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ulikunitz/huff"
)

func Example() {
	var buf bytes.Buffer
	w := huff.NewWriter(&buf)
	_, err := fmt.Fprint(w, "The quick brown fox jumps over the lazy dog.")
	if err != nil {
		log.Fatalf("fmt.Fprint error %s", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("w.Close() error %s", err)
	}
	r, err := huff.NewReader(&buf)
	if err != nil {
		log.Fatalf("huff.NewReader error %s", err)
	}
	if _, err = io.Copy(os.Stdout, r); err != nil {
		log.Fatalf("io.Copy error %s", err)
	}
	// Output:
	// The quick brown fox jumps over the lazy dog.
}
