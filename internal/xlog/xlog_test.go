// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xlog

import (
	"bytes"
	"log"
	"testing"
)

func TestNilLogger(t *testing.T) {
	// must not panic
	Print(nil, "a")
	Printf(nil, "%d", 1)
	Println(nil, "b")
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, "", 0)
	Printf(l, "value %d", 42)
	if s := buf.String(); s != "value 42\n" {
		t.Fatalf("logger output %q; want %q", s, "value 42\n")
	}
}
