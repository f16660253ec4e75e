// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff_test

import (
	"bytes"
	"crypto/sha256"
	"io"
	"io/fs"
	"testing"

	"github.com/ulikunitz/huff"
	"github.com/ulikunitz/zdata"
)

type file struct {
	Name string
	Data []byte
}

func loadFiles(t *testing.T, corpus fs.FS) (files []file) {
	t.Helper()
	err := fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, file{Name: path, Data: data})
			return nil
		})
	if err != nil {
		t.Fatalf("loading corpus error %s", err)
	}
	return files
}

func TestSilesia(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Silesia corpus test in short mode")
	}
	files := loadFiles(t, zdata.Silesia)
	for _, f := range files {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			s := sha256.Sum256(f.Data)
			hsum := s[:]

			buf := new(bytes.Buffer)
			w := huff.NewWriter(buf)
			if _, err := io.Copy(w, bytes.NewReader(f.Data)); err != nil {
				t.Fatalf("%s: io.Copy compression error %s",
					f.Name, err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("%s: w.Close() error %s", f.Name, err)
			}
			t.Logf("%s: compressed %d of %d bytes", f.Name,
				buf.Len(), len(f.Data))

			h := sha256.New()
			r, err := huff.NewReader(buf)
			if err != nil {
				t.Fatalf("%s: huff.NewReader error %s",
					f.Name, err)
			}
			k, err := io.Copy(h, r)
			if err != nil {
				t.Fatalf("%s: io.Copy decompression error %s",
					f.Name, err)
			}
			if k != int64(len(f.Data)) {
				t.Fatalf("%s: decompressed %d bytes; want %d",
					f.Name, k, len(f.Data))
			}
			if !bytes.Equal(h.Sum(nil), hsum) {
				t.Fatalf("%s: decompressed data differs from"+
					" original", f.Name)
			}
		})
	}
}
