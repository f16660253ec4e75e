// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/huff"
	"github.com/ulikunitz/huff/internal/xlog"
)

const huffSuffix = ".huff"

// packer describes the two directions a file can be processed in.
type packer interface {
	outputPaths(path string) (outputPath, tmpPath string, err error)
	pack(w io.Writer, r io.Reader, opts *options) (err error)
}

// debugLogger returns the logger injected into the codec configurations; it
// is nil unless verbose mode has been requested.
func debugLogger(opts *options) xlog.Logger {
	if !opts.verbose {
		return nil
	}
	return log.New(os.Stderr, "huffgo: ", 0)
}

type huffPacker struct{}

func (p huffPacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if path == "" {
		err = errors.New("path is empty")
		return
	}
	if strings.HasSuffix(path, huffSuffix) {
		err = fmt.Errorf("path %s has suffix %s -- ignored",
			path, huffSuffix)
		return
	}
	out = path + huffSuffix
	tmp = out + ".pack"
	return
}

func (p huffPacker) pack(w io.Writer, r io.Reader, opts *options) error {
	bw := bufio.NewWriter(w)
	hw := huff.NewWriterConfig(bw, huff.WriterConfig{
		Debug: debugLogger(opts),
	})
	if _, err := io.Copy(hw, r); err != nil {
		return err
	}
	if err := hw.Close(); err != nil {
		return err
	}
	return bw.Flush()
}

type huffUnpacker struct{}

func (u huffUnpacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if !strings.HasSuffix(path, huffSuffix) {
		err = fmt.Errorf("path %s has no suffix %s",
			path, huffSuffix)
		return
	}
	base := filepath.Base(path)
	if base == huffSuffix {
		err = fmt.Errorf(
			"path %s has only suffix %s as filename",
			path, huffSuffix)
		return
	}
	out = path[:len(path)-len(huffSuffix)]
	tmp = out + ".unpack"
	return
}

func (u huffUnpacker) pack(w io.Writer, r io.Reader, opts *options) error {
	hr, err := huff.NewReaderConfig(bufio.NewReader(r), huff.ReaderConfig{
		Debug: debugLogger(opts),
	})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, hr)
	return err
}

// signalHandler removes the temporary file if the program is interrupted.
// The returned quit channel must be closed to release the handler.
func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			if tmpPath != "-" {
				os.Remove(tmpPath)
			}
			os.Exit(7)
		}
	}()
	return quit
}

// packFile opens the input and temporary output file and runs the packer
// over them.
func packFile(pck packer, path, tmpPath string, opts *options) error {
	var err error

	// open reader
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		fi, err := os.Lstat(path)
		if err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("%s is not a regular file", path)
		}
		r, err = os.Open(path)
		if err != nil {
			return err
		}
	}
	defer func() {
		if err != nil {
			r.Close()
		} else {
			err = r.Close()
		}
	}()

	// open writer
	var w *os.File
	if tmpPath == "-" {
		w = os.Stdout
	} else {
		if opts.force {
			os.Remove(tmpPath)
		}
		w, err = os.OpenFile(tmpPath,
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				w.Close()
			} else {
				err = w.Close()
			}
		}()
	}

	err = pck.pack(w, r, opts)
	return err
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the operation
// returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError strips the operation from a path error; the operation that
// detected a missing file is not relevant for users of the program.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

// processFile compresses or decompresses a single file into a temporary
// file and moves it over the output path on success. The input file is
// removed unless -k or -c is given or stdin is read.
func processFile(path string, opts *options) error {
	var pck packer
	if opts.decompress {
		pck = huffUnpacker{}
	} else {
		pck = huffPacker{}
	}
	outputPath, tmpPath, err := pck.outputPaths(path)
	if err != nil {
		return err
	}
	if opts.stdout {
		outputPath, tmpPath = "-", "-"
	}
	if outputPath != "-" {
		if _, err = os.Lstat(outputPath); err == nil && !opts.force {
			return fmt.Errorf("file %s exists", outputPath)
		}
		defer os.Remove(tmpPath)
	}
	quit := signalHandler(tmpPath)
	defer close(quit)

	if err = packFile(pck, path, tmpPath, opts); err != nil {
		return err
	}
	if tmpPath != "-" && outputPath != "-" {
		if err = os.Rename(tmpPath, outputPath); err != nil {
			return err
		}
	}
	if !opts.keep && !opts.stdout && path != "-" {
		if err = os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}
