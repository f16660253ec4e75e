// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"
)

const usageStr = `Usage: huffgo [OPTION]... [FILE]...
Compress or uncompress FILEs in the .huff format (by default, compress FILES
in place).

  -c, --stdout      write to standard output and don't delete input files
  -d, --decompress  force decompression
  -f, --force       force overwrite of output file
  -h, --help        give this help
  -k, --keep        keep (don't delete) input files
  -q, --quiet       suppress all warnings
  -v, --verbose     verbose mode
  -V, --version     display version string
  -z, --compress    force compression

With no file, or when FILE is -, read standard input.

Report bugs using <https://github.com/ulikunitz/huff/issues>.
`

const version = "0.1.0"

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// options collects the flags controlling the processing of files.
type options struct {
	stdout     bool
	decompress bool
	force      bool
	keep       bool
	quiet      bool
	verbose    bool
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(3) }
	var (
		help        = pflag.BoolP("help", "h", false, "")
		stdout      = pflag.BoolP("stdout", "c", false, "")
		decompress  = pflag.BoolP("decompress", "d", false, "")
		force       = pflag.BoolP("force", "f", false, "")
		keep        = pflag.BoolP("keep", "k", false, "")
		quiet       = pflag.BoolP("quiet", "q", false, "")
		verbose     = pflag.BoolP("verbose", "v", false, "")
		showVersion = pflag.BoolP("version", "V", false, "")
		compress    = pflag.BoolP("compress", "z", false, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *showVersion {
		fmt.Printf("%s %s\n", cmdName, version)
		os.Exit(0)
	}
	if *compress {
		*decompress = false
	}

	opts := options{
		stdout:     *stdout,
		decompress: *decompress,
		force:      *force,
		keep:       *keep,
		quiet:      *quiet,
		verbose:    *verbose,
	}

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	exitCode := 0
	for _, path := range args {
		if err := processFile(path, &opts); err != nil {
			if !opts.quiet {
				log.Print(userError(err))
			}
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
