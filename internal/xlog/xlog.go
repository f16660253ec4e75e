// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xlog supports debug output that can be switched off entirely. All
// functions accept a Logger value and do nothing if it is nil, so the
// formatting cost is only paid when debugging is enabled. The log.Logger
// type satisfies the Logger interface.
package xlog

import "fmt"

// Logger is the interface debug output is written to. The log.Logger type
// supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. A nil logger prints
// nothing.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf outputs the arguments using the format string. A nil logger prints
// nothing.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println outputs the arguments followed by a newline. A nil logger prints
// nothing.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
