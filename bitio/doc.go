// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitio provides a bit-oriented reader and writer on top of
// byte-oriented streams. Bits fill bytes starting at the most significant
// bit, so the first bit written becomes the high bit of the first byte.
package bitio
