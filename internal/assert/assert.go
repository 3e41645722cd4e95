// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package assert lets internal invariants be checked in debug builds without
// any cost in release builds. Internal bitboard routines assume well-formed
// input (§7 of the rules) and rely on this package rather than returning
// errors on what should be unreachable states.
package assert

import "fmt"

// DEBUG gates all calls to Assert. It is false here so that release builds
// pay nothing for invariant checks; build with -tags debug to flip it.
const DEBUG = debugEnabled

// Assert panics with the formatted message if test is false. Callers must
// still guard calls with "if assert.DEBUG { ... }" so the Go compiler can
// eliminate the whole call (including argument evaluation) in release
// builds.
func Assert(test bool, format string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(format, a...))
	}
}
