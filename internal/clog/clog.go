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

// Package clog is a thin helper around "github.com/op/go-logging" so every
// package in chesscore gets a consistently formatted, named logger with one
// line of setup.
package clog

import (
	"os"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/internal/rulesconfig"
)

// Printer formats numbers in log messages (node counts, perft totals) with
// locale-aware grouping, e.g. "8,902" instead of "8902".
var Printer = message.NewPrinter(language.English)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}:  %{message}`,
)

// Get returns a named logger backed by stdout, leveled from
// rulesconfig.Settings.Log.Level.
func Get(name string) *logging.Logger {
	log := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(rulesconfig.Settings.Log.Level), "")
	log.SetBackend(leveled)
	return log
}
