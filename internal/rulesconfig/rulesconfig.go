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

// Package rulesconfig holds the small amount of global configuration the
// engine needs: log verbosity and an optional path to a pre-built magic
// table bundle (spec.md §4.2 - the core accepts either in-memory tables or
// a serialized bundle; the bundle's own format is not contractual and is
// owned by the host).
package rulesconfig

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Settings is the global configuration, defaulted below and optionally
// overridden by Load.
var Settings = conf{
	Log: logConfig{Level: 2}, // logging.WARNING
}

type conf struct {
	Log   logConfig
	Magic magicConfig
}

type logConfig struct {
	// Level follows github.com/op/go-logging levels: 0=CRITICAL .. 5=DEBUG.
	Level int
}

type magicConfig struct {
	// BundlePath, if non-empty, points at a pre-generated magic table
	// bundle the host produced offline. No package reads it: the magic
	// package always generates its tables in init().
	BundlePath string
}

// Load reads TOML configuration from path into Settings. A missing file is
// not an error - the defaults above remain in effect.
func Load(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	_, err := toml.DecodeFile(path, &Settings)
	return err
}
