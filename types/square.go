/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"fmt"

	"github.com/frankkopp/chesscore/internal/assert"
)

// Square represents exactly one square on a chess board. Index 0 is a8,
// index 63 is h1 - see the types package doc for the full layout.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA8 Square = iota // 0
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8 // 7
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1   // 63
	SqNone // 64
)

// IsValid checks if sq represents a valid square on a chess board.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns the square for the given file and rank, or SqNone if
// either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// MakeSquare parses a two character square string (e.g. "e4") and
// returns the square, or SqNone if it is not a valid square string.
func MakeSquare(s string) Square {
	if assert.DEBUG {
		assert.Assert(len(s) == 2, "square string is not 2 characters long")
	}
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := rankFromChar(s[1])
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

func rankFromChar(c byte) Rank {
	if c < '1' || c > '8' {
		return RankNone
	}
	return Rank('8' - c)
}

// String returns the file letter and rank digit (e.g. "e4"), or "-" if
// sq is not valid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square one step away from sq in direction d, or SqNone
// if that step would leave the board (including wrapping around a file
// edge for the diagonal and horizontal directions).
func (sq Square) To(d Direction) Square {
	switch d {
	case North, South:
		// no file changes, only rank over/underflow can leave the board
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	n := int(sq) + int(d)
	if n < 0 || n >= SqLength {
		return SqNone
	}
	return Square(n)
}
