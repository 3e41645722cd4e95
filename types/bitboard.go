/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, To any person obtaining a copy
 * of this software and associated documentation files (the "Software"), To deal
 * in the Software without restriction, including without limitation the rights
 * To use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and To permit persons To whom the Software is
 * furnished To do so, subject To the following conditions:
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
	"math/bits"
	"strings"

	"github.com/frankkopp/chesscore/internal/util"
)

// Bitboard holds one bit per square: bit i corresponds to Square(i).
type Bitboard uint64

//noinspection ALL
const (
	BbZero Bitboard = 0
	BbOne  Bitboard = 1
	BbAll  Bitboard = ^BbZero

	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	// Rank bitboards are named by chess rank label; Rank8Bb is the low
	// byte because SqA8 == 0.
	Rank8Bb Bitboard = 0xFF
	Rank7Bb Bitboard = Rank8Bb << 8
	Rank6Bb Bitboard = Rank8Bb << 16
	Rank5Bb Bitboard = Rank8Bb << 24
	Rank4Bb Bitboard = Rank8Bb << 32
	Rank3Bb Bitboard = Rank8Bb << 40
	Rank2Bb Bitboard = Rank8Bb << 48
	Rank1Bb Bitboard = Rank8Bb << 56
)

// SquareBb returns the single-bit Bitboard for sq.
func (sq Square) SquareBb() Bitboard {
	return BbOne << sq
}

// PushSquare returns b with sq's bit set.
func PushSquare(b Bitboard, sq Square) Bitboard {
	return b | sq.SquareBb()
}

// PushSquare sets sq's bit in *b.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.SquareBb()
}

// PopSquare returns b with sq's bit cleared.
func PopSquare(b Bitboard, sq Square) Bitboard {
	return b &^ sq.SquareBb()
}

// PopSquare clears sq's bit in *b.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.SquareBb()
}

// ShiftBitboard shifts every set bit of b one square in direction d,
// dropping bits that would wrap around the a/h file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) >> 7
	case Northwest:
		return (b &^ FileABb) >> 9
	case Southeast:
		return (b &^ FileHBb) << 9
	case Southwest:
		return (b &^ FileABb) << 7
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// Lsb returns the least significant set bit as a Square, or SqNone if b
// is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square, or SqNone if b
// is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set bit of *b, or
// SqNone if it was already empty.
func (b *Bitboard) PopLsb() Square {
	lsb := b.Lsb()
	if lsb != SqNone {
		*b &= *b - 1
	}
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Str returns the raw 64 character binary representation of b.
func (b Bitboard) Str() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StrBoard renders b as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) StrBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r <= Rank1; r++ {
		for f := FileA; f <= FileH; f++ {
			if b&SquareOf(f, r).SquareBb() != 0 {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance between two squares, the
// number of king steps needed to go from one to the other.
func SquareDistance(s1, s2 Square) int {
	fd := FileDistance(s1.FileOf(), s2.FileOf())
	rd := RankDistance(s1.RankOf(), s2.RankOf())
	if fd > rd {
		return fd
	}
	return rd
}
