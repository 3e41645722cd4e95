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

// Package attacks holds the non-sliding attack tables (knight, king, pawn)
// and the between/line geometry tables, all built once in init(). Sliding
// piece attacks (rook/bishop/queen) live in the magic package since they
// need the magic-number machinery; of the engine packages this one only
// depends on types (plus internal/clog for logging).
package attacks

import (
	"github.com/frankkopp/chesscore/internal/clog"
	"github.com/frankkopp/chesscore/types"
)

var log = clog.Get("attacks")

// knightDeltas and kingDeltas are expressed as (file, rank) offsets since
// the knight's L-shape and the king's one-step moves both need file-wrap
// checking that a single Direction constant can't express for the knight.
var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// KnightAttacks, KingAttacks, WhitePawnAttacks and BlackPawnAttacks are
// indexed by origin square and hold the bitboard of squares attacked
// from there.
var (
	KnightAttacks    [types.SqLength]types.Bitboard
	KingAttacks      [types.SqLength]types.Bitboard
	WhitePawnAttacks [types.SqLength]types.Bitboard
	BlackPawnAttacks [types.SqLength]types.Bitboard
)

// Between holds, for each square pair that share a rank, file or diagonal,
// the bitboard of squares strictly between them. Zero for unaligned pairs
// and for a square paired with itself.
var Between [types.SqLength][types.SqLength]types.Bitboard

// Line holds, for each aligned square pair, the full board-edge-to-edge
// line through both squares (including both endpoints). Zero for
// unaligned pairs.
var Line [types.SqLength][types.SqLength]types.Bitboard

// PawnAttacks returns the attack table for the given pawn color.
func PawnAttacks(c types.Color) *[types.SqLength]types.Bitboard {
	if c == types.White {
		return &WhitePawnAttacks
	}
	return &BlackPawnAttacks
}

var rayDirections = [8]types.Direction{
	types.North, types.South, types.East, types.West,
	types.Northeast, types.Northwest, types.Southeast, types.Southwest,
}

var oppositeDirection = map[types.Direction]types.Direction{
	types.North: types.South, types.South: types.North,
	types.East: types.West, types.West: types.East,
	types.Northeast: types.Southwest, types.Southwest: types.Northeast,
	types.Northwest: types.Southeast, types.Southeast: types.Northwest,
}

func init() {
	log.Debug("building knight/king/pawn/between/line tables")
	for sq := types.SqA8; sq <= types.SqH1; sq++ {
		KnightAttacks[sq] = slideOffsets(sq, knightDeltas[:])
		KingAttacks[sq] = slideOffsets(sq, kingDeltas[:])
		WhitePawnAttacks[sq] = pawnAttack(sq, types.Northeast, types.Northwest)
		BlackPawnAttacks[sq] = pawnAttack(sq, types.Southeast, types.Southwest)
	}

	for sq1 := types.SqA8; sq1 <= types.SqH1; sq1++ {
		for _, d := range rayDirections {
			acc := types.BbZero
			s := sq1
			for {
				next := s.To(d)
				if next == types.SqNone {
					break
				}
				Between[sq1][next] = acc
				if Line[sq1][next] == types.BbZero {
					full := sq1.SquareBb() | acc | next.SquareBb() |
						rayFrom(sq1, oppositeDirection[d]) | rayFrom(next, d)
					Line[sq1][next] = full
					Line[next][sq1] = full
				}
				acc |= next.SquareBb()
				s = next
			}
		}
	}
}

// rayFrom returns every square from sq to the board edge in direction d,
// not including sq itself.
func rayFrom(sq types.Square, d types.Direction) types.Bitboard {
	b := types.BbZero
	s := sq
	for {
		next := s.To(d)
		if next == types.SqNone {
			break
		}
		b |= next.SquareBb()
		s = next
	}
	return b
}

func slideOffsets(sq types.Square, deltas [][2]int) types.Bitboard {
	b := types.BbZero
	f, r := int(sq.FileOf()), int(sq.RankOf())
	for _, d := range deltas {
		nf, nr := f+d[0], r+d[1]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		b |= types.SquareOf(types.File(nf), types.Rank(nr)).SquareBb()
	}
	return b
}

func pawnAttack(sq types.Square, d1, d2 types.Direction) types.Bitboard {
	b := types.BbZero
	if s := sq.To(d1); s != types.SqNone {
		b |= s.SquareBb()
	}
	if s := sq.To(d2); s != types.SqNone {
		b |= s.SquareBb()
	}
	return b
}
