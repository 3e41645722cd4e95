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

package movegen

import "github.com/frankkopp/chesscore/types"

// castlingSide describes one of the four possible castling moves: the
// right that must be set, the empty-path mask between rook and king,
// the squares the king actually steps through (destination included,
// origin excluded - these must avoid danger) and the king's from/to.
type castlingSide struct {
	right     types.CastlingRights
	emptyMask types.Bitboard
	kingPath  types.Bitboard
	kingFrom  types.Square
	kingTo    types.Square
	special   types.MoveSpecial
}

var castlingSides = [2][4]castlingSide{
	types.White: {
		types.MoveCastleK: {
			right:     types.CastlingWhiteOO,
			emptyMask: types.SqF1.SquareBb() | types.SqG1.SquareBb(),
			kingPath:  types.SqF1.SquareBb() | types.SqG1.SquareBb(),
			kingFrom:  types.SqE1,
			kingTo:    types.SqG1,
			special:   types.MoveCastleK,
		},
		types.MoveCastleQ: {
			right:     types.CastlingWhiteOOO,
			emptyMask: types.SqB1.SquareBb() | types.SqC1.SquareBb() | types.SqD1.SquareBb(),
			kingPath:  types.SqC1.SquareBb() | types.SqD1.SquareBb(),
			kingFrom:  types.SqE1,
			kingTo:    types.SqC1,
			special:   types.MoveCastleQ,
		},
	},
	types.Black: {
		types.MoveCastleK: {
			right:     types.CastlingBlackOO,
			emptyMask: types.SqF8.SquareBb() | types.SqG8.SquareBb(),
			kingPath:  types.SqF8.SquareBb() | types.SqG8.SquareBb(),
			kingFrom:  types.SqE8,
			kingTo:    types.SqG8,
			special:   types.MoveCastleK,
		},
		types.MoveCastleQ: {
			right:     types.CastlingBlackOOO,
			emptyMask: types.SqB8.SquareBb() | types.SqC8.SquareBb() | types.SqD8.SquareBb(),
			kingPath:  types.SqC8.SquareBb() | types.SqD8.SquareBb(),
			kingFrom:  types.SqE8,
			kingTo:    types.SqC8,
			special:   types.MoveCastleQ,
		},
	},
}

// appendCastlingMoves is only called when the side to move is not in
// check; check for that belongs to the caller.
func appendCastlingMoves(moves []types.Move, pos Position, allOcc, danger types.Bitboard) []types.Move {
	for _, side := range castlingSides[pos.Side] {
		if !pos.Castling.Has(side.right) {
			continue
		}
		if side.emptyMask&allOcc != 0 {
			continue
		}
		if side.kingPath&danger != 0 {
			continue
		}
		moves = append(moves, types.NewMoveExt(side.kingFrom, side.kingTo, types.PtNone, side.special))
	}
	return moves
}
