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

// Package movegen generates legal moves directly, by construction: a
// checkers bitboard, a danger-squares mask and a per-square pin mask
// gate every candidate move before it is ever appended to the result.
// There is no pseudo-legal pass and no play-then-undo filtering step.
package movegen

import (
	"github.com/frankkopp/chesscore/attacks"
	"github.com/frankkopp/chesscore/board"
	"github.com/frankkopp/chesscore/magic"
	"github.com/frankkopp/chesscore/types"
)

// Position is the minimal slice of game state the generator needs. It
// is deliberately narrower than a full game record so this package
// never has to import the package that owns move history and the
// fifty-move counter.
type Position struct {
	Board    board.Board
	Side     types.Color
	Castling types.CastlingRights
	EpSquare types.Square
}

// Legal returns every legal move for pos.Side to move. The returned
// slice's order is unspecified and it never contains duplicates.
func Legal(pos Position) []types.Move {
	moves := make([]types.Move, 0, types.MaxMoves)

	us, opp := pos.Side, pos.Side.Flip()
	ownOcc := pos.Board.Occupied(us)
	oppOcc := pos.Board.Occupied(opp)
	allOcc := ownOcc | oppOcc
	kingSq := pos.Board.Pieces(us, types.King).Lsb()

	checkers := checkersOf(pos.Board, kingSq, opp)
	danger := dangerSquares(pos.Board, opp, allOcc&^pos.Board.Pieces(us, types.King))

	moves = appendKingMoves(moves, kingSq, ownOcc, danger)

	if checkers.PopCount() >= 2 {
		return moves
	}

	checkMask := fullCheckMask(checkers, kingSq)
	pinMask := pinMasksOf(pos.Board, kingSq, us, opp)

	moves = appendKnightMoves(moves, pos.Board, us, ownOcc, checkMask, pinMask)
	moves = appendSliderMoves(moves, pos.Board, us, ownOcc, allOcc, checkMask, pinMask)
	moves = appendPawnMoves(moves, pos, ownOcc, allOcc, checkMask, pinMask, kingSq)

	if checkers == types.BbZero {
		moves = appendCastlingMoves(moves, pos, allOcc, danger)
	}

	return moves
}

// LegalPacked is Legal with each move already unwrapped to its packed
// uint32 scalar, for a caller that only forwards the value on - across a
// wire, into another language's FFI boundary, into a channel feeding a
// worker pool. It builds the list with Legal and then copies it into a
// new []uint32, so it allocates one slice more than Legal does.
func LegalPacked(pos Position) []uint32 {
	moves := Legal(pos)
	packed := make([]uint32, len(moves))
	for i, m := range moves {
		packed[i] = uint32(m)
	}
	return packed
}

// HasLegalMove short-circuits at the first legal move found; terminal
// state detection only ever needs to know whether any move exists.
func HasLegalMove(pos Position) bool {
	us, opp := pos.Side, pos.Side.Flip()
	ownOcc := pos.Board.Occupied(us)
	oppOcc := pos.Board.Occupied(opp)
	allOcc := ownOcc | oppOcc
	kingSq := pos.Board.Pieces(us, types.King).Lsb()

	checkers := checkersOf(pos.Board, kingSq, opp)
	danger := dangerSquares(pos.Board, opp, allOcc&^pos.Board.Pieces(us, types.King))

	if attacks.KingAttacks[kingSq]&^ownOcc&^danger != types.BbZero {
		return true
	}
	if checkers.PopCount() >= 2 {
		return false
	}

	checkMask := fullCheckMask(checkers, kingSq)
	pinMask := pinMasksOf(pos.Board, kingSq, us, opp)

	if len(appendKnightMoves(nil, pos.Board, us, ownOcc, checkMask, pinMask)) > 0 {
		return true
	}
	if len(appendSliderMoves(nil, pos.Board, us, ownOcc, allOcc, checkMask, pinMask)) > 0 {
		return true
	}
	if len(appendPawnMoves(nil, pos, ownOcc, allOcc, checkMask, pinMask, kingSq)) > 0 {
		return true
	}
	return false
}

func fullCheckMask(checkers types.Bitboard, kingSq types.Square) types.Bitboard {
	if checkers == types.BbZero {
		return types.BbAll
	}
	checkerSq := checkers.Lsb()
	return attacks.Between[kingSq][checkerSq] | checkerSq.SquareBb()
}

func appendKingMoves(moves []types.Move, kingSq types.Square, ownOcc, danger types.Bitboard) []types.Move {
	targets := attacks.KingAttacks[kingSq] &^ ownOcc &^ danger
	for targets != types.BbZero {
		to := targets.PopLsb()
		moves = append(moves, types.NewMove(kingSq, to))
	}
	return moves
}

func appendKnightMoves(moves []types.Move, b board.Board, us types.Color, ownOcc, checkMask types.Bitboard, pinMask [types.SqLength]types.Bitboard) []types.Move {
	knights := b.Pieces(us, types.Knight)
	for knights != types.BbZero {
		from := knights.PopLsb()
		if pinMask[from] != types.BbAll {
			continue
		}
		targets := attacks.KnightAttacks[from] &^ ownOcc & checkMask
		for targets != types.BbZero {
			to := targets.PopLsb()
			moves = append(moves, types.NewMove(from, to))
		}
	}
	return moves
}

func appendSliderMoves(moves []types.Move, b board.Board, us types.Color, ownOcc, allOcc, checkMask types.Bitboard, pinMask [types.SqLength]types.Bitboard) []types.Move {
	for _, pt := range [3]types.PieceType{types.Bishop, types.Rook, types.Queen} {
		pieces := b.Pieces(us, pt)
		for pieces != types.BbZero {
			from := pieces.PopLsb()
			targets := sliderAttacks(pt, from, allOcc) &^ ownOcc & checkMask & pinMask[from]
			for targets != types.BbZero {
				to := targets.PopLsb()
				moves = append(moves, types.NewMove(from, to))
			}
		}
	}
	return moves
}

func sliderAttacks(pt types.PieceType, from types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Bishop:
		return magic.BishopAttacks(from, occupied)
	case types.Rook:
		return magic.RookAttacks(from, occupied)
	default:
		return magic.QueenAttacks(from, occupied)
	}
}
