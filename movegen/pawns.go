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

import (
	"github.com/frankkopp/chesscore/attacks"
	"github.com/frankkopp/chesscore/magic"
	"github.com/frankkopp/chesscore/types"
)

var promotionRankBb = [2]types.Bitboard{types.Rank8Bb, types.Rank1Bb}
var doublePushRankBb = [2]types.Bitboard{types.Rank3Bb, types.Rank6Bb}

var promotionKinds = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

func appendPawnMoves(moves []types.Move, pos Position, ownOcc, allOcc, checkMask types.Bitboard, pinMask [types.SqLength]types.Bitboard, kingSq types.Square) []types.Move {
	us, opp := pos.Side, pos.Side.Flip()
	pawns := pos.Board.Pieces(us, types.Pawn)
	oppOcc := pos.Board.Occupied(opp)
	pushDir := us.PawnDirection()
	backDir := opp.PawnDirection()
	promRank := promotionRankBb[us]

	singlePushAll := types.ShiftBitboard(pawns, pushDir) &^ allOcc

	// single pushes
	for targets := singlePushAll; targets != types.BbZero; {
		to := targets.PopLsb()
		from := to.To(backDir)
		if checkMask&to.SquareBb() == 0 || pinMask[from]&to.SquareBb() == 0 {
			continue
		}
		moves = appendPawnTarget(moves, from, to, promRank)
	}

	// double pushes
	doubleOrigins := singlePushAll & doublePushRankBb[us]
	for targets := types.ShiftBitboard(doubleOrigins, pushDir) &^ allOcc; targets != types.BbZero; {
		to := targets.PopLsb()
		from := to.To(backDir).To(backDir)
		if checkMask&to.SquareBb() == 0 || pinMask[from]&to.SquareBb() == 0 {
			continue
		}
		moves = append(moves, types.NewMove(from, to))
	}

	// captures
	for from := pawns; from != types.BbZero; {
		sq := from.PopLsb()
		targets := attacks.PawnAttacks(us)[sq] & oppOcc & checkMask & pinMask[sq]
		for targets != types.BbZero {
			to := targets.PopLsb()
			moves = appendPawnTarget(moves, sq, to, promRank)
		}
	}

	moves = appendEnPassant(moves, pos, pawns, checkMask, pinMask, kingSq, allOcc)

	return moves
}

func appendPawnTarget(moves []types.Move, from, to types.Square, promRank types.Bitboard) []types.Move {
	if to.SquareBb()&promRank != 0 {
		for _, pt := range promotionKinds {
			moves = append(moves, types.NewMoveExt(from, to, pt, types.MoveNormal))
		}
		return moves
	}
	return append(moves, types.NewMove(from, to))
}

func appendEnPassant(moves []types.Move, pos Position, ownPawns types.Bitboard, checkMask types.Bitboard, pinMask [types.SqLength]types.Bitboard, kingSq types.Square, allOcc types.Bitboard) []types.Move {
	if pos.EpSquare == types.SqNone {
		return moves
	}
	us, opp := pos.Side, pos.Side.Flip()
	epSq := pos.EpSquare
	capturedSq := epSq.To(opp.PawnDirection())

	candidates := attacks.PawnAttacks(opp)[epSq] & ownPawns
	for candidates != types.BbZero {
		from := candidates.PopLsb()

		if checkMask&(epSq.SquareBb()|capturedSq.SquareBb()) == 0 {
			continue
		}
		if pinMask[from]&epSq.SquareBb() == 0 {
			continue
		}

		occAfter := (allOcc &^ from.SquareBb() &^ capturedSq.SquareBb()) | epSq.SquareBb()
		enemyRooksQueens := pos.Board.Pieces(opp, types.Rook) | pos.Board.Pieces(opp, types.Queen)
		if magic.RookAttacks(kingSq, occAfter)&enemyRooksQueens != 0 {
			continue
		}

		moves = append(moves, types.NewMoveExt(from, epSq, types.PtNone, types.MoveEnPassant))
	}
	return moves
}
