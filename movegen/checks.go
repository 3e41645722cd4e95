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
	"github.com/frankkopp/chesscore/board"
	"github.com/frankkopp/chesscore/magic"
	"github.com/frankkopp/chesscore/types"
)

// checkersOf returns the bitboard of byColor pieces that attack kingSq.
// Unlike board.Attacked, which only answers yes/no, this identifies
// exactly which pieces give check, which the check-mask construction
// needs when exactly one checker exists.
func checkersOf(b board.Board, kingSq types.Square, byColor types.Color) types.Bitboard {
	var checkers types.Bitboard
	checkers |= attacks.PawnAttacks(byColor.Flip())[kingSq] & b.Pieces(byColor, types.Pawn)
	checkers |= attacks.KnightAttacks[kingSq] & b.Pieces(byColor, types.Knight)
	occ := b.OccupiedAll()
	bishopsQueens := b.Pieces(byColor, types.Bishop) | b.Pieces(byColor, types.Queen)
	checkers |= magic.BishopAttacks(kingSq, occ) & bishopsQueens
	rooksQueens := b.Pieces(byColor, types.Rook) | b.Pieces(byColor, types.Queen)
	checkers |= magic.RookAttacks(kingSq, occ) & rooksQueens
	return checkers
}

// dangerSquares returns every square byColor attacks given occAfterKingRemoved,
// the board occupancy with the defending king removed so that sliding
// pieces see through where the king used to stand - otherwise a king
// fleeing straight back along a rook's or bishop's ray would look safe.
func dangerSquares(b board.Board, byColor types.Color, occAfterKingRemoved types.Bitboard) types.Bitboard {
	var danger types.Bitboard

	pawns := b.Pieces(byColor, types.Pawn)
	for pawns != types.BbZero {
		sq := pawns.PopLsb()
		danger |= attacks.PawnAttacks(byColor)[sq]
	}
	knights := b.Pieces(byColor, types.Knight)
	for knights != types.BbZero {
		sq := knights.PopLsb()
		danger |= attacks.KnightAttacks[sq]
	}
	if king := b.Pieces(byColor, types.King); king != types.BbZero {
		danger |= attacks.KingAttacks[king.Lsb()]
	}

	bishops := b.Pieces(byColor, types.Bishop) | b.Pieces(byColor, types.Queen)
	for bishops != types.BbZero {
		sq := bishops.PopLsb()
		danger |= magic.BishopAttacks(sq, occAfterKingRemoved)
	}
	rooks := b.Pieces(byColor, types.Rook) | b.Pieces(byColor, types.Queen)
	for rooks != types.BbZero {
		sq := rooks.PopLsb()
		danger |= magic.RookAttacks(sq, occAfterKingRemoved)
	}
	return danger
}

// pinMasksOf returns, for every square, the bitboard a piece standing
// there is restricted to. Unpinned squares map to BbAll. A pinned
// piece's mask is the ray from the king through it out to (and
// including) the pinning piece - the only squares it may still move to
// without exposing its own king.
func pinMasksOf(b board.Board, kingSq types.Square, us, opp types.Color) [types.SqLength]types.Bitboard {
	var masks [types.SqLength]types.Bitboard
	for i := range masks {
		masks[i] = types.BbAll
	}

	ownOcc := b.Occupied(us)
	oppOcc := b.Occupied(opp)

	rookPinners := magic.RookAttacks(kingSq, oppOcc) & (b.Pieces(opp, types.Rook) | b.Pieces(opp, types.Queen))
	bishopPinners := magic.BishopAttacks(kingSq, oppOcc) & (b.Pieces(opp, types.Bishop) | b.Pieces(opp, types.Queen))

	for pinners := rookPinners | bishopPinners; pinners != types.BbZero; {
		pinnerSq := pinners.PopLsb()
		between := attacks.Between[kingSq][pinnerSq]
		blockers := between & ownOcc
		if blockers.PopCount() == 1 {
			pinnedSq := blockers.Lsb()
			masks[pinnedSq] = between | pinnerSq.SquareBb()
		}
	}
	return masks
}
