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

package board

import (
	"github.com/frankkopp/chesscore/attacks"
	"github.com/frankkopp/chesscore/magic"
	"github.com/frankkopp/chesscore/types"
)

// Attacked reports whether sq is attacked by any piece of byColor on b.
// The pawn-attack probe is the reverse-lookup trick: the *opponent's*
// pawn-attack table rooted at sq tells us which squares a pawn standing
// there would need an attacker on, so intersecting it with byColor's own
// pawns answers "is sq attacked by a byColor pawn".
func Attacked(b Board, sq types.Square, byColor types.Color) bool {
	if attacks.PawnAttacks(byColor.Flip())[sq]&b.Pieces(byColor, types.Pawn) != 0 {
		return true
	}
	if attacks.KnightAttacks[sq]&b.Pieces(byColor, types.Knight) != 0 {
		return true
	}
	if attacks.KingAttacks[sq]&b.Pieces(byColor, types.King) != 0 {
		return true
	}
	occ := b.OccupiedAll()
	bishopsQueens := b.Pieces(byColor, types.Bishop) | b.Pieces(byColor, types.Queen)
	if magic.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.Pieces(byColor, types.Rook) | b.Pieces(byColor, types.Queen)
	if magic.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}
