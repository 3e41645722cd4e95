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

import "github.com/frankkopp/chesscore/types"

// castleRookSquares gives the rook's from/to squares for each castling
// side, keyed by mover color and MoveSpecial (MoveCastleK/MoveCastleQ).
var castleRookSquares = [2][4]struct{ from, to types.Square }{
	types.White: {
		types.MoveCastleK: {types.SqH1, types.SqF1},
		types.MoveCastleQ: {types.SqA1, types.SqD1},
	},
	types.Black: {
		types.MoveCastleK: {types.SqH8, types.SqF8},
		types.MoveCastleQ: {types.SqA8, types.SqD8},
	},
}

// Apply returns the board that results from playing move by mover on b.
// It is pure: b is never mutated. Apply trusts its caller - it performs
// no legality checking, only the mechanical bookkeeping of moving pieces
// around, per the move's encoded from/to/promotion/special fields.
func Apply(b Board, move types.Move, mover types.Color) Board {
	from, to := move.From(), move.To()
	piece := b.At(from)

	switch {
	case move.IsPromotion():
		b = b.WithoutPiece(from)
		if captured := b.At(to); captured != types.PieceNone {
			b = b.WithoutPiece(to)
		}
		b = b.WithPiece(types.MakePiece(mover, move.Promotion()), to)

	case move.IsEnPassant():
		b = b.WithoutPiece(from)
		b = b.WithPiece(piece, to)
		capturedSq := to.To(mover.Flip().PawnDirection())
		b = b.WithoutPiece(capturedSq)

	default:
		if captured := b.At(to); captured != types.PieceNone {
			b = b.WithoutPiece(to)
		}
		b = b.WithoutPiece(from)
		b = b.WithPiece(piece, to)

		if move.IsCastle() {
			rook := castleRookSquares[mover][move.Special()]
			rookPiece := b.At(rook.from)
			b = b.WithoutPiece(rook.from)
			b = b.WithPiece(rookPiece, rook.to)
		}
	}

	return b
}
