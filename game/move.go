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

package game

import (
	"github.com/frankkopp/chesscore/board"
	"github.com/frankkopp/chesscore/types"
	"github.com/frankkopp/chesscore/zobrist"
)

// MakeMove looks up the legal move matching (from, to, promotion) and
// plays it, returning the resulting Game. promotion should be PtNone
// for every move that is not a pawn promotion. ErrIllegalMove is
// returned, and g is left untouched, if no legal move matches.
func MakeMove(g Game, from, to types.Square, promotion types.PieceType) (Game, error) {
	if !from.IsValid() || !to.IsValid() {
		return Game{}, ErrInvalidSquare
	}
	for _, m := range g.LegalMoves() {
		if m.From() == from && m.To() == to && m.Promotion() == promotion {
			return applyMove(g, m), nil
		}
	}
	return Game{}, ErrIllegalMove
}

// applyMove plays m, which the caller guarantees is legal for g, and
// returns the resulting Game. It mirrors §4.8 of the state machine:
// board mutation, castling-rights invalidation, the en-passant target
// lifecycle, the two move clocks, the king-square cache and the
// incremental Zobrist update all change together.
func applyMove(g Game, m types.Move) Game {
	from, to := m.From(), m.To()
	us, opp := g.SideToMove, g.SideToMove.Flip()
	moverPiece := g.Board.At(from)

	capturedSq := to
	if m.IsEnPassant() {
		capturedSq = to.To(opp.PawnDirection())
	}
	capturedPiece := g.Board.At(capturedSq)

	newBoard := board.Apply(g.Board, m, us)

	newCastling := g.Castling &^ (types.CastlingMask[from] | types.CastlingMask[to])

	newEp := types.SqNone
	if moverPiece.TypeOf() == types.Pawn && types.SquareDistance(from, to) == 2 && from.FileOf() == to.FileOf() {
		newEp = to.To(opp.PawnDirection())
	}

	isCapture := m.IsEnPassant() || capturedPiece != types.PieceNone
	newHalfMove := g.HalfMoveClock + 1
	if isCapture || moverPiece.TypeOf() == types.Pawn {
		newHalfMove = 0
	}

	newFullMove := g.FullMoveNumber
	if us == types.Black {
		newFullMove++
	}

	newKingSq := g.KingSquare
	if moverPiece.TypeOf() == types.King {
		newKingSq[us] = to
	}

	newHash := g.Hash
	newHash = zobrist.ToggleSideToMove(newHash)
	if g.EpSquare != types.SqNone {
		newHash = zobrist.ToggleEnPassant(newHash, g.EpSquare.FileOf())
	}
	if newEp != types.SqNone {
		newHash = zobrist.ToggleEnPassant(newHash, newEp.FileOf())
	}
	if newCastling != g.Castling {
		newHash = zobrist.ToggleCastling(newHash, g.Castling)
		newHash = zobrist.ToggleCastling(newHash, newCastling)
	}
	newHash = zobrist.TogglePiece(newHash, moverPiece, from)
	placedPiece := moverPiece
	if m.IsPromotion() {
		placedPiece = types.MakePiece(us, m.Promotion())
	}
	newHash = zobrist.TogglePiece(newHash, placedPiece, to)
	if isCapture {
		newHash = zobrist.TogglePiece(newHash, capturedPiece, capturedSq)
	}
	if m.IsCastle() {
		rook := castleRookSquares[us][m.Special()]
		newHash = zobrist.TogglePiece(newHash, types.MakePiece(us, types.Rook), rook.from)
		newHash = zobrist.TogglePiece(newHash, types.MakePiece(us, types.Rook), rook.to)
	}

	history := append(append([]zobrist.Key(nil), g.HashHistory...), g.Hash)

	return Game{
		Board:          newBoard,
		SideToMove:     opp,
		Castling:       newCastling,
		EpSquare:       newEp,
		HalfMoveClock:  newHalfMove,
		FullMoveNumber: newFullMove,
		KingSquare:     newKingSq,
		Hash:           newHash,
		HashHistory:    history,
	}
}

// castleRookSquares mirrors board.castleRookSquares (unexported there)
// so the incremental hash update can XOR the rook's from/to without
// re-deriving them from the move's special flag by hand.
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
