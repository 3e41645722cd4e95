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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/board"
	"github.com/frankkopp/chesscore/types"
)

func startingPosition() Position {
	b := board.Empty()
	backRank := [8]types.PieceType{
		types.Rook, types.Knight, types.Bishop, types.Queen,
		types.King, types.Bishop, types.Knight, types.Rook,
	}
	for f := types.FileA; f <= types.FileH; f++ {
		b = b.WithPiece(types.MakePiece(types.Black, backRank[f]), types.SquareOf(f, types.Rank8))
		b = b.WithPiece(types.MakePiece(types.Black, types.Pawn), types.SquareOf(f, types.Rank7))
		b = b.WithPiece(types.MakePiece(types.White, types.Pawn), types.SquareOf(f, types.Rank2))
		b = b.WithPiece(types.MakePiece(types.White, backRank[f]), types.SquareOf(f, types.Rank1))
	}
	return Position{Board: b, Side: types.White, Castling: types.CastlingAny, EpSquare: types.SqNone}
}

func TestStartingPositionHas20Moves(t *testing.T) {
	moves := Legal(startingPosition())
	assert.Len(t, moves, 20)
}

// FEN 8/8/8/KPp4r/8/8/8/8 w - c6 0 1 - the en passant capture would
// expose the white king on a5 to the rook on h5 along rank 5.
func TestEnPassantHorizontalDiscoveryIsIllegal(t *testing.T) {
	b := board.Empty()
	b = b.WithPiece(types.WhiteKing, types.SqA5)
	b = b.WithPiece(types.WhitePawn, types.SqB5)
	b = b.WithPiece(types.BlackPawn, types.SqC5)
	b = b.WithPiece(types.BlackRook, types.SqH5)
	pos := Position{Board: b, Side: types.White, Castling: types.CastlingNone, EpSquare: types.SqC6}

	moves := Legal(pos)
	for _, m := range moves {
		assert.False(t, m.IsEnPassant(), "en passant capture must be suppressed: %s", m)
	}
}

// FEN 4r3/8/8/8/7b/8/4P3/4K3 w - - 0 1 - double check by the rook on e8
// and the bishop on h4 leaves only king moves legal.
func TestDoubleCheckRestrictsToKingMoves(t *testing.T) {
	b := board.Empty()
	b = b.WithPiece(types.BlackRook, types.SqE8)
	b = b.WithPiece(types.BlackBishop, types.SqH4)
	b = b.WithPiece(types.WhitePawn, types.SqE2)
	b = b.WithPiece(types.WhiteKing, types.SqE1)
	pos := Position{Board: b, Side: types.White, Castling: types.CastlingNone, EpSquare: types.SqNone}

	moves := Legal(pos)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.EqualValues(t, types.SqE1, m.From())
		assert.Contains(t, []types.Square{types.SqD2, types.SqF2}, m.To())
	}
}

func TestPinnedBishopCannotLeaveRay(t *testing.T) {
	b := board.Empty()
	b = b.WithPiece(types.WhiteKing, types.SqE1)
	b = b.WithPiece(types.WhiteBishop, types.SqE3)
	b = b.WithPiece(types.BlackRook, types.SqE8)
	pos := Position{Board: b, Side: types.White, Castling: types.CastlingNone, EpSquare: types.SqNone}

	moves := Legal(pos)
	for _, m := range moves {
		if m.From() == types.SqE3 {
			t.Fatalf("pinned bishop must have no moves off the e-file, got %s", m)
		}
	}
}

func TestCastlingBlockedByDangerSquare(t *testing.T) {
	b := board.Empty()
	b = b.WithPiece(types.WhiteKing, types.SqE1)
	b = b.WithPiece(types.WhiteRook, types.SqH1)
	b = b.WithPiece(types.BlackRook, types.SqG8) // attacks g1
	pos := Position{Board: b, Side: types.White, Castling: types.CastlingWhiteOO, EpSquare: types.SqNone}

	moves := Legal(pos)
	for _, m := range moves {
		assert.False(t, m.IsCastle(), "castling through an attacked square must be rejected")
	}
}

func TestHasLegalMoveMatchesLegal(t *testing.T) {
	pos := startingPosition()
	assert.Equal(t, len(Legal(pos)) > 0, HasLegalMove(pos))
}

func TestHasLegalMoveFalseOnCheckmate(t *testing.T) {
	// Fool's mate: f2f3, e7e5, g2g4, d8h4#.
	b := startingPosition().Board
	b = board.Apply(b, types.NewMove(types.SqF2, types.SqF3), types.White)
	b = board.Apply(b, types.NewMove(types.SqE7, types.SqE5), types.Black)
	b = board.Apply(b, types.NewMove(types.SqG2, types.SqG4), types.White)
	b = board.Apply(b, types.NewMove(types.SqD8, types.SqH4), types.Black)

	pos := Position{Board: b, Side: types.White, Castling: types.CastlingAny, EpSquare: types.SqNone}
	assert.False(t, HasLegalMove(pos))
}

func TestLegalPackedMatchesLegal(t *testing.T) {
	pos := startingPosition()
	moves := Legal(pos)
	packed := LegalPacked(pos)
	require.Len(t, packed, len(moves))
	for i, m := range moves {
		assert.Equal(t, uint32(m), packed[i])
	}
}
