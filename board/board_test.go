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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/types"
)

func startingBoard() Board {
	b := Empty()
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
	return b
}

func TestWithPieceAndWithoutPiece(t *testing.T) {
	b := Empty()
	b = b.WithPiece(types.WhiteKnight, types.SqG1)
	assert.Equal(t, types.WhiteKnight, b.At(types.SqG1))
	assert.NotZero(t, b.Pieces(types.White, types.Knight)&types.SqG1.SquareBb())
	assert.NotZero(t, b.Occupied(types.White)&types.SqG1.SquareBb())
	assert.NotZero(t, b.OccupiedAll()&types.SqG1.SquareBb())

	b = b.WithoutPiece(types.SqG1)
	assert.Equal(t, types.PieceNone, b.At(types.SqG1))
	assert.Zero(t, b.Pieces(types.White, types.Knight)&types.SqG1.SquareBb())
	assert.Zero(t, b.OccupiedAll())
}

func TestStartingBoardPieceCounts(t *testing.T) {
	b := startingBoard()
	assert.EqualValues(t, 8, b.Pieces(types.White, types.Pawn).PopCount())
	assert.EqualValues(t, 8, b.Pieces(types.Black, types.Pawn).PopCount())
	assert.EqualValues(t, 1, b.Pieces(types.White, types.King).PopCount())
	assert.EqualValues(t, 2, b.Pieces(types.White, types.Rook).PopCount())
	assert.EqualValues(t, 16, b.Occupied(types.White).PopCount())
	assert.EqualValues(t, 16, b.Occupied(types.Black).PopCount())
	assert.EqualValues(t, 32, b.OccupiedAll().PopCount())
}

func TestApplyQuietPawnPush(t *testing.T) {
	b := startingBoard()
	move := types.NewMove(types.SqE2, types.SqE4)
	next := Apply(b, move, types.White)

	require.Equal(t, types.PieceNone, next.At(types.SqE2))
	assert.Equal(t, types.WhitePawn, next.At(types.SqE4))
	assert.EqualValues(t, 32, next.OccupiedAll().PopCount())
}

func TestApplyCapture(t *testing.T) {
	b := startingBoard()
	b = b.WithoutPiece(types.SqE2)
	b = b.WithPiece(types.WhiteKnight, types.SqE5)

	move := types.NewMove(types.SqE5, types.SqD7)
	next := Apply(b, move, types.White)

	assert.Equal(t, types.WhiteKnight, next.At(types.SqD7))
	assert.Equal(t, types.PieceNone, next.At(types.SqE5))
	assert.EqualValues(t, 7, next.Pieces(types.Black, types.Pawn).PopCount())
	assert.EqualValues(t, 31, next.OccupiedAll().PopCount())
}

func TestApplyEnPassant(t *testing.T) {
	b := Empty()
	b = b.WithPiece(types.WhitePawn, types.SqE5)
	b = b.WithPiece(types.BlackPawn, types.SqD5)
	b = b.WithPiece(types.WhiteKing, types.SqE1)
	b = b.WithPiece(types.BlackKing, types.SqE8)

	move := types.NewMoveExt(types.SqE5, types.SqD6, types.PtNone, types.MoveEnPassant)
	next := Apply(b, move, types.White)

	assert.Equal(t, types.WhitePawn, next.At(types.SqD6))
	assert.Equal(t, types.PieceNone, next.At(types.SqE5))
	assert.Equal(t, types.PieceNone, next.At(types.SqD5), "captured pawn must be removed")
	assert.EqualValues(t, 3, next.OccupiedAll().PopCount())
}

func TestApplyPromotion(t *testing.T) {
	b := Empty()
	b = b.WithPiece(types.WhitePawn, types.SqA7)
	b = b.WithPiece(types.BlackRook, types.SqB8)

	move := types.NewMoveExt(types.SqA7, types.SqB8, types.Queen, types.MoveNormal)
	next := Apply(b, move, types.White)

	assert.Equal(t, types.WhiteQueen, next.At(types.SqB8))
	assert.Equal(t, types.PieceNone, next.At(types.SqA7))
	assert.Zero(t, next.Pieces(types.Black, types.Rook))
}

func TestApplyCastlingKingside(t *testing.T) {
	b := Empty()
	b = b.WithPiece(types.WhiteKing, types.SqE1)
	b = b.WithPiece(types.WhiteRook, types.SqH1)

	move := types.NewMoveExt(types.SqE1, types.SqG1, types.PtNone, types.MoveCastleK)
	next := Apply(b, move, types.White)

	assert.Equal(t, types.WhiteKing, next.At(types.SqG1))
	assert.Equal(t, types.WhiteRook, next.At(types.SqF1))
	assert.Equal(t, types.PieceNone, next.At(types.SqE1))
	assert.Equal(t, types.PieceNone, next.At(types.SqH1))
}

func TestApplyCastlingQueensideBlack(t *testing.T) {
	b := Empty()
	b = b.WithPiece(types.BlackKing, types.SqE8)
	b = b.WithPiece(types.BlackRook, types.SqA8)

	move := types.NewMoveExt(types.SqE8, types.SqC8, types.PtNone, types.MoveCastleQ)
	next := Apply(b, move, types.Black)

	assert.Equal(t, types.BlackKing, next.At(types.SqC8))
	assert.Equal(t, types.BlackRook, next.At(types.SqD8))
	assert.Equal(t, types.PieceNone, next.At(types.SqE8))
	assert.Equal(t, types.PieceNone, next.At(types.SqA8))
}

func TestAttackedKnightAndSlider(t *testing.T) {
	b := Empty()
	b = b.WithPiece(types.WhiteKnight, types.SqG1)
	assert.True(t, Attacked(b, types.SqF3, types.White))
	assert.False(t, Attacked(b, types.SqF4, types.White))

	b = Empty()
	b = b.WithPiece(types.WhiteRook, types.SqA1)
	assert.True(t, Attacked(b, types.SqA8, types.White))
	assert.False(t, Attacked(b, types.SqB8, types.White))

	b = b.WithPiece(types.BlackPawn, types.SqA4)
	assert.False(t, Attacked(b, types.SqA8, types.White), "blocked by intervening pawn")
}

func TestAttackedPawn(t *testing.T) {
	b := Empty()
	b = b.WithPiece(types.WhitePawn, types.SqD2)
	assert.True(t, Attacked(b, types.SqC3, types.White))
	assert.True(t, Attacked(b, types.SqE3, types.White))
	assert.False(t, Attacked(b, types.SqD3, types.White))
}
