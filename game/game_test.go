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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/types"
)

func TestNewGameFenRoundTrip(t *testing.T) {
	g := NewGame()
	assert.Equal(t, StartFen, g.Fen())
	assert.Len(t, g.LegalMoves(), 20)
}

func TestLegalMovesPackedMatchesLegalMoves(t *testing.T) {
	g := NewGame()
	moves := g.LegalMoves()
	packed := g.LegalMovesPacked()
	require.Len(t, packed, len(moves))
	for i, m := range moves {
		assert.EqualValues(t, m, packed[i])
	}
}

func TestFromFenRejectsWrongFieldCount(t *testing.T) {
	_, err := FromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.ErrorIs(t, err, ErrInvalidFen)
}

func TestFromFenRejectsMissingKing(t *testing.T) {
	_, err := FromFen("rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.ErrorIs(t, err, ErrInvalidFen)
}

func TestMakeMovePawnDoublePushSetsEnPassant(t *testing.T) {
	g := NewGame()
	g, err := MakeMove(g, types.SqE2, types.SqE4, types.PtNone)
	require.NoError(t, err)
	assert.Equal(t, types.SqE3, g.EpSquare)
	assert.Equal(t, 0, g.HalfMoveClock)
	assert.Equal(t, types.Black, g.SideToMove)
	assert.Equal(t, 1, g.FullMoveNumber)
}

func TestMakeMoveIllegalReturnsError(t *testing.T) {
	g := NewGame()
	_, err := MakeMove(g, types.SqE2, types.SqE5, types.PtNone)
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestMakeMoveRejectsInvalidSquare(t *testing.T) {
	g := NewGame()
	_, err := MakeMove(g, types.SqNone, types.SqE4, types.PtNone)
	require.ErrorIs(t, err, ErrInvalidSquare)
}

func TestCastlingClearsBothRightsForThatColor(t *testing.T) {
	g, err := FromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	g, err = MakeMove(g, types.SqE1, types.SqG1, types.PtNone)
	require.NoError(t, err)
	assert.False(t, g.Castling.Has(types.CastlingWhiteOO))
	assert.False(t, g.Castling.Has(types.CastlingWhiteOOO))
	assert.True(t, g.Castling.Has(types.CastlingBlackOO))
	assert.True(t, g.Castling.Has(types.CastlingBlackOOO))
}

// Capturing a rook on its home square must clear the matching right
// even though neither king ever moved. The capturing rook also leaves
// its own home square h1, so white's kingside right goes as well.
func TestCastlingLostWhenRookCapturedOnHomeSquare(t *testing.T) {
	g, err := FromFen("4k2r/8/8/8/8/8/8/4K2R w Kk - 0 1")
	require.NoError(t, err)
	g, err = MakeMove(g, types.SqH1, types.SqH8, types.PtNone)
	require.NoError(t, err)
	assert.False(t, g.Castling.Has(types.CastlingBlackOO))
	assert.False(t, g.Castling.Has(types.CastlingWhiteOO))
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	g := NewGame()
	var err error
	for _, mv := range []struct{ from, to types.Square }{
		{types.SqF2, types.SqF3},
		{types.SqE7, types.SqE5},
		{types.SqG2, types.SqG4},
		{types.SqD8, types.SqH4},
	} {
		g, err = MakeMove(g, mv.from, mv.to, types.PtNone)
		require.NoError(t, err)
	}
	assert.Equal(t, Checkmate, g.Status())
}

func TestInsufficientMaterialBareKingsIsDraw(t *testing.T) {
	g, err := FromFen("8/8/8/4k3/8/4K3/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Draw, g.Status())
}

func TestInsufficientMaterialLoneKnightIsDraw(t *testing.T) {
	g, err := FromFen("8/8/8/4k3/8/4K1N1/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Draw, g.Status())
}

func TestInsufficientMaterialSameColorBishopsIsDraw(t *testing.T) {
	g, err := FromFen("8/8/8/4k3/8/4K1b1/3B4/8 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Draw, g.Status())
}

func TestThreefoldByKnightShuffle(t *testing.T) {
	g := NewGame()
	var err error
	for _, mv := range []struct{ from, to types.Square }{
		{types.SqG1, types.SqF3},
		{types.SqG8, types.SqF6},
		{types.SqF3, types.SqG1},
		{types.SqF6, types.SqG8},
		{types.SqG1, types.SqF3},
		{types.SqG8, types.SqF6},
		{types.SqF3, types.SqG1},
		{types.SqF6, types.SqG8},
	} {
		g, err = MakeMove(g, mv.from, mv.to, types.PtNone)
		require.NoError(t, err)
	}
	assert.Equal(t, Draw, g.Status())
}
