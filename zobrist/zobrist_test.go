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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/board"
	"github.com/frankkopp/chesscore/types"
)

func TestTogglePieceIsSelfInverse(t *testing.T) {
	var key Key
	key = TogglePiece(key, types.WhiteKnight, types.SqF3)
	assert.NotZero(t, key)
	key = TogglePiece(key, types.WhiteKnight, types.SqF3)
	assert.Zero(t, key)
}

func TestToggleCastlingDistinctPerCombination(t *testing.T) {
	var base Key
	withKS := ToggleCastling(base, types.CastlingWhiteOO)
	withBoth := ToggleCastling(base, types.CastlingWhite)
	assert.NotEqual(t, withKS, withBoth, "every CastlingRights combination gets its own independent key")
}

func TestHashChangesWithSideToMove(t *testing.T) {
	b := board.Empty()
	b = b.WithPiece(types.WhiteKing, types.SqE1)
	b = b.WithPiece(types.BlackKing, types.SqE8)

	whiteToMove := Hash(b, types.White, types.CastlingNone, types.SqNone)
	blackToMove := Hash(b, types.Black, types.CastlingNone, types.SqNone)
	assert.NotEqual(t, whiteToMove, blackToMove)
	assert.Equal(t, whiteToMove, ToggleSideToMove(blackToMove))
}

func TestHashChangesWithEnPassantSquare(t *testing.T) {
	b := board.Empty()
	b = b.WithPiece(types.WhiteKing, types.SqE1)
	b = b.WithPiece(types.BlackKing, types.SqE8)

	noEp := Hash(b, types.White, types.CastlingNone, types.SqNone)
	withEp := Hash(b, types.White, types.CastlingNone, types.SqE3)
	assert.NotEqual(t, noEp, withEp)
}
