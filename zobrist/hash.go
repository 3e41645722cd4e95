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
	"github.com/frankkopp/chesscore/board"
	"github.com/frankkopp/chesscore/types"
)

// Hash computes the full Zobrist key for a position from scratch. It is
// only ever needed once, at game setup; every move after that updates
// the key incrementally with the Toggle* helpers.
func Hash(b board.Board, stm types.Color, castling types.CastlingRights, epSquare types.Square) Key {
	var key Key
	for sq := types.SqA8; sq <= types.SqH1; sq++ {
		if p := b.At(sq); p != types.PieceNone {
			key = TogglePiece(key, p, sq)
		}
	}
	key = ToggleCastling(key, castling)
	if epSquare != types.SqNone {
		key = ToggleEnPassant(key, epSquare.FileOf())
	}
	if stm == types.Black {
		key = ToggleSideToMove(key)
	}
	return key
}
