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

// Package zobrist builds the random key tables used to hash a position
// and exposes incremental XOR helpers so callers never need to rehash
// a whole board after a single move. The castling-rights table is
// indexed directly by the full 4-bit types.CastlingRights value, which
// gives the 16 possible right-combinations their own independent random
// key instead of XORing four separate per-side keys together.
package zobrist

import "github.com/frankkopp/chesscore/types"

// Key is a Zobrist hash value.
type Key uint64

var (
	pieceKeys    [types.PieceLength][types.SqLength]Key
	castlingKeys [types.CastlingLength]Key
	epFileKeys   [8]Key
	sideToMove   Key
)

func init() {
	r := newRandom(1070372)
	for pc := types.PieceNone; pc < types.PieceLength; pc++ {
		for sq := types.SqA8; sq <= types.SqH1; sq++ {
			pieceKeys[pc][sq] = Key(r.rand64())
		}
	}
	for cr := types.CastlingNone; cr < types.CastlingLength; cr++ {
		castlingKeys[cr] = Key(r.rand64())
	}
	for f := types.FileA; f <= types.FileH; f++ {
		epFileKeys[f] = Key(r.rand64())
	}
	sideToMove = Key(r.rand64())
}

// TogglePiece XORs piece-on-sq into or out of key. Calling it twice with
// the same arguments is a no-op, which is what makes the piece keys
// usable both to add and to remove a piece.
func TogglePiece(key Key, piece types.Piece, sq types.Square) Key {
	return key ^ pieceKeys[piece][sq]
}

// ToggleCastling XORs the key for the given castling-rights value into
// or out of key. Pass the full CastlingRights value both before and
// after a change (it is not a per-bit XOR) since the table holds one
// independent key per combination of rights, not one key per bit.
func ToggleCastling(key Key, cr types.CastlingRights) Key {
	return key ^ castlingKeys[cr]
}

// ToggleEnPassant XORs the key for an en passant target on file f.
func ToggleEnPassant(key Key, f types.File) Key {
	return key ^ epFileKeys[f]
}

// ToggleSideToMove XORs the side-to-move key, flipping whose turn the
// hash records.
func ToggleSideToMove(key Key) Key {
	return key ^ sideToMove
}

// random is Sebastiano Vigna's xorshift64star PRNG, taken directly from
// the Stockfish constants so the key tables are reproducible.
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	if seed == 0 {
		panic("zobrist: random seed must not be 0")
	}
	return random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
