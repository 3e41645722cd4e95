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

// Package board holds the piece-set representation (12 piece bitboards
// plus 3 aggregates) and the pure mutation/attack-detection operations
// over it. A Board is a plain value; Apply never mutates its receiver.
package board

import "github.com/frankkopp/chesscore/types"

// Board is 12 piece bitboards (white/black x the six piece kinds) plus
// the white, black and all-occupied aggregates - 15 bitboards in total,
// per spec.md §3. The mailbox is redundant with the piece bitboards but
// makes captured-piece discovery in Apply a single array read instead of
// six bitboard probes.
type Board struct {
	pieces  [2][types.PtLength]types.Bitboard
	colorBb [2]types.Bitboard
	allBb   types.Bitboard
	mailbox [types.SqLength]types.Piece
}

// Empty returns a Board with no pieces on it.
func Empty() Board {
	var b Board
	for sq := types.SqA8; sq <= types.SqH1; sq++ {
		b.mailbox[sq] = types.PieceNone
	}
	return b
}

// At returns the piece occupying sq, or types.PieceNone if empty.
func (b Board) At(sq types.Square) types.Piece {
	return b.mailbox[sq]
}

// Pieces returns the bitboard of pieces of the given color and type.
func (b Board) Pieces(c types.Color, pt types.PieceType) types.Bitboard {
	return b.pieces[c][pt]
}

// Occupied returns the aggregate bitboard of every piece of color c.
func (b Board) Occupied(c types.Color) types.Bitboard {
	return b.colorBb[c]
}

// OccupiedAll returns the aggregate bitboard of every piece on the board.
func (b Board) OccupiedAll() types.Bitboard {
	return b.allBb
}

// WithPiece returns a copy of b with piece placed on sq. sq must be
// empty; Board carries no validation, matching spec.md §7's policy that
// internal board routines assume well-formed input.
func (b Board) WithPiece(piece types.Piece, sq types.Square) Board {
	c, pt := piece.ColorOf(), piece.TypeOf()
	b.mailbox[sq] = piece
	b.pieces[c][pt] |= sq.SquareBb()
	b.colorBb[c] |= sq.SquareBb()
	b.allBb |= sq.SquareBb()
	return b
}

// WithoutPiece returns a copy of b with whatever piece sat on sq removed.
func (b Board) WithoutPiece(sq types.Square) Board {
	piece := b.mailbox[sq]
	c, pt := piece.ColorOf(), piece.TypeOf()
	b.mailbox[sq] = types.PieceNone
	b.pieces[c][pt] &^= sq.SquareBb()
	b.colorBb[c] &^= sq.SquareBb()
	b.allBb &^= sq.SquareBb()
	return b
}

// StrBoard renders the board as an 8x8 ASCII grid of FEN piece letters.
func (b Board) StrBoard() string {
	s := "+---+---+---+---+---+---+---+---+\n"
	for r := types.Rank8; r <= types.Rank1; r++ {
		for f := types.FileA; f <= types.FileH; f++ {
			p := b.At(types.SquareOf(f, r))
			if p == types.PieceNone {
				s += "|   "
			} else {
				s += "| " + p.String() + " "
			}
		}
		s += "|\n+---+---+---+---+---+---+---+---+\n"
	}
	return s
}
