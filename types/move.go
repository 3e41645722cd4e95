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

package types

import "strings"

// MoveSpecial tags a Move as a normal move or one of the three kinds
// that need extra board bookkeeping beyond from/to/captured-piece.
type MoveSpecial uint8

const (
	MoveNormal     MoveSpecial = 0
	MoveEnPassant  MoveSpecial = 1
	MoveCastleK    MoveSpecial = 2 // kingside (O-O)
	MoveCastleQ    MoveSpecial = 3 // queenside (O-O-O)
)

// Move is a chess move packed into the low 18 bits of a uint32:
//
//	bits 0-5:   from square  (0-63)
//	bits 6-11:  to square    (0-63)
//	bits 12-14: promotion code (0 = none, 1 = knight, 2 = bishop, 3 = rook, 4 = queen)
//	bits 15-17: special flag (MoveSpecial)
//
// The promotion field is its own wire code, not PieceType's raw value -
// PieceType numbers King and Pawn ahead of the four promotable kinds,
// so packing PieceType directly would put queen at code 6 instead of
// the wire format's 4. NewMoveExt and Promotion translate at this
// boundary so every consumer of the packed scalar, in or out of this
// module, agrees on what the bits mean.
//
// Move carries no information about the piece moved or captured - the
// board the move is applied to supplies that context.
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePromoShift = 12
	moveSpecShift  = 15

	moveFromMask  Move = 0x3F << moveFromShift
	moveToMask    Move = 0x3F << moveToShift
	movePromoMask Move = 0x7 << movePromoShift
	moveSpecMask  Move = 0x7 << moveSpecShift
)

// MoveNone is the zero value, a8a8 with no promotion or special flag -
// never a legal move, safe to use as a "no move" sentinel.
const MoveNone Move = 0

// NewMove packs a plain (non-promotion, non-special) move.
func NewMove(from, to Square) Move {
	return NewMoveExt(from, to, PtNone, MoveNormal)
}

// NewMoveExt packs a move with an explicit promotion piece type and
// special flag. promo should be PtNone for anything but a promotion.
func NewMoveExt(from, to Square, promo PieceType, special MoveSpecial) Move {
	return Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		promoCode(promo)<<movePromoShift |
		Move(special)<<moveSpecShift
}

// promoCode maps a promotable PieceType onto the packed format's own
// 0-4 promotion code. PtNone and the non-promotable kinds (King, Pawn)
// all pack as 0.
func promoCode(pt PieceType) Move {
	switch pt {
	case Knight:
		return 1
	case Bishop:
		return 2
	case Rook:
		return 3
	case Queen:
		return 4
	default:
		return 0
	}
}

// promoFromCode is promoCode's inverse.
func promoFromCode(code Move) PieceType {
	switch code {
	case 1:
		return Knight
	case 2:
		return Bishop
	case 3:
		return Rook
	case 4:
		return Queen
	default:
		return PtNone
	}
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m & moveFromMask) >> moveFromShift)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m & moveToMask) >> moveToShift)
}

// Promotion returns the promotion piece type, or PtNone for a move that
// is not a promotion.
func (m Move) Promotion() PieceType {
	return promoFromCode((m & movePromoMask) >> movePromoShift)
}

// Special returns the move's special flag.
func (m Move) Special() MoveSpecial {
	return MoveSpecial((m & moveSpecMask) >> moveSpecShift)
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != PtNone
}

// IsEnPassant reports whether m is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Special() == MoveEnPassant
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool {
	s := m.Special()
	return s == MoveCastleK || s == MoveCastleQ
}

// String renders m in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += strings.ToLower(m.Promotion().Char())
	}
	return s
}
