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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovePackUnpackBijection(t *testing.T) {
	for _, promo := range []PieceType{PtNone, Knight, Bishop, Rook, Queen} {
		for _, special := range []MoveSpecial{MoveNormal, MoveEnPassant, MoveCastleK, MoveCastleQ} {
			m := NewMoveExt(SqA2, SqA4, promo, special)
			assert.Equal(t, SqA2, m.From())
			assert.Equal(t, SqA4, m.To())
			assert.Equal(t, promo, m.Promotion())
			assert.Equal(t, special, m.Special())
		}
	}
}

// The packed promotion field is its own wire code (1=knight, 2=bishop,
// 3=rook, 4=queen), not PieceType's raw enum value - PieceType numbers
// Knight..Queen 3..6, which would put queen at wire code 6 instead of 4.
func TestMovePromotionWireCodes(t *testing.T) {
	cases := []struct {
		promo PieceType
		code  uint32
	}{
		{PtNone, 0},
		{Knight, 1},
		{Bishop, 2},
		{Rook, 3},
		{Queen, 4},
	}
	for _, c := range cases {
		m := NewMoveExt(SqA7, SqA8, c.promo, MoveNormal)
		got := (uint32(m) >> movePromoShift) & 0x7
		assert.Equal(t, c.code, got, "promotion %s", c.promo.Str())
	}
}
