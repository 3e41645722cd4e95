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

import "github.com/frankkopp/chesscore/types"

// Status is the terminal-state classification of a position.
type Status int

const (
	Active Status = iota
	Checkmate
	Stalemate
	Draw
)

// String renders the status name, mainly for test failure messages.
func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Status classifies g as active, checkmate, stalemate or drawn.
func (g Game) Status() Status {
	if !g.HasLegalMove() {
		if g.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if g.isDraw() {
		return Draw
	}
	return Active
}

func (g Game) isDraw() bool {
	return g.HalfMoveClock >= 100 || g.isRepetition() || g.isInsufficientMaterial()
}

// isRepetition scans hash_history only as far back as halfmove_clock
// entries - positions before the last irreversible move cannot recur -
// and counts prior occurrences of the current hash. Two equal prior
// occurrences means the current position has now occurred three times
// (the FIDE threefold-claim threshold).
func (g Game) isRepetition() bool {
	history := g.HashHistory
	limit := g.HalfMoveClock
	if limit > len(history) {
		limit = len(history)
	}
	occurrences := 0
	for i := len(history) - 1; i >= len(history)-limit; i-- {
		if history[i] == g.Hash {
			occurrences++
			if occurrences >= 2 {
				return true
			}
		}
	}
	return false
}

// isInsufficientMaterial classifies the no-mating-material draws by
// total piece count, per the state machine's three recognized shapes.
func (g Game) isInsufficientMaterial() bool {
	all := g.Board.OccupiedAll()
	count := all.PopCount()
	if count == 2 {
		return true
	}
	if count > 4 {
		return false
	}

	hasHeavy := func(c types.Color) bool {
		return g.Board.Pieces(c, types.Rook) != 0 ||
			g.Board.Pieces(c, types.Queen) != 0 ||
			g.Board.Pieces(c, types.Pawn) != 0
	}
	if hasHeavy(types.White) || hasHeavy(types.Black) {
		return false
	}

	minorCount := func(c types.Color) int {
		return g.Board.Pieces(c, types.Bishop).PopCount() + g.Board.Pieces(c, types.Knight).PopCount()
	}
	wMinors, bMinors := minorCount(types.White), minorCount(types.Black)

	if count == 3 {
		return wMinors+bMinors == 1
	}

	// count == 4: only drawn shape is one bishop each on same-colored squares.
	wBishops := g.Board.Pieces(types.White, types.Bishop)
	bBishops := g.Board.Pieces(types.Black, types.Bishop)
	if wMinors != 1 || bMinors != 1 || wBishops.PopCount() != 1 || bBishops.PopCount() != 1 {
		return false
	}
	wSq, bSq := wBishops.Lsb(), bBishops.Lsb()
	wColor := (int(wSq.RankOf()) + int(wSq.FileOf())) % 2
	bColor := (int(bSq.RankOf()) + int(bSq.FileOf())) % 2
	return wColor == bColor
}
