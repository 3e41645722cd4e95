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

// Package perft walks the legal-move tree to a fixed depth and counts
// leaf nodes, the canonical correctness oracle for a move generator.
// Because the generator is legal-only there is no pseudo-legal move to
// play-and-unwind: every move counted is already known to be legal, and
// game.Game is a plain immutable value, so recursion simply passes a
// new Game down instead of mutating one and undoing it afterward.
package perft

import (
	"github.com/frankkopp/chesscore/game"
	"github.com/frankkopp/chesscore/internal/clog"
	"github.com/frankkopp/chesscore/types"
)

var log = clog.Get("perft")

// Counts breaks a perft run's node total down the way the teacher's
// counters do, useful for diagnosing which rule a generator bug hides
// in when the leaf count alone disagrees with a reference value.
type Counts struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
}

// Perft runs a sequential perft to depth from g and returns the node
// count. depth <= 0 is treated as 0 (one node, the root itself).
func Perft(g game.Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	total := uint64(0)
	for _, m := range g.LegalMoves() {
		from, to, promo := m.From(), m.To(), m.Promotion()
		next, err := game.MakeMove(g, from, to, promo)
		if err != nil {
			panic("perft: generator produced an illegal move: " + err.Error())
		}
		total += Perft(next, depth-1)
	}
	return total
}

// Divide runs Perft one ply below each of g's legal moves and returns
// the per-move leaf counts, keyed by long algebraic notation - the
// standard tool for bisecting a perft mismatch down to the offending
// move.
func Divide(g game.Game, depth int) map[string]uint64 {
	result := make(map[string]uint64, len(g.LegalMoves()))
	for _, m := range g.LegalMoves() {
		next, err := game.MakeMove(g, m.From(), m.To(), m.Promotion())
		if err != nil {
			panic("perft: generator produced an illegal move: " + err.Error())
		}
		var count uint64
		if depth <= 1 {
			count = 1
		} else {
			count = Perft(next, depth-1)
		}
		result[m.String()] = count
	}
	return result
}

// Detailed runs a perft walk that also classifies every leaf move by
// rule, mirroring the breakdown the teacher's Perft struct reports
// alongside the raw node count.
func Detailed(g game.Game, depth int) Counts {
	var c Counts
	detailed(g, depth, &c)
	return c
}

// Report runs Detailed and logs a locale-formatted summary at debug
// level - nodes, captures, en-passant, castles, promotions and checks -
// for use by callers driving perft from a command-line tool rather
// than a test.
func Report(g game.Game, depth int) Counts {
	c := Detailed(g, depth)
	log.Debug(clog.Printer.Sprintf(
		"perft depth %d: nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d mates=%d",
		depth, c.Nodes, c.Captures, c.EnPassant, c.Castles, c.Promotions, c.Checks, c.Checkmates,
	))
	return c
}

func detailed(g game.Game, depth int, c *Counts) {
	if depth <= 0 {
		c.Nodes++
		return
	}
	for _, m := range g.LegalMoves() {
		next, err := game.MakeMove(g, m.From(), m.To(), m.Promotion())
		if err != nil {
			panic("perft: generator produced an illegal move: " + err.Error())
		}
		if depth == 1 {
			c.Nodes++
			if m.IsEnPassant() {
				c.EnPassant++
				c.Captures++
			} else if g.Board.At(m.To()) != types.PieceNone {
				c.Captures++
			}
			if m.IsCastle() {
				c.Castles++
			}
			if m.IsPromotion() {
				c.Promotions++
			}
			if next.InCheck() {
				c.Checks++
				if !next.HasLegalMove() {
					c.Checkmates++
				}
			}
			continue
		}
		detailed(next, depth-1, c)
	}
}
