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

// Package magic builds and serves the "fancy" magic bitboard tables for
// rook and bishop sliding attacks. The generation algorithm (init-time,
// not on the hot path) is Stockfish's: enumerate occupancy subsets of each
// square's relevant-occupancy mask with the Carry-Rippler trick, then
// trial sparse random multipliers until one gives a collision-free index.
package magic

import (
	"github.com/frankkopp/chesscore/internal/clog"
	"github.com/frankkopp/chesscore/types"
)

var log = clog.Get("magic")

// entry holds the per-square magic bitboard record from spec.md §4.2.
type entry struct {
	mask    types.Bitboard
	magic   types.Bitboard
	shift   uint
	attacks []types.Bitboard
}

func (m *entry) index(occupied types.Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.magic
	occ >>= m.shift
	return uint(occ)
}

var (
	rookMagics   [types.SqLength]entry
	bishopMagics [types.SqLength]entry
	rookTable    []types.Bitboard
	bishopTable  []types.Bitboard
)

var rookDirections = [4]types.Direction{types.North, types.South, types.East, types.West}
var bishopDirections = [4]types.Direction{types.Northeast, types.Northwest, types.Southeast, types.Southwest}

func init() {
	log.Debug("generating rook and bishop magic bitboards")
	rookTable = make([]types.Bitboard, 0x19000)
	bishopTable = make([]types.Bitboard, 0x1480)
	initMagics(rookTable, &rookMagics, &rookDirections)
	initMagics(bishopTable, &bishopMagics, &bishopDirections)
}

// RookAttacks returns the rook's attack bitboard from sq given the full
// board occupancy (blockers included, both own and enemy).
func RookAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

// BishopAttacks returns the bishop's attack bitboard from sq given the
// full board occupancy.
func BishopAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}

// QueenAttacks is the union of rook and bishop attacks from sq.
func QueenAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// initMagics computes magic numbers and attack tables for every square,
// sharing one backing array (table) the way Stockfish lays out fancy
// magic bitboards: offsets into table are taken by slice, not pointer
// arithmetic.
func initMagics(table []types.Bitboard, magics *[types.SqLength]entry, directions *[4]types.Direction) {
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]types.Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for sq := types.SqA8; sq <= types.SqH1; sq++ {
		edges := ((types.Rank1Bb | types.Rank8Bb) &^ rankBb(sq.RankOf())) |
			((types.FileABb | types.FileHBb) &^ fileBb(sq.FileOf()))

		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, types.BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == types.SqA8 {
			m.attacks = table
		} else {
			m.attacks = magics[sq-1].attacks[size:]
		}

		b := types.BbZero
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == types.BbZero {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.magic = 0; ; {
				m.magic = types.Bitboard(rng.sparseRand())
				if (m.magic * m.mask >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

func rankBb(r types.Rank) types.Bitboard {
	return types.Rank8Bb << (8 * uint(r))
}

func fileBb(f types.File) types.Bitboard {
	return types.FileABb << uint(f)
}

// slidingAttack walks each of the four directions from sq until it falls
// off the board or hits an occupied square, used only to build the
// reference attack sets verified against during magic search.
func slidingAttack(directions *[4]types.Direction, sq types.Square, occupied types.Bitboard) types.Bitboard {
	attack := types.BbZero
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if next == types.SqNone {
				break
			}
			attack |= next.SquareBb()
			if occupied&next.SquareBb() != 0 {
				break
			}
			s = next
		}
	}
	return attack
}

// prnG is Sebastiano Vigna's xorshift64star PRNG, used (per Stockfish) so
// that magic-number generation is fully deterministic across runs.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns a value with roughly 1/8th of its bits set on
// average, which converges to a working magic faster than a uniform one.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
