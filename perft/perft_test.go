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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/game"
)

func TestPerftStartingPosition(t *testing.T) {
	g := game.NewGame()
	assert.EqualValues(t, 20, Perft(g, 1))
	assert.EqualValues(t, 400, Perft(g, 2))
	assert.EqualValues(t, 8902, Perft(g, 3))
	assert.EqualValues(t, 197281, Perft(g, 4))
}

func TestPerftKiwipete(t *testing.T) {
	g, err := game.FromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.EqualValues(t, 48, Perft(g, 1))
	assert.EqualValues(t, 2039, Perft(g, 2))
}

func TestParallelMatchesSequential(t *testing.T) {
	g := game.NewGame()
	assert.EqualValues(t, Perft(g, 3), Parallel(g, 3))
}

func TestDivideSumsToPerft(t *testing.T) {
	g := game.NewGame()
	divide := Divide(g, 3)
	assert.Len(t, divide, 20)
	var sum uint64
	for _, n := range divide {
		sum += n
	}
	assert.EqualValues(t, Perft(g, 3), sum)
}

func TestDetailedCountsCastlesAndCaptures(t *testing.T) {
	g, err := game.FromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	c := Detailed(g, 1)
	assert.EqualValues(t, 48, c.Nodes)
	assert.Positive(t, c.Castles)
	assert.Positive(t, c.Captures)
}
