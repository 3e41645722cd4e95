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
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/frankkopp/chesscore/game"
)

// Parallel fans the root moves of g out across goroutines, one errgroup
// task per legal move, and sums the resulting subtree counts. Every
// task owns an independent Game copy - the state machine holds no
// mutable shared state, so this requires no locking beyond the atomic
// accumulator.
func Parallel(g game.Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := g.LegalMoves()
	var total uint64

	eg, _ := errgroup.WithContext(context.Background())
	for _, m := range moves {
		m := m
		eg.Go(func() error {
			next, err := game.MakeMove(g, m.From(), m.To(), m.Promotion())
			if err != nil {
				return err
			}
			atomic.AddUint64(&total, Perft(next, depth-1))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		panic("perft: generator produced an illegal move: " + err.Error())
	}
	return total
}
