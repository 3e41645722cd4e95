/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, To any person obtaining a copy
 * of this software and associated documentation files (the "Software"), To deal
 * in the Software without restriction, including without limitation the rights
 * To use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and To permit persons To whom the Software is
 * furnished To do so, subject To the following conditions:
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

// Package types contains the basic value types shared by every other
// chesscore package: colors, piece kinds, squares, bitboards, castling
// rights and the packed move representation.
//
// Square numbering follows the engine's chosen geometry: a8=0, h8=7,
// a1=56, h1=63. rank = index/8 with rank 0 being the chess 8th rank;
// file = index%8 with file 0 being the a-file. This package carries no
// mutable package-level state, so unlike attacks/magic/zobrist it needs
// no init() ordering of its own - those three depend on types but not on
// each other's output; their init() order follows Go's import graph
// (zobrist imports board, which imports attacks and magic).
package types

// SqLength is the number of squares on a board.
const SqLength int = 64

// MaxMoves bounds the number of legal moves reachable in any chess
// position. The generator allocates its move accumulator with this
// capacity so that filling it never grows the slice.
const MaxMoves int = 218
