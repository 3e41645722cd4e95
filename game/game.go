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

// Package game ties the board, move generator and Zobrist hasher
// together into one immutable position record: FEN in, FEN out, legal
// moves, and terminal-state queries. A Game is a plain value - MakeMove
// never mutates its receiver, it returns a new one.
package game

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/chesscore/board"
	"github.com/frankkopp/chesscore/internal/clog"
	"github.com/frankkopp/chesscore/movegen"
	"github.com/frankkopp/chesscore/types"
	"github.com/frankkopp/chesscore/zobrist"
)

var log = clog.Get("game")

// StartFen is the piece placement and state of a new game.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFen is returned when a FEN string is malformed: a bad
// placement field, a missing field, an out-of-range counter, or a king
// count other than one per color.
var ErrInvalidFen = errors.New("game: invalid fen")

// ErrIllegalMove is returned by MakeMove when (from, to, promotion) does
// not match any entry of LegalMoves(g).
var ErrIllegalMove = errors.New("game: illegal move")

// ErrInvalidSquare is returned when a square index outside 0..63 is
// passed into a public API.
var ErrInvalidSquare = errors.New("game: invalid square")

// Game is the complete position state: the board, whose turn it is,
// castling rights, the en-passant target (if any), the two move
// clocks, a per-color king-square cache, the current Zobrist hash and
// the hash of every earlier position since the Game was created from a
// FEN (used by the repetition check in Status, which only looks back
// HalfMoveClock entries).
type Game struct {
	Board          board.Board
	SideToMove     types.Color
	Castling       types.CastlingRights
	EpSquare       types.Square
	HalfMoveClock  int
	FullMoveNumber int
	KingSquare     [2]types.Square
	Hash           zobrist.Key
	HashHistory    []zobrist.Key
}

// NewGame returns the standard starting position.
func NewGame() Game {
	g, err := FromFen(StartFen)
	if err != nil {
		panic("game: start fen must always parse: " + err.Error())
	}
	return g
}

// LegalMoves returns every legal move for the side to move.
func (g Game) LegalMoves() []types.Move {
	return movegen.Legal(g.position())
}

// LegalMovesPacked is LegalMoves with each move already unwrapped to
// its packed uint32 scalar - see movegen.LegalPacked.
func (g Game) LegalMovesPacked() []uint32 {
	return movegen.LegalPacked(g.position())
}

// InCheck reports whether the side to move is currently attacked.
func (g Game) InCheck() bool {
	return board.Attacked(g.Board, g.KingSquare[g.SideToMove], g.SideToMove.Flip())
}

func (g Game) position() movegen.Position {
	return movegen.Position{
		Board:    g.Board,
		Side:     g.SideToMove,
		Castling: g.Castling,
		EpSquare: g.EpSquare,
	}
}

// HasLegalMove reports whether the side to move has at least one legal
// move, short-circuiting at the first one found rather than building
// the full list.
func (g Game) HasLegalMove() bool {
	return movegen.HasLegalMove(g.position())
}

var fenRankPattern = regexp.MustCompile(`^[pnbrqkPNBRQK1-8]+$`)

// FromFen parses a FEN string into a Game, or returns ErrInvalidFen
// without constructing a partial Game.
func FromFen(fen string) (Game, error) {
	g, err := parseFen(fen)
	if err != nil {
		log.Errorf("fen %q not valid, game not created: %s", fen, err)
	}
	return g, err
}

func parseFen(fen string) (Game, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Game{}, fmt.Errorf("%w: want 6 fields, got %d", ErrInvalidFen, len(fields))
	}

	b, err := parsePlacement(fields[0])
	if err != nil {
		return Game{}, err
	}

	var side types.Color
	switch fields[1] {
	case "w":
		side = types.White
	case "b":
		side = types.Black
	default:
		return Game{}, fmt.Errorf("%w: bad active color %q", ErrInvalidFen, fields[1])
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return Game{}, err
	}

	epSquare := types.SqNone
	if fields[3] != "-" {
		epSquare = types.MakeSquare(fields[3])
		if epSquare == types.SqNone {
			return Game{}, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFen, fields[3])
		}
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return Game{}, fmt.Errorf("%w: bad halfmove clock %q", ErrInvalidFen, fields[4])
	}

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 1 {
		return Game{}, fmt.Errorf("%w: bad fullmove number %q", ErrInvalidFen, fields[5])
	}

	var kingSq [2]types.Square
	kingSq[types.White] = b.Pieces(types.White, types.King).Lsb()
	kingSq[types.Black] = b.Pieces(types.Black, types.King).Lsb()
	if b.Pieces(types.White, types.King).PopCount() != 1 || b.Pieces(types.Black, types.King).PopCount() != 1 {
		return Game{}, fmt.Errorf("%w: exactly one king per color required", ErrInvalidFen)
	}

	hash := zobrist.Hash(b, side, castling, epSquare)

	return Game{
		Board:          b,
		SideToMove:     side,
		Castling:       castling,
		EpSquare:       epSquare,
		HalfMoveClock:  halfMove,
		FullMoveNumber: fullMove,
		KingSquare:     kingSq,
		Hash:           hash,
		HashHistory:    nil,
	}, nil
}

// parsePlacement parses the first FEN field. Our a8=0 square numbering
// already increases in the same row-major order FEN's ranks are written
// in, so - unlike a1=0 engines - no per-rank jump correction is needed:
// squares are filled straight through from SqA8 to SqH1.
func parsePlacement(placement string) (board.Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return board.Board{}, fmt.Errorf("%w: placement needs 8 ranks, got %d", ErrInvalidFen, len(ranks))
	}

	b := board.Empty()
	sq := types.SqA8
	for _, rank := range ranks {
		if !fenRankPattern.MatchString(rank) {
			return board.Board{}, fmt.Errorf("%w: bad rank %q", ErrInvalidFen, rank)
		}
		fileCount := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				fileCount += int(c - '0')
				sq += types.Square(c - '0')
				continue
			}
			piece := types.PieceFromChar(byte(c))
			if piece == types.PieceNone {
				return board.Board{}, fmt.Errorf("%w: bad placement char %q", ErrInvalidFen, c)
			}
			b = b.WithPiece(piece, sq)
			sq++
			fileCount++
		}
		if fileCount != 8 {
			return board.Board{}, fmt.Errorf("%w: rank %q does not sum to 8 files", ErrInvalidFen, rank)
		}
	}
	return b, nil
}

func parseCastling(field string) (types.CastlingRights, error) {
	if field == "-" {
		return types.CastlingNone, nil
	}
	var cr types.CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			cr.Add(types.CastlingWhiteOO)
		case 'Q':
			cr.Add(types.CastlingWhiteOOO)
		case 'k':
			cr.Add(types.CastlingBlackOO)
		case 'q':
			cr.Add(types.CastlingBlackOOO)
		default:
			return types.CastlingNone, fmt.Errorf("%w: bad castling char %q", ErrInvalidFen, c)
		}
	}
	return cr, nil
}

// Fen serializes g back into a FEN string.
func (g Game) Fen() string {
	var sb strings.Builder

	for r := types.Rank8; r <= types.Rank1; r++ {
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			p := g.Board.At(types.SquareOf(f, r))
			if p == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != types.Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(g.SideToMove.Str())
	sb.WriteByte(' ')
	sb.WriteString(g.Castling.String())
	sb.WriteByte(' ')
	if g.EpSquare == types.SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(g.EpSquare.String())
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.FullMoveNumber))

	return sb.String()
}
