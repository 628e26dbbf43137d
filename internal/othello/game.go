package othello

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidPlacement = errors.New("invalid placement")

// Move is a turn in the game: either a placed disc or a pass.
type Move struct {
	Player   Color
	Square   Square
	Pass     bool
	Captured int
}

// String returns the field notation of the move, or PassField for a pass.
func (m Move) String() string {
	if m.Pass {
		return PassField
	}
	return m.Square.String()
}

// Game is a game between the human (WHITE) and the computer (BLACK).
// It owns the board, which is only ever modified through its methods.
type Game struct {
	id       string
	board    *Board
	status   Status
	strategy Strategy

	// history lists all moves including passes, it is kept in memory only.
	history []Move

	logger *slog.Logger
}

// NewGame creates a new game with the starting position.
// A nil strategy results in a greedy computer with a time-seeded coin flip tie break.
func NewGame(strategy Strategy) *Game {
	return NewGameWithStart(NewBoardStart(), strategy)
}

// NewGameWithStart creates a new game with a custom start board. This is used for tests and debugging.
func NewGameWithStart(start *Board, strategy Strategy) *Game {
	if strategy == nil {
		strategy = NewGreedy(nil, TieBreakCoin)
	}

	id := uuid.New().String()

	return &Game{
		id:       id,
		board:    start.Clone(),
		strategy: strategy,
		history:  make([]Move, 0),
		logger:   slog.With("game_id", id),
	}
}

// ID returns the unique ID of this game.
func (g *Game) ID() string {
	return g.id
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// LegalMoves returns all legal moves for player on the current board.
func (g *Game) LegalMoves(player Color) MoveMap {
	return FindMoves(g.board, player)
}

// CanMove checks if player has at least one legal move.
func (g *Game) CanMove(player Color) bool {
	return !g.LegalMoves(player).IsEmpty()
}

// ApplyHumanMove places a white disc on dest. The moves must be computed for WHITE on the current board.
// If dest is not one of the moves, ErrInvalidPlacement is returned and the board is not modified.
func (g *Game) ApplyHumanMove(dest Square, moves MoveMap) error {
	if !moves.Contains(dest) {
		return fmt.Errorf("%w: %s", ErrInvalidPlacement, dest)
	}

	g.play(WHITE, dest, moves)
	return nil
}

// ApplyComputerMove lets the strategy pick a move for BLACK and plays it.
func (g *Game) ApplyComputerMove() (Square, error) {
	moves := g.LegalMoves(BLACK)

	dest, err := g.strategy.ChooseMove(moves)
	if err != nil {
		return 0, fmt.Errorf("computer cannot move: %w", err)
	}

	if !moves.Contains(dest) {
		return 0, fmt.Errorf("computer chose %s: %w", dest, ErrInvalidPlacement)
	}

	g.play(BLACK, dest, moves)
	return dest, nil
}

func (g *Game) play(player Color, dest Square, moves MoveMap) {
	Apply(g.board, moves.Runs(dest), player)
	g.status.MarkMoved(player)

	captured := moves.Captured(dest)
	g.history = append(g.history, Move{
		Player:   player,
		Square:   dest,
		Captured: captured,
	})

	g.logger.Debug("move played", "player", player, "square", dest, "captured", captured)
}

// MarkSkipped records that player had no legal move this turn.
func (g *Game) MarkSkipped(player Color) {
	g.status.MarkSkipped(player)
	g.history = append(g.history, Move{Player: player, Pass: true})

	g.logger.Debug("turn skipped", "player", player)

	if g.status.IsGameOver() {
		white, black := g.Score()
		g.logger.Info("game over", "white", white, "black", black, "winner", g.Winner())
	}
}

// Skipped returns whether player skipped its most recent turn.
func (g *Game) Skipped(player Color) bool {
	return g.status.Skipped(player)
}

// IsGameOver returns true when both sides had to skip their most recent turn.
func (g *Game) IsGameOver() bool {
	return g.status.IsGameOver()
}

// Score returns the number of white and black discs.
func (g *Game) Score() (white, black int) {
	return g.board.Count(WHITE), g.board.Count(BLACK)
}

// Winner returns the color with the most discs, or EMPTY for a tie.
func (g *Game) Winner() Color {
	white, black := g.Score()

	switch {
	case white > black:
		return WHITE
	case black > white:
		return BLACK
	default:
		return EMPTY
	}
}

// History returns a copy of all moves played so far, including passes.
func (g *Game) History() []Move {
	return append([]Move{}, g.history...)
}

// Transcript returns the moves played so far in field notation, separated by spaces.
func (g *Game) Transcript() string {
	fields := make([]string, len(g.history))
	for i, move := range g.history {
		fields[i] = move.String()
	}
	return strings.Join(fields, " ")
}
