package othello

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// generateTestBoards plays random games from the start position and returns every board seen, with the player to move.
func generateTestBoards(t *testing.T) map[*Board]Color {
	t.Helper()

	rng := rand.New(rand.NewSource(1)) //nolint:gosec
	boards := make(map[*Board]Color)

	for range 20 {
		board := NewBoardStart()
		player := BLACK
		passed := false

		for {
			boards[board.Clone()] = player

			moves := FindMoves(board, player)
			if moves.IsEmpty() {
				if passed {
					break
				}
				passed = true
				player = player.Opponent()
				continue
			}
			passed = false

			squares := moves.Squares()
			dest := squares[rng.Intn(len(squares))]
			Apply(board, moves.Runs(dest), player)
			player = player.Opponent()
		}
	}

	return boards
}

// flippedSlow computes the discs flipped by placing on move the other way around:
// walking from the destination to a disc of the player. It is used to verify FindMoves and Apply.
func flippedSlow(board *Board, player Color, move Square) []Square {
	if board.At(move) != EMPTY {
		return nil
	}

	flipped := make([]Square, 0)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}

			line := make([]Square, 0)
			for s := 1; ; s++ {
				curx := move.X() + dx*s
				cury := move.Y() + dy*s
				if !InBounds(curx, cury) {
					break
				}

				cur := NewSquare(curx, cury)
				if board.At(cur) == player.Opponent() {
					line = append(line, cur)
					continue
				}

				if board.At(cur) == player && len(line) > 0 {
					flipped = append(flipped, line...)
				}
				break
			}
		}
	}

	return flipped
}

func TestFindMoves_Start(t *testing.T) {
	board := NewBoardStart()

	white := FindMoves(board, WHITE)
	require.Equal(t, []Square{NewSquare(4, 2), NewSquare(5, 3), NewSquare(2, 4), NewSquare(3, 5)}, white.Squares())

	black := FindMoves(board, BLACK)
	require.Equal(t, []Square{NewSquare(3, 2), NewSquare(2, 3), NewSquare(5, 4), NewSquare(4, 5)}, black.Squares())

	for _, moves := range []MoveMap{white, black} {
		for _, s := range moves.Squares() {
			require.Equal(t, 1, moves.Captured(s))
			require.Len(t, moves.Runs(s), 1)
		}
	}

	// Finding moves does not modify the board.
	require.True(t, board.Equal(NewBoardStart()))
}

func TestFindMoves_NoMoves(t *testing.T) {
	tests := []struct {
		name  string
		board *Board
	}{
		{name: "empty board", board: NewBoardEmpty()},
		{name: "only white", board: mustBoard(t, "W"+strings.Repeat(".", SquareCount-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := FindMoves(tt.board, WHITE)
			require.True(t, moves.IsEmpty())
			require.Equal(t, 0, moves.Len())
			require.Empty(t, moves.Squares())
		})
	}
}

func TestFindMoves_MultipleDirections(t *testing.T) {
	// Placing on d4 captures one disc to the north and two to the east.
	board := mustBoard(t, `
		........
		...W....
		...B....
		....BBW.
		........
		........
		........
		........`)

	moves := FindMoves(board, WHITE)
	dest := NewSquare(3, 3)

	require.True(t, moves.Contains(dest))
	require.Equal(t, 3, moves.Captured(dest))

	runs := moves.Runs(dest)
	require.Len(t, runs, 2)
	require.Equal(t, Run{Origin: NewSquare(3, 1), Destination: dest, Direction: South, Captured: 1}, runs[0])
	require.Equal(t, Run{Origin: NewSquare(6, 3), Destination: dest, Direction: West, Captured: 2}, runs[1])

	Apply(board, runs, WHITE)

	want := mustBoard(t, `
		........
		...W....
		...W....
		...WWWW.
		........
		........
		........
		........`)
	require.True(t, board.Equal(want), "got %s", board)
}

func TestFindMoves_Idempotent(t *testing.T) {
	for board, player := range generateTestBoards(t) {
		require.Equal(t, FindMoves(board, player), FindMoves(board, player))
	}
}

func TestFindMoves_Invariants(t *testing.T) {
	for board, player := range generateTestBoards(t) {
		moves := FindMoves(board, player)

		for _, dest := range moves.Squares() {
			runs := moves.Runs(dest)
			require.NotEmpty(t, runs)
			require.Equal(t, EMPTY, board.At(dest))

			for _, run := range runs {
				require.Equal(t, dest, run.Destination)
				require.Equal(t, player, board.At(run.Origin))
				require.GreaterOrEqual(t, run.Captured, 1)

				// Every square strictly between origin and destination holds an opponent disc.
				count := 0
				for cur, ok := run.Origin.Step(run.Direction); ok && cur != dest; cur, ok = cur.Step(run.Direction) {
					require.Equal(t, player.Opponent(), board.At(cur))
					count++
				}
				require.Equal(t, run.Captured, count)
			}
		}
	}
}

func TestFindMoves_MatchesSlowImplementation(t *testing.T) {
	for board, player := range generateTestBoards(t) {
		moves := FindMoves(board, player)

		for s := range Square(SquareCount) {
			flipped := flippedSlow(board, player, s)
			require.Equal(t, len(flipped) > 0, moves.Contains(s), "square %s on board %s", s, board)
			require.Equal(t, len(flipped), moves.Captured(s))
		}
	}
}

func TestApply_MatchesSlowImplementation(t *testing.T) {
	for board, player := range generateTestBoards(t) {
		moves := FindMoves(board, player)

		for _, dest := range moves.Squares() {
			want := board.Clone()
			want.put(dest, player)
			for _, s := range flippedSlow(board, player, dest) {
				want.put(s, player)
			}

			got := board.Clone()
			Apply(got, moves.Runs(dest), player)

			require.True(t, want.Equal(got), "move %s on board %s", dest, board)
			require.Equal(t, board.Count(player)+moves.Captured(dest)+1, got.Count(player))
			require.Equal(t, board.Count(EMPTY)-1, got.Count(EMPTY))
		}
	}
}

func TestApply_DownLeft(t *testing.T) {
	board := NewBoardStart()
	require.NoError(t, board.Set(3, 4, EMPTY))
	require.NoError(t, board.Set(4, 4, EMPTY))
	require.NoError(t, board.Set(3, 3, EMPTY))
	require.NoError(t, board.Set(5, 2, WHITE))
	require.NoError(t, board.Set(4, 3, BLACK))

	moves := FindMoves(board, WHITE)
	dest := NewSquare(3, 4)
	require.True(t, moves.Contains(dest))

	Apply(board, moves.Runs(dest), WHITE)

	got, err := board.Get(4, 3)
	require.NoError(t, err)
	require.Equal(t, WHITE, got)

	got, err = board.Get(3, 4)
	require.NoError(t, err)
	require.Equal(t, WHITE, got)

	require.Equal(t, 0, board.Count(BLACK))
}

func TestApply_CapturesLine(t *testing.T) {
	board := NewBoardEmpty()
	require.NoError(t, board.Set(5, 2, WHITE))
	for y := 3; y <= 5; y++ {
		require.NoError(t, board.Set(5, y, BLACK))
	}

	moves := FindMoves(board, WHITE)
	require.Equal(t, []Square{NewSquare(5, 6)}, moves.Squares())
	require.Equal(t, 3, moves.Captured(NewSquare(5, 6)))

	Apply(board, moves.Runs(NewSquare(5, 6)), WHITE)

	for y := 2; y <= 6; y++ {
		got, err := board.Get(5, y)
		require.NoError(t, err)
		require.Equal(t, WHITE, got)
	}
	require.Equal(t, 0, board.Count(BLACK))
}
