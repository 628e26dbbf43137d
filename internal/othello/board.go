package othello

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Color is the mark on a square.
type Color int

const (
	EMPTY Color = iota
	WHITE       // human
	BLACK       // computer
)

var (
	ErrOutOfRange         = errors.New("coordinate out of range")
	ErrInvalidBoardString = errors.New("invalid board string")
)

// Opponent returns the other player. EMPTY has no opponent and is returned as is.
func (c Color) Opponent() Color {
	switch c {
	case WHITE:
		return BLACK
	case BLACK:
		return WHITE
	default:
		return EMPTY
	}
}

func (c Color) String() string {
	switch c {
	case WHITE:
		return "white"
	case BLACK:
		return "black"
	default:
		return "empty"
	}
}

// Board holds the mark of every square. It has no knowledge of the rules.
type Board struct {
	squares [SquareCount]Color
}

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() *Board {
	b := NewBoardEmpty()
	b.squares[NewSquare(3, 3)] = WHITE
	b.squares[NewSquare(4, 4)] = WHITE
	b.squares[NewSquare(4, 3)] = BLACK
	b.squares[NewSquare(3, 4)] = BLACK
	return b
}

// NewBoardEmpty creates a new board without any discs.
func NewBoardEmpty() *Board {
	return &Board{}
}

// NewBoardFromString creates a board from 64 square marks in row-major order.
// White is one of "Ww○", black is one of "Bb●" and empty is one of ".-_". Whitespace is ignored.
func NewBoardFromString(s string) (*Board, error) {
	b := NewBoardEmpty()

	index := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}

		if index >= SquareCount {
			return nil, fmt.Errorf("%w: more than %d squares", ErrInvalidBoardString, SquareCount)
		}

		switch r {
		case 'W', 'w', '○':
			b.squares[index] = WHITE
		case 'B', 'b', '●':
			b.squares[index] = BLACK
		case '.', '-', '_':
			b.squares[index] = EMPTY
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidBoardString, r)
		}
		index++
	}

	if index != SquareCount {
		return nil, fmt.Errorf("%w: got %d squares, want %d", ErrInvalidBoardString, index, SquareCount)
	}

	return b, nil
}

// Get returns the mark at column x and row y.
func (b *Board) Get(x, y int) (Color, error) {
	if !InBounds(x, y) {
		return EMPTY, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}
	return b.squares[NewSquare(x, y)], nil
}

// Set puts a mark at column x and row y.
func (b *Board) Set(x, y int, c Color) error {
	if !InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}
	b.squares[NewSquare(x, y)] = c
	return nil
}

// At returns the mark on a square. The square must be valid.
func (b *Board) At(s Square) Color {
	return b.squares[s]
}

func (b *Board) put(s Square, c Color) {
	b.squares[s] = c
}

// Snapshot returns a copy of the grid, indexed as [y][x].
func (b *Board) Snapshot() [MaxY][MaxX]Color {
	var grid [MaxY][MaxX]Color
	for s := range Square(SquareCount) {
		grid[s.Y()][s.X()] = b.squares[s]
	}
	return grid
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Equal checks if two boards hold the same marks.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares
}

// Count returns the number of squares with the given mark.
func (b *Board) Count(c Color) int {
	count := 0
	for _, square := range b.squares {
		if square == c {
			count++
		}
	}
	return count
}

// ASCIIArtLines returns the ascii art lines for the board. Destinations in moves are marked with a dot.
func (b *Board) ASCIIArtLines(moves MoveMap) []string {
	lines := make([]string, MaxY+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for y := range MaxY {
		line := fmt.Sprintf("%d ", y+1)

		for x := range MaxX {
			s := NewSquare(x, y)

			switch {
			case b.squares[s] == WHITE:
				line += "○ "
			case b.squares[s] == BLACK:
				line += "● "
			case moves.Contains(s):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[y+1] = line + "|"
	}

	lines[MaxY+1] = "+-----------------+"

	return lines
}

// String returns the compact representation of the board, as accepted by NewBoardFromString.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(SquareCount)

	for _, square := range b.squares {
		switch square {
		case WHITE:
			sb.WriteByte('W')
		case BLACK:
			sb.WriteByte('B')
		default:
			sb.WriteByte('.')
		}
	}

	return sb.String()
}
