package othello

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MaxX = 8
	MaxY = 8

	// SquareCount is the number of squares on the board.
	SquareCount = MaxX * MaxY

	// PassField is the field notation of a pass in a game transcript.
	PassField = "--"
)

var (
	ErrInvalidField = errors.New("invalid field")
	ErrFieldLength  = fmt.Errorf("%w: not one letter and one number", ErrInvalidField)
	ErrFieldColumn  = fmt.Errorf("%w: column not in a-h", ErrInvalidField)
	ErrFieldRow     = fmt.Errorf("%w: row not in 1-8", ErrInvalidField)
)

// Square identifies a square on the board by its flattened index y*MaxX + x.
type Square int

// NewSquare creates a square from column x and row y. It does not validate bounds, use InBounds for that.
func NewSquare(x, y int) Square {
	return Square(y*MaxX + x)
}

// InBounds checks if column x and row y are on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < MaxX && y >= 0 && y < MaxY
}

// X returns the column of the square.
func (s Square) X() int {
	return int(s) % MaxX
}

// Y returns the row of the square.
func (s Square) Y() int {
	return int(s) / MaxX
}

// IsValid checks if the square is on the board.
func (s Square) IsValid() bool {
	return s >= 0 && s < SquareCount
}

// Step returns the square one step in the given direction and whether that square is on the board.
func (s Square) Step(d Direction) (Square, bool) {
	x := s.X() + d.DX
	y := s.Y() + d.DY
	if !InBounds(x, y) {
		return 0, false
	}
	return NewSquare(x, y), true
}

// String returns the field notation of the square, e.g. "a1" for the top-left corner.
func (s Square) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Square(%d)", int(s))
	}
	return fmt.Sprintf("%c%d", 'a'+s.X(), s.Y()+1)
}

// ParseSquare converts a field notation (e.g. "a1", "H8") to a square.
func ParseSquare(field string) (Square, error) {
	field = strings.ToLower(strings.TrimSpace(field))

	if len(field) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrFieldLength, field)
	}

	if field[0] < 'a' || field[0] > 'h' {
		return 0, fmt.Errorf("%w: %q", ErrFieldColumn, field)
	}

	if field[1] < '1' || field[1] > '8' {
		return 0, fmt.Errorf("%w: %q", ErrFieldRow, field)
	}

	x := int(field[0] - 'a')
	y := int(field[1] - '1')
	return NewSquare(x, y), nil
}
