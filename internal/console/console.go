package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lk16/reversi/internal/othello"
)

// Console plays a game against the computer on a line based terminal. The human plays WHITE.
type Console struct {
	game      *othello.Game
	scanner   *bufio.Scanner
	out       io.Writer
	showHints bool
}

// New creates a console that reads fields from in and writes the game to out.
// Fields are separated by whitespace.
func New(game *othello.Game, in io.Reader, out io.Writer, showHints bool) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Console{
		game:      game,
		scanner:   scanner,
		out:       out,
		showHints: showHints,
	}
}

// Run plays rounds until both sides had to pass. It returns an error wrapping io.ErrUnexpectedEOF
// if the input ends before the game does.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, "You play white (○), the computer plays black (●).")
	c.printBoard(true)
	c.printScore()

	for !c.game.IsGameOver() {
		if err := c.humanTurn(); err != nil {
			return err
		}

		if err := c.computerTurn(); err != nil {
			return err
		}
	}

	c.printResult()
	return nil
}

func (c *Console) humanTurn() error {
	moves := c.game.LegalMoves(othello.WHITE)
	if moves.IsEmpty() {
		c.game.MarkSkipped(othello.WHITE)
		fmt.Fprintln(c.out, "You have no legal move and must pass.")
		return nil
	}

	if c.showHints {
		fmt.Fprintf(c.out, "Legal moves: %s\n", formatSquares(moves.Squares()))
	}

	for {
		fmt.Fprint(c.out, "Where would you like to place your disc? ")

		field, err := c.readField()
		if err != nil {
			return err
		}

		square, err := othello.ParseSquare(field)
		if err != nil {
			fmt.Fprintln(c.out, FieldErrorMessage(err))
			continue
		}

		err = c.game.ApplyHumanMove(square, moves)
		if errors.Is(err, othello.ErrInvalidPlacement) {
			fmt.Fprintf(c.out, "You cannot place a disc on %s.\n", square)
			continue
		}
		if err != nil {
			return err
		}

		c.printBoard(false)
		c.printScore()
		return nil
	}
}

func (c *Console) computerTurn() error {
	if !c.game.CanMove(othello.BLACK) {
		c.game.MarkSkipped(othello.BLACK)
		fmt.Fprintln(c.out, "The computer has no legal move and passes.")
		return nil
	}

	square, err := c.game.ApplyComputerMove()
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "The computer places a disc on %s.\n", square)
	c.printBoard(true)
	c.printScore()
	return nil
}

func (c *Console) readField() (string, error) {
	if c.scanner.Scan() {
		return c.scanner.Text(), nil
	}

	if err := c.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read move: %w", err)
	}

	return "", fmt.Errorf("failed to read move: %w", io.ErrUnexpectedEOF)
}

// printBoard prints the board. With hints enabled the legal moves of WHITE are marked if withHints is set.
func (c *Console) printBoard(withHints bool) {
	board := c.game.Board()

	var moves othello.MoveMap
	if withHints && c.showHints {
		moves = c.game.LegalMoves(othello.WHITE)
	}

	for _, line := range board.ASCIIArtLines(moves) {
		fmt.Fprintln(c.out, line)
	}
}

func (c *Console) printScore() {
	white, black := c.game.Score()
	fmt.Fprintf(c.out, "Score: white %d, black %d\n", white, black)
}

func (c *Console) printResult() {
	c.printScore()

	switch c.game.Winner() {
	case othello.WHITE:
		fmt.Fprintln(c.out, "Game over. You win!")
	case othello.BLACK:
		fmt.Fprintln(c.out, "Game over. The computer wins.")
	default:
		fmt.Fprintln(c.out, "Game over. It's a tie.")
	}
}

// FieldErrorMessage explains to the user why a field could not be parsed.
func FieldErrorMessage(err error) string {
	switch {
	case errors.Is(err, othello.ErrFieldLength):
		return "Enter a column and a row, for example d3."
	case errors.Is(err, othello.ErrFieldColumn):
		return "The column must be a letter from a to h."
	case errors.Is(err, othello.ErrFieldRow):
		return "The row must be a number from 1 to 8."
	default:
		return err.Error()
	}
}

func formatSquares(squares []othello.Square) string {
	fields := make([]string, len(squares))
	for i, square := range squares {
		fields[i] = square.String()
	}
	return strings.Join(fields, " ")
}
