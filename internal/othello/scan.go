package othello

import "fmt"

// Run is a line of opponent discs that is captured when the player places a disc on Destination.
// It starts next to Origin, which holds a disc of the player, and ends right before Destination.
type Run struct {
	Origin      Square
	Destination Square
	Direction   Direction
	Captured    int
}

func (r Run) String() string {
	return fmt.Sprintf("%s-%s(%s,%d)", r.Origin, r.Destination, r.Direction, r.Captured)
}

// Scan looks for a capturing run starting at origin in one direction.
// The run must consist of at least one opponent disc and must be followed by an empty square on the board.
func Scan(board *Board, origin Square, player Color, dir Direction) (Run, bool) {
	if board.At(origin) != player {
		return Run{}, false
	}

	opponent := player.Opponent()

	current, ok := origin.Step(dir)
	if !ok || board.At(current) != opponent {
		return Run{}, false
	}

	captured := 1
	for {
		current, ok = current.Step(dir)
		if !ok {
			// Reached the edge without finding an empty square.
			return Run{}, false
		}

		switch board.At(current) {
		case EMPTY:
			return Run{
				Origin:      origin,
				Destination: current,
				Direction:   dir,
				Captured:    captured,
			}, true
		case player:
			return Run{}, false
		default:
			captured++
		}
	}
}
