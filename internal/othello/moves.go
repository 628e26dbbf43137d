package othello

import "sort"

// MoveMap maps every legal destination to all runs it captures.
type MoveMap map[Square][]Run

// FindMoves returns all legal moves of player. The board is not modified.
func FindMoves(board *Board, player Color) MoveMap {
	moves := make(MoveMap)

	for origin := range Square(SquareCount) {
		if board.At(origin) != player {
			continue
		}

		for _, dir := range Directions {
			run, ok := Scan(board, origin, player, dir)
			if !ok {
				continue
			}
			moves[run.Destination] = append(moves[run.Destination], run)
		}
	}

	return moves
}

// Len returns the number of legal destinations.
func (m MoveMap) Len() int {
	return len(m)
}

// IsEmpty checks if there are no legal destinations.
func (m MoveMap) IsEmpty() bool {
	return len(m) == 0
}

// Contains checks if s is a legal destination.
func (m MoveMap) Contains(s Square) bool {
	_, ok := m[s]
	return ok
}

// Runs returns the runs captured by placing on s.
func (m MoveMap) Runs(s Square) []Run {
	return m[s]
}

// Captured returns the total number of discs captured by placing on s.
func (m MoveMap) Captured(s Square) int {
	total := 0
	for _, run := range m[s] {
		total += run.Captured
	}
	return total
}

// Squares returns all legal destinations in ascending order.
// Anything that depends on the order of destinations must iterate using this.
func (m MoveMap) Squares() []Square {
	squares := make([]Square, 0, len(m))
	for s := range m {
		squares = append(squares, s)
	}

	sort.Slice(squares, func(i, j int) bool {
		return squares[i] < squares[j]
	})

	return squares
}

// Apply places player's disc on the destination of the runs and flips every captured disc.
// The runs are trusted to come from FindMoves on this board for this player.
func Apply(board *Board, runs []Run, player Color) {
	for _, run := range runs {
		current := run.Origin
		for current != run.Destination {
			var ok bool
			current, ok = current.Step(run.Direction)
			if !ok {
				break
			}
			board.put(current, player)
		}
	}
}
