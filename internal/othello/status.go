package othello

// Status keeps track of which side could not move on its most recent turn.
type Status struct {
	humanSkipped    bool
	computerSkipped bool
}

// MarkSkipped records that player had no legal move on its turn.
func (s *Status) MarkSkipped(player Color) {
	s.set(player, true)
}

// MarkMoved records that player placed a disc.
func (s *Status) MarkMoved(player Color) {
	s.set(player, false)
}

func (s *Status) set(player Color, skipped bool) {
	switch player {
	case WHITE:
		s.humanSkipped = skipped
	case BLACK:
		s.computerSkipped = skipped
	}
}

// Skipped returns whether player skipped its most recent turn.
func (s *Status) Skipped(player Color) bool {
	switch player {
	case WHITE:
		return s.humanSkipped
	case BLACK:
		return s.computerSkipped
	default:
		return false
	}
}

// IsGameOver returns true when both sides skipped their most recent turn.
func (s *Status) IsGameOver() bool {
	return s.humanSkipped && s.computerSkipped
}
