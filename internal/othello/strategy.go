package othello

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var ErrNoLegalMoves = errors.New("no legal moves")

// Strategy picks a destination from a non-empty set of legal moves.
type Strategy interface {
	ChooseMove(moves MoveMap) (Square, error)
}

// TieBreak decides between destinations that capture the same number of discs.
type TieBreak int

const (
	// TieBreakCoin flips a coin every time a destination ties with the best one so far.
	// Earlier destinations are more likely to survive than later ones.
	TieBreakCoin TieBreak = iota

	// TieBreakUniform picks uniformly among all destinations with the maximum capture count.
	TieBreakUniform
)

// ParseTieBreak parses "coin" or "uniform".
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coin":
		return TieBreakCoin, nil
	case "uniform":
		return TieBreakUniform, nil
	default:
		return 0, fmt.Errorf("unknown tie break %q, must be \"coin\" or \"uniform\"", s)
	}
}

func (t TieBreak) String() string {
	if t == TieBreakUniform {
		return "uniform"
	}
	return "coin"
}

// Greedy picks the destination that captures the most discs, without looking ahead.
type Greedy struct {
	rng      *rand.Rand
	tieBreak TieBreak
}

// NewGreedy creates a greedy strategy. A nil rng is replaced by a time-seeded one.
func NewGreedy(rng *rand.Rand, tieBreak TieBreak) *Greedy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
	}

	return &Greedy{
		rng:      rng,
		tieBreak: tieBreak,
	}
}

// NewGreedySeeded creates a greedy strategy with a reproducible random source.
func NewGreedySeeded(seed int64, tieBreak TieBreak) *Greedy {
	return NewGreedy(rand.New(rand.NewSource(seed)), tieBreak) //nolint:gosec
}

// ChooseMove returns the destination with the highest capture count.
func (g *Greedy) ChooseMove(moves MoveMap) (Square, error) {
	if moves.IsEmpty() {
		return 0, ErrNoLegalMoves
	}

	var best Square
	bestTotal := 0
	ties := 0

	for _, s := range moves.Squares() {
		total := moves.Captured(s)

		switch {
		case total > bestTotal:
			best = s
			bestTotal = total
			ties = 1
		case total == bestTotal:
			ties++
			if g.replaceOnTie(ties) {
				best = s
			}
		}
	}

	return best, nil
}

// replaceOnTie reports whether the ties-th destination with the best total replaces the current choice.
func (g *Greedy) replaceOnTie(ties int) bool {
	if g.tieBreak == TieBreakUniform {
		// Reservoir sampling: every tied destination ends up chosen with probability 1/ties.
		return g.rng.Intn(ties) == 0
	}

	return g.rng.Intn(2) == 0
}
