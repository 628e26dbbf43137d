package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		board   string
		origin  Square
		player  Color
		dir     Direction
		wantOK  bool
		wantRun Run
	}{
		{
			name: "three discs south",
			board: `
				........
				........
				.....W..
				.....B..
				.....B..
				.....B..
				........
				........`,
			origin: NewSquare(5, 2),
			player: WHITE,
			dir:    South,
			wantOK: true,
			wantRun: Run{
				Origin:      NewSquare(5, 2),
				Destination: NewSquare(5, 6),
				Direction:   South,
				Captured:    3,
			},
		},
		{
			name: "one disc south west",
			board: `
				........
				........
				.....W..
				....B...
				........
				........
				........
				........`,
			origin: NewSquare(5, 2),
			player: WHITE,
			dir:    SouthWest,
			wantOK: true,
			wantRun: Run{
				Origin:      NewSquare(5, 2),
				Destination: NewSquare(3, 4),
				Direction:   SouthWest,
				Captured:    1,
			},
		},
		{
			name: "black scanning north east",
			board: `
				........
				........
				........
				....W...
				...W....
				..B.....
				........
				........`,
			origin: NewSquare(2, 5),
			player: BLACK,
			dir:    NorthEast,
			wantOK: true,
			wantRun: Run{
				Origin:      NewSquare(2, 5),
				Destination: NewSquare(5, 2),
				Direction:   NorthEast,
				Captured:    2,
			},
		},
		{
			name: "run reaches the edge",
			board: `
				........
				........
				........
				........
				.....W..
				.....B..
				.....B..
				.....B..`,
			origin: NewSquare(5, 4),
			player: WHITE,
			dir:    South,
			wantOK: false,
		},
		{
			name: "run ends on own disc",
			board: `
				WBW.....
				........
				........
				........
				........
				........
				........
				........`,
			origin: NewSquare(0, 0),
			player: WHITE,
			dir:    East,
			wantOK: false,
		},
		{
			name: "adjacent square is empty",
			board: `
				W.B.....
				........
				........
				........
				........
				........
				........
				........`,
			origin: NewSquare(0, 0),
			player: WHITE,
			dir:    East,
			wantOK: false,
		},
		{
			name: "adjacent square is own disc",
			board: `
				WW......
				........
				........
				........
				........
				........
				........
				........`,
			origin: NewSquare(0, 0),
			player: WHITE,
			dir:    East,
			wantOK: false,
		},
		{
			name: "adjacent square is off the board",
			board: `
				WB......
				........
				........
				........
				........
				........
				........
				........`,
			origin: NewSquare(0, 0),
			player: WHITE,
			dir:    West,
			wantOK: false,
		},
		{
			name: "run along the last row ends at the corner",
			board: `
				........
				........
				........
				........
				........
				........
				........
				...WBBBB`,
			origin: NewSquare(3, 7),
			player: WHITE,
			dir:    East,
			wantOK: false,
		},
		{
			name: "origin is not the player",
			board: `
				........
				........
				.....B..
				.....W..
				........
				........
				........
				........`,
			origin: NewSquare(5, 2),
			player: WHITE,
			dir:    South,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.board)

			run, ok := Scan(board, tt.origin, tt.player, tt.dir)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.wantRun, run)
			}
		})
	}
}

func TestScan_DoesNotWrapAroundRows(t *testing.T) {
	// Without bounds checks per axis, stepping east from h3 would continue on a4.
	board := mustBoard(t, `
		........
		........
		......WB
		B.......
		........
		........
		........
		........`)

	_, ok := Scan(board, NewSquare(6, 2), WHITE, East)
	require.False(t, ok)
}

func TestRun_String(t *testing.T) {
	run := Run{
		Origin:      NewSquare(5, 2),
		Destination: NewSquare(3, 4),
		Direction:   SouthWest,
		Captured:    1,
	}
	require.Equal(t, "f3-d5(SW,1)", run.String())
}
