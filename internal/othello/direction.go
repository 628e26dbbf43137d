package othello

// Direction is a unit step on the board. Rows grow downwards, so north is DY == -1.
type Direction struct {
	DX   int
	DY   int
	Name string
}

var (
	North     = Direction{DX: 0, DY: -1, Name: "N"}
	South     = Direction{DX: 0, DY: 1, Name: "S"}
	East      = Direction{DX: 1, DY: 0, Name: "E"}
	West      = Direction{DX: -1, DY: 0, Name: "W"}
	NorthEast = Direction{DX: 1, DY: -1, Name: "NE"}
	NorthWest = Direction{DX: -1, DY: -1, Name: "NW"}
	SouthEast = Direction{DX: 1, DY: 1, Name: "SE"}
	SouthWest = Direction{DX: -1, DY: 1, Name: "SW"}
)

// Directions lists all eight directions in the order in which they are scanned.
var Directions = [8]Direction{
	North, South, East, West,
	NorthEast, NorthWest, SouthEast, SouthWest,
}

func (d Direction) String() string {
	return d.Name
}
