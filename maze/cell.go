package maze

// Direction is a movement token accepted by move validation and the player
// controller. Unrecognized values are never an error; every switch in this
// package treats them as an invalid move.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Delta returns the row and column offset one step in the direction covers,
// and whether the token is recognized.
func (d Direction) Delta() (rowDelta, colDelta int, ok bool) {
	switch d {
	case Up:
		return -1, 0, true
	case Down:
		return 1, 0, true
	case Left:
		return 0, -1, true
	case Right:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}

// wallSide names one of the four walls of a cell. Wall mutation goes through
// a switch on this type so a wall is always addressed as an explicit field,
// never by name lookup.
type wallSide int

const (
	sideTop wallSide = iota
	sideRight
	sideBottom
	sideLeft
)

// side maps a direction token onto the wall it would cross.
func (d Direction) side() (wallSide, bool) {
	switch d {
	case Up:
		return sideTop, true
	case Down:
		return sideBottom, true
	case Left:
		return sideLeft, true
	case Right:
		return sideRight, true
	default:
		return 0, false
	}
}

// Position identifies a cell by its row and column. It is a comparable value
// type, so it can key distance maps directly.
type Position struct {
	Row int
	Col int
}

// Cell represents a single cell in the maze grid. A wall between two adjacent
// cells is stored on both of them; the generator always clears both halves of
// a shared wall together, and nothing else is allowed to break that pairing:
// a half-cleared wall is a one-way passage.
type Cell struct {
	TopWall    bool // TopWall indicates a wall on the top (north) side.
	RightWall  bool // RightWall indicates a wall on the right (east) side.
	BottomWall bool // BottomWall indicates a wall on the bottom (south) side.
	LeftWall   bool // LeftWall indicates a wall on the left (west) side.
	Visited    bool // Visited is only meaningful during generation.
}

// HasAllWalls reports whether no passage has been carved into the cell yet.
func (c *Cell) HasAllWalls() bool {
	return c.TopWall && c.RightWall && c.BottomWall && c.LeftWall
}
