package game

import "github.com/beka-birhanu/maze-game/maze"

// Player is the token navigating the maze. It tracks the current position
// and the breadcrumb trail of cells walked since the start. Movement is
// unvalidated by design; the session checks the move against the board
// before applying it.
type Player struct {
	pos   maze.Position
	trail []maze.Position
}

// NewPlayer places a player on the starting position with a trail seeded by
// that position.
func NewPlayer(start maze.Position) *Player {
	return &Player{
		pos:   start,
		trail: []maze.Position{start},
	}
}

// Position returns the player's current coordinate.
func (p *Player) Position() maze.Position {
	return p.pos
}

// Move applies the direction's row/col delta to the position and updates the
// breadcrumb trail. Unrecognized directions leave the player in place.
func (p *Player) Move(dir maze.Direction) {
	rowDelta, colDelta, ok := dir.Delta()
	if !ok {
		return
	}
	p.pos.Row += rowDelta
	p.pos.Col += colDelta
	p.trail = UpdateTrail(p.trail, p.pos)
}

// Trail returns the breadcrumb trail, oldest position first. The current
// position is always the last entry.
func (p *Player) Trail() []maze.Position {
	return p.trail
}

// UpdateTrail advances a breadcrumb trail to the given position. Stepping
// back onto the previous cell pops the head of the trail instead of growing
// it, so retraced corridors shed their breadcrumbs; any other move appends.
// Moving onto the current position, or updating an empty trail, changes
// nothing.
func UpdateTrail(trail []maze.Position, pos maze.Position) []maze.Position {
	if len(trail) == 0 {
		return trail
	}
	if trail[len(trail)-1] == pos {
		return trail
	}
	if len(trail) >= 2 && trail[len(trail)-2] == pos {
		return trail[:len(trail)-1]
	}
	return append(trail, pos)
}
