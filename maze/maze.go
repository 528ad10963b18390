/*
Package maze provides the cell model, generation algorithms, and query surface
for a rectangular grid maze.

A Maze is built in two phases: New fixes the dimensions from a difficulty
preset and fills the grid with fully walled cells, and Generate carves the
passages. Generation carves a perfect maze with an iterative randomized
backtracker, braids it by removing a preset percentage of the remaining
internal walls, and finally places a start and goal pair using breadth-first
shortest-path distances.

Querying a Maze before Generate has run is defined zero-value behavior: every
wall is present, and start and goal both sit at the origin.
*/
package maze

import (
	"math/rand"
	"strings"
	"time"
)

// Maze is a rectangular grid of cells with a start and goal pair. It owns its
// cells exclusively and is not safe for concurrent mutation; generate it
// fully before sharing it read-only.
type Maze struct {
	rows       int
	cols       int
	removalPct int
	difficulty Difficulty
	cells      [][]Cell
	start      Position
	goal       Position
	rng        *rand.Rand
}

// Option configures a Maze at construction time.
type Option func(*Maze)

// WithSeed makes generation deterministic. Two mazes built with the same
// difficulty and seed produce identical wall layouts and start/goal pairs.
func WithSeed(seed int64) Option {
	return func(m *Maze) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates an ungenerated maze sized by the difficulty preset. Every cell
// starts with all four walls present. Call Generate before querying moves or
// distances.
func New(difficulty Difficulty, opts ...Option) *Maze {
	preset, ok := Presets[difficulty]
	if !ok {
		preset = Presets[Easy]
		difficulty = Easy
	}

	m := &Maze{
		rows:       preset.Rows,
		cols:       preset.Cols,
		removalPct: preset.RemovalPct,
		difficulty: difficulty,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.resetGrid()

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// resetGrid restores every cell to the fully walled, unvisited state.
func (m *Maze) resetGrid() {
	grid := make([][]Cell, m.rows)
	for r := range grid {
		grid[r] = make([]Cell, m.cols)
		for c := range grid[r] {
			grid[r][c] = Cell{
				TopWall:    true,
				RightWall:  true,
				BottomWall: true,
				LeftWall:   true,
			}
		}
	}
	m.cells = grid
	m.start = Position{}
	m.goal = Position{}
}

// Generate carves the maze and places the start/goal pair. Calling it again
// discards the previous layout and regenerates from scratch. After a
// successful call every cell is visited, the passage graph is fully
// connected, and the goal is reachable from the start.
func (m *Maze) Generate() {
	m.resetGrid()
	m.carve(Position{Row: 0, Col: 0})
	m.removeExtraWalls()
	m.placeStartAndGoal()
}

// Rows returns the number of rows in the grid.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of columns in the grid.
func (m *Maze) Cols() int { return m.cols }

// Difficulty returns the level the maze was built with.
func (m *Maze) Difficulty() Difficulty { return m.difficulty }

// StartPos returns the player's starting position.
func (m *Maze) StartPos() Position { return m.start }

// GoalPos returns the goal position.
func (m *Maze) GoalPos() Position { return m.goal }

// CellAt returns the cell at the given coordinate, or nil when the
// coordinate is out of bounds.
func (m *Maze) CellAt(row, col int) *Cell {
	if !m.inBounds(row, col) {
		return nil
	}
	return &m.cells[row][col]
}

func (m *Maze) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// step returns the coordinate one cell across the given wall, and whether it
// stays inside the grid.
func (m *Maze) step(p Position, s wallSide) (Position, bool) {
	next := p
	switch s {
	case sideTop:
		next.Row--
	case sideRight:
		next.Col++
	case sideBottom:
		next.Row++
	case sideLeft:
		next.Col--
	}
	return next, m.inBounds(next.Row, next.Col)
}

// openWall clears both halves of the wall between p and its neighbor across
// side s. The caller must ensure the neighbor is in bounds.
func (m *Maze) openWall(p Position, s wallSide) {
	n, _ := m.step(p, s)
	switch s {
	case sideTop:
		m.cells[p.Row][p.Col].TopWall = false
		m.cells[n.Row][n.Col].BottomWall = false
	case sideRight:
		m.cells[p.Row][p.Col].RightWall = false
		m.cells[n.Row][n.Col].LeftWall = false
	case sideBottom:
		m.cells[p.Row][p.Col].BottomWall = false
		m.cells[n.Row][n.Col].TopWall = false
	case sideLeft:
		m.cells[p.Row][p.Col].LeftWall = false
		m.cells[n.Row][n.Col].RightWall = false
	}
}

// shuffledSides returns the four wall sides in random order.
func (m *Maze) shuffledSides() []wallSide {
	sides := []wallSide{sideTop, sideRight, sideBottom, sideLeft}
	m.rng.Shuffle(len(sides), func(i, j int) {
		sides[i], sides[j] = sides[j], sides[i]
	})
	return sides
}

// carveFrame is one entry of the explicit backtracking stack: a cell plus the
// directions still left to try from it, in the order they were shuffled.
type carveFrame struct {
	pos   Position
	sides []wallSide
	next  int
}

// carve runs a randomized depth-first backtracker from start, producing a
// perfect maze: a spanning tree over all cells with exactly one simple path
// between any two of them. The stack is explicit so the largest preset
// (a 1600-cell corridor in the worst case) cannot overflow the call stack.
func (m *Maze) carve(start Position) {
	m.cells[start.Row][start.Col].Visited = true
	stack := []carveFrame{{pos: start, sides: m.shuffledSides()}}

	for len(stack) > 0 {
		top := len(stack) - 1
		if stack[top].next >= len(stack[top].sides) {
			stack = stack[:top]
			continue
		}

		side := stack[top].sides[stack[top].next]
		stack[top].next++

		neighbor, ok := m.step(stack[top].pos, side)
		if !ok || m.cells[neighbor.Row][neighbor.Col].Visited {
			continue
		}

		m.openWall(stack[top].pos, side)
		m.cells[neighbor.Row][neighbor.Col].Visited = true
		stack = append(stack, carveFrame{pos: neighbor, sides: m.shuffledSides()})
	}
}

// internalWall identifies one shared wall by its owning cell and side. Only
// right and bottom sides are enumerated so each wall is counted once.
type internalWall struct {
	pos  Position
	side wallSide
}

// removeExtraWalls braids the maze: it removes a preset percentage of the
// internal walls still standing after the carve, introducing cycles that give
// the player alternate routes. Removing walls can never disconnect the maze.
func (m *Maze) removeExtraWalls() {
	if m.removalPct <= 0 {
		return
	}

	var walls []internalWall
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c < m.cols-1 && m.cells[r][c].RightWall {
				walls = append(walls, internalWall{pos: Position{Row: r, Col: c}, side: sideRight})
			}
			if r < m.rows-1 && m.cells[r][c].BottomWall {
				walls = append(walls, internalWall{pos: Position{Row: r, Col: c}, side: sideBottom})
			}
		}
	}

	numToRemove := len(walls) * m.removalPct / 100
	if numToRemove <= 0 {
		return
	}
	if numToRemove > len(walls) {
		numToRemove = len(walls)
	}

	m.rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})
	for _, w := range walls[:numToRemove] {
		m.openWall(w.pos, w.side)
	}
}

// placeStartAndGoal picks the start uniformly at random and the goal among
// the cells at least 60% of the start's eccentricity away, so the traversal
// is never trivial. If that candidate set is somehow empty it falls back to
// the farthest cell in row-major order.
func (m *Maze) placeStartAndGoal() {
	start := Position{Row: m.rng.Intn(m.rows), Col: m.rng.Intn(m.cols)}
	distances := m.Distances(start)

	maxDist := 0
	for _, d := range distances {
		if d > maxDist {
			maxDist = d
		}
	}

	minGoalDist := maxDist * 60 / 100
	if minGoalDist < 1 {
		minGoalDist = 1
	}

	// Candidate collection walks the grid in row-major order, not the
	// distance map, so the same seed always yields the same goal.
	var candidates []Position
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			p := Position{Row: r, Col: c}
			if d, ok := distances[p]; ok && d >= minGoalDist {
				candidates = append(candidates, p)
			}
		}
	}

	goal := start
	if len(candidates) > 0 {
		goal = candidates[m.rng.Intn(len(candidates))]
	} else {
		bestDist := -1
		for r := 0; r < m.rows; r++ {
			for c := 0; c < m.cols; c++ {
				p := Position{Row: r, Col: c}
				if d, ok := distances[p]; ok && d > bestDist {
					goal = p
					bestDist = d
				}
			}
		}
	}

	m.start = start
	m.goal = goal
}

// Distances returns the shortest hop-count distance from the given coordinate
// to every coordinate reachable through cleared walls, the origin included at
// distance zero. For a generated maze the result covers the whole grid.
func (m *Maze) Distances(from Position) map[Position]int {
	distances := make(map[Position]int)
	if !m.inBounds(from.Row, from.Col) {
		return distances
	}

	distances[from] = 0
	queue := []Position{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range m.Neighbors(current.Row, current.Col) {
			if _, seen := distances[n]; seen {
				continue
			}
			distances[n] = distances[current] + 1
			queue = append(queue, n)
		}
	}
	return distances
}

// Neighbors returns the coordinates directly adjacent through a cleared wall,
// probed in the fixed order up, down, left, right. A fully walled cell has no
// neighbors.
func (m *Maze) Neighbors(row, col int) []Position {
	var neighbors []Position
	if !m.inBounds(row, col) {
		return neighbors
	}

	cell := m.cells[row][col]
	if row > 0 && !cell.TopWall {
		neighbors = append(neighbors, Position{Row: row - 1, Col: col})
	}
	if row < m.rows-1 && !cell.BottomWall {
		neighbors = append(neighbors, Position{Row: row + 1, Col: col})
	}
	if col > 0 && !cell.LeftWall {
		neighbors = append(neighbors, Position{Row: row, Col: col - 1})
	}
	if col < m.cols-1 && !cell.RightWall {
		neighbors = append(neighbors, Position{Row: row, Col: col + 1})
	}
	return neighbors
}

// IsValidMove reports whether a single step from pos in the given direction
// is legal: the position is in bounds, the step stays on the grid, and the
// wall on that side of the current cell is cleared. Unrecognized direction
// tokens are invalid, never an error. The check is pure; the caller applies
// the position change.
func (m *Maze) IsValidMove(pos Position, dir Direction) bool {
	side, ok := dir.side()
	if !ok || !m.inBounds(pos.Row, pos.Col) {
		return false
	}
	if _, inside := m.step(pos, side); !inside {
		return false
	}

	cell := m.cells[pos.Row][pos.Col]
	switch side {
	case sideTop:
		return !cell.TopWall
	case sideRight:
		return !cell.RightWall
	case sideBottom:
		return !cell.BottomWall
	case sideLeft:
		return !cell.LeftWall
	default:
		return false
	}
}

// String renders the maze as ASCII art, marking the start with S and the
// goal with G.
func (m *Maze) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", m.cols) + "\n")
	for row := 0; row < m.rows; row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < m.cols; col++ {
			cell := m.cells[row][col]

			switch (Position{Row: row, Col: col}) {
			case m.start:
				cellRow += " S "
			case m.goal:
				cellRow += " G "
			default:
				cellRow += "   "
			}

			if cell.RightWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}

			if cell.BottomWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		b.WriteString(cellRow + "\n")
		b.WriteString(wallRow + "\n")
	}

	return b.String()
}
