package game

import "github.com/beka-birhanu/maze-game/maze"

// Board defines the maze surface the session layer consumes. *maze.Maze
// satisfies it; tests substitute fixed layouts.
type Board interface {
	Rows() int
	Cols() int
	StartPos() maze.Position
	GoalPos() maze.Position
	IsValidMove(pos maze.Position, dir maze.Direction) bool
	Neighbors(row, col int) []maze.Position
	Distances(from maze.Position) map[maze.Position]int
}

// BoardFunc builds a generated Board for a difficulty. Sessions call it on
// every start and restart; the previous board is discarded wholesale, never
// regenerated in place while a player holds it.
type BoardFunc func(maze.Difficulty) Board

// NewBoard is the default BoardFunc: a freshly generated maze at the given
// difficulty.
func NewBoard(d maze.Difficulty) Board {
	m := maze.New(d)
	m.Generate()
	return m
}
