package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridUngenerated(t *testing.T) {
	for _, d := range Difficulties {
		t.Run(d.String(), func(t *testing.T) {
			m := New(d)
			preset := Presets[d]

			assert.Equal(t, preset.Rows, m.Rows())
			assert.Equal(t, preset.Cols, m.Cols())
			assert.Equal(t, d, m.Difficulty())

			for r := 0; r < m.Rows(); r++ {
				for c := 0; c < m.Cols(); c++ {
					assert.True(t, m.CellAt(r, c).HasAllWalls())
				}
			}

			// Zero-value behavior before Generate.
			assert.Equal(t, Position{}, m.StartPos())
			assert.Equal(t, Position{}, m.GoalPos())
		})
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	m := New(Easy)
	assert.Nil(t, m.CellAt(-1, 0))
	assert.Nil(t, m.CellAt(0, -1))
	assert.Nil(t, m.CellAt(m.Rows(), 0))
	assert.Nil(t, m.CellAt(0, m.Cols()))
}

func TestGeneratePostconditions(t *testing.T) {
	for _, d := range Difficulties {
		t.Run(d.String(), func(t *testing.T) {
			m := New(d, WithSeed(7))
			m.Generate()

			for r := 0; r < m.Rows(); r++ {
				for c := 0; c < m.Cols(); c++ {
					cell := m.CellAt(r, c)
					assert.True(t, cell.Visited, "cell (%d,%d) not visited", r, c)
					assert.False(t, cell.HasAllWalls(), "cell (%d,%d) has no passage", r, c)
				}
			}

			distances := m.Distances(m.StartPos())
			assert.Len(t, distances, m.Rows()*m.Cols(), "maze is not fully connected")
			assert.Contains(t, distances, m.GoalPos())
			assert.NotEqual(t, m.StartPos(), m.GoalPos())
		})
	}
}

func TestGoalFarFromStart(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1234} {
		m := New(Easy, WithSeed(seed))
		m.Generate()

		distances := m.Distances(m.StartPos())
		maxDist := 0
		for _, d := range distances {
			if d > maxDist {
				maxDist = d
			}
		}

		// Relaxed to 50% of the eccentricity for statistical stability.
		goalDist := distances[m.GoalPos()]
		assert.GreaterOrEqual(t, float64(goalDist), float64(maxDist)*0.5,
			"seed %d: goal at %d of max %d", seed, goalDist, maxDist)
	}
}

// Braiding removes floor(standing * pct / 100) walls from the standing
// internal walls after the spanning carve, so the total number of open
// internal walls is a fixed function of the preset.
func TestOpenPassageCount(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		want       int
	}{
		// carved passages (rows*cols - 1) + braided removals
		{Easy, 99 + 12},
		{Medium, 399 + 36},
		{Hard, 899 + 42},
		{VeryHard, 1599 + 30},
	}

	for _, tc := range cases {
		t.Run(tc.difficulty.String(), func(t *testing.T) {
			m := New(tc.difficulty, WithSeed(99))
			m.Generate()

			open := 0
			for r := 0; r < m.Rows(); r++ {
				for c := 0; c < m.Cols(); c++ {
					cell := m.CellAt(r, c)
					if c < m.Cols()-1 && !cell.RightWall {
						open++
					}
					if r < m.Rows()-1 && !cell.BottomWall {
						open++
					}
				}
			}
			assert.Equal(t, tc.want, open)
		})
	}
}

func TestWallPairSymmetry(t *testing.T) {
	m := New(Medium, WithSeed(5))
	m.Generate()

	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			cell := m.CellAt(r, c)
			if c < m.Cols()-1 {
				assert.Equal(t, cell.RightWall, m.CellAt(r, c+1).LeftWall,
					"wall between (%d,%d) and (%d,%d) is one-sided", r, c, r, c+1)
			}
			if r < m.Rows()-1 {
				assert.Equal(t, cell.BottomWall, m.CellAt(r+1, c).TopWall,
					"wall between (%d,%d) and (%d,%d) is one-sided", r, c, r+1, c)
			}
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	build := func(seed int64) *Maze {
		m := New(Easy, WithSeed(seed))
		m.Generate()
		return m
	}

	t.Run("same seed reproduces layout", func(t *testing.T) {
		a := build(42)
		b := build(42)

		assert.Equal(t, a.StartPos(), b.StartPos())
		assert.Equal(t, a.GoalPos(), b.GoalPos())
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := build(1)
		b := build(2)
		assert.NotEqual(t, a.String(), b.String())
	})
}

func TestRegenerateOverwritesLayout(t *testing.T) {
	m := New(Easy, WithSeed(3))
	m.Generate()
	m.Generate()

	distances := m.Distances(m.StartPos())
	assert.Len(t, distances, m.Rows()*m.Cols())
	assert.NotEqual(t, m.StartPos(), m.GoalPos())
}

func TestIsValidMove(t *testing.T) {
	t.Run("all walls block every move", func(t *testing.T) {
		m := New(Easy)
		for _, dir := range []Direction{Up, Down, Left, Right} {
			assert.False(t, m.IsValidMove(Position{Row: 1, Col: 1}, dir))
		}
	})

	t.Run("cleared wall pair allows the move", func(t *testing.T) {
		m := New(Easy)
		m.CellAt(1, 1).RightWall = false
		m.CellAt(1, 2).LeftWall = false

		assert.True(t, m.IsValidMove(Position{Row: 1, Col: 1}, Right))
		assert.True(t, m.IsValidMove(Position{Row: 1, Col: 2}, Left))
	})

	t.Run("unknown token is invalid", func(t *testing.T) {
		m := New(Easy, WithSeed(8))
		m.Generate()
		assert.False(t, m.IsValidMove(Position{}, Direction("teleport")))
	})

	t.Run("out of bounds position is invalid", func(t *testing.T) {
		m := New(Easy, WithSeed(8))
		m.Generate()
		assert.False(t, m.IsValidMove(Position{Row: -1, Col: 0}, Up))
		assert.False(t, m.IsValidMove(Position{Row: m.Rows(), Col: 0}, Down))
		assert.False(t, m.IsValidMove(Position{Row: 0, Col: -1}, Left))
		assert.False(t, m.IsValidMove(Position{Row: 0, Col: m.Cols()}, Right))
	})

	t.Run("grid edge blocks off-grid moves regardless of walls", func(t *testing.T) {
		m := New(Easy, WithSeed(8))
		m.Generate()

		for c := 0; c < m.Cols(); c++ {
			assert.False(t, m.IsValidMove(Position{Row: 0, Col: c}, Up))
			assert.False(t, m.IsValidMove(Position{Row: m.Rows() - 1, Col: c}, Down))
		}
		for r := 0; r < m.Rows(); r++ {
			assert.False(t, m.IsValidMove(Position{Row: r, Col: 0}, Left))
			assert.False(t, m.IsValidMove(Position{Row: r, Col: m.Cols() - 1}, Right))
		}
	})
}

func TestNeighbors(t *testing.T) {
	t.Run("fully walled cell has none", func(t *testing.T) {
		m := New(Easy)
		assert.Empty(t, m.Neighbors(1, 1))
	})

	t.Run("single cleared pair", func(t *testing.T) {
		m := New(Easy)
		m.CellAt(1, 1).RightWall = false
		m.CellAt(1, 2).LeftWall = false

		assert.Equal(t, []Position{{Row: 1, Col: 2}}, m.Neighbors(1, 1))
	})

	t.Run("fixed probe order", func(t *testing.T) {
		m := New(Easy)
		m.CellAt(1, 1).TopWall = false
		m.CellAt(0, 1).BottomWall = false
		m.CellAt(1, 1).RightWall = false
		m.CellAt(1, 2).LeftWall = false
		m.CellAt(1, 1).BottomWall = false
		m.CellAt(2, 1).TopWall = false

		// Up, down, left, right.
		assert.Equal(t, []Position{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 2}}, m.Neighbors(1, 1))
	})

	t.Run("out of bounds coordinate has none", func(t *testing.T) {
		m := New(Easy)
		assert.Empty(t, m.Neighbors(-1, 0))
		assert.Empty(t, m.Neighbors(0, m.Cols()))
	})
}

func TestDistances(t *testing.T) {
	m := New(Easy, WithSeed(11))
	m.Generate()

	t.Run("origin at zero", func(t *testing.T) {
		distances := m.Distances(m.StartPos())
		assert.Equal(t, 0, distances[m.StartPos()])
	})

	t.Run("covers the whole grid from any cell", func(t *testing.T) {
		distances := m.Distances(Position{Row: 4, Col: 7})
		assert.Len(t, distances, m.Rows()*m.Cols())
		for _, d := range distances {
			assert.GreaterOrEqual(t, d, 0)
		}
	})

	t.Run("out of bounds origin yields nothing", func(t *testing.T) {
		assert.Empty(t, m.Distances(Position{Row: -1, Col: 0}))
	})
}

func TestSeededEasyMazeScenario(t *testing.T) {
	m := New(Easy, WithSeed(42))
	m.Generate()

	distances := m.Distances(m.StartPos())
	goalDist, reachable := distances[m.GoalPos()]
	require.True(t, reachable, "goal unreachable from start")
	assert.GreaterOrEqual(t, goalDist, 1)

	replay := New(Easy, WithSeed(42))
	replay.Generate()
	assert.Equal(t, m.StartPos(), replay.StartPos())
	assert.Equal(t, m.GoalPos(), replay.GoalPos())
}

func TestStringRendersWallsAndMarkers(t *testing.T) {
	m := New(Easy, WithSeed(13))
	m.Generate()

	art := m.String()
	assert.Contains(t, art, " S ")
	assert.Contains(t, art, " G ")
	// One wall line per row plus the top boundary, each cell row in between.
	assert.Equal(t, m.Rows()*2+1, strings.Count(art, "\n"))
}
