package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir      Direction
		rowDelta int
		colDelta int
	}{
		{Up, -1, 0},
		{Down, 1, 0},
		{Left, 0, -1},
		{Right, 0, 1},
	}

	for _, tc := range cases {
		t.Run(string(tc.dir), func(t *testing.T) {
			rowDelta, colDelta, ok := tc.dir.Delta()
			assert.True(t, ok)
			assert.Equal(t, tc.rowDelta, rowDelta)
			assert.Equal(t, tc.colDelta, colDelta)
		})
	}

	t.Run("unknown token", func(t *testing.T) {
		_, _, ok := Direction("diagonal").Delta()
		assert.False(t, ok)
	})
}

func TestCellDefaults(t *testing.T) {
	m := New(Easy)
	cell := m.CellAt(0, 0)

	assert.True(t, cell.TopWall)
	assert.True(t, cell.RightWall)
	assert.True(t, cell.BottomWall)
	assert.True(t, cell.LeftWall)
	assert.False(t, cell.Visited)
	assert.True(t, cell.HasAllWalls())
}

func TestCellWallModification(t *testing.T) {
	m := New(Easy)
	cell := m.CellAt(0, 0)
	cell.TopWall = false
	cell.RightWall = false

	assert.False(t, cell.TopWall)
	assert.False(t, cell.RightWall)
	assert.True(t, cell.BottomWall)
	assert.True(t, cell.LeftWall)
	assert.False(t, cell.HasAllWalls())
}
