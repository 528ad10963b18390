package maze

import (
	"fmt"
	"strings"
)

// Difficulty selects the preset grid dimensions and braiding amount for a
// maze.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	VeryHard
)

// Preset holds the configuration one difficulty level maps to.
type Preset struct {
	Rows int
	Cols int
	// RemovalPct is the percentage of standing internal walls removed after
	// carving to braid the maze. A higher value leaves more alternate routes,
	// making the maze easier.
	RemovalPct int
}

// Presets maps each difficulty to its fixed configuration. Harder levels grow
// the grid and keep fewer extra passages.
var Presets = map[Difficulty]Preset{
	Easy:     {Rows: 10, Cols: 10, RemovalPct: 15},
	Medium:   {Rows: 20, Cols: 20, RemovalPct: 10},
	Hard:     {Rows: 30, Cols: 30, RemovalPct: 5},
	VeryHard: {Rows: 40, Cols: 40, RemovalPct: 2},
}

// Difficulties lists every level in ascending order of size.
var Difficulties = []Difficulty{Easy, Medium, Hard, VeryHard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case VeryHard:
		return "very_hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a case-insensitive level name to its Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "very_hard", "veryhard", "very-hard":
		return VeryHard, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q", s)
	}
}
