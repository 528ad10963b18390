package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/maze-game/config"
	"github.com/beka-birhanu/maze-game/game"
	"github.com/beka-birhanu/maze-game/maze"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if level, err := logrus.ParseLevel(config.Envs.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("unknown log level %q, using info", config.Envs.LogLevel)
	}

	difficulty, err := maze.ParseDifficulty(config.Envs.Difficulty)
	if err != nil {
		log.Errorf("bad DIFFICULTY: %v", err)
		os.Exit(1)
	}

	var opts []maze.Option
	if config.Envs.HasSeed {
		opts = append(opts, maze.WithSeed(config.Envs.Seed))
	}

	m := maze.New(difficulty, opts...)
	m.Generate()

	distances := m.Distances(m.StartPos())
	log.WithFields(logrus.Fields{
		"difficulty": difficulty,
		"rows":       m.Rows(),
		"cols":       m.Cols(),
		"start":      m.StartPos(),
		"goal":       m.GoalPos(),
		"path_len":   distances[m.GoalPos()],
	}).Info("maze generated")

	fmt.Print(m.String())

	// Replay the shortest path through a session to exercise move validation
	// and win detection end to end.
	session := game.NewSession(func(maze.Difficulty) game.Board { return m })
	session.Start(difficulty)

	for _, dir := range solution(m) {
		if err := session.HandleMove(dir); err != nil {
			log.WithFields(logrus.Fields{
				"position":  session.Player().Position(),
				"direction": dir,
			}).Errorf("replay rejected: %v", err)
			os.Exit(1)
		}
	}

	if session.State() != game.StateWon {
		log.Errorf("replay ended at %v without reaching the goal", session.Player().Position())
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"session": session.ID(),
		"moves":   session.Moves(),
		"elapsed": game.FormatElapsed(session.Elapsed()),
	}).Info("maze solved")
}

// solution returns the directions of a shortest start-to-goal walk. It walks
// from the start, always stepping onto a neighbor one hop closer to the goal
// per the goal-rooted distance map.
func solution(m *maze.Maze) []maze.Direction {
	fromGoal := m.Distances(m.GoalPos())
	dirs := []maze.Direction{maze.Up, maze.Down, maze.Left, maze.Right}

	var steps []maze.Direction
	current := m.StartPos()
	for current != m.GoalPos() {
		advanced := false
		for _, dir := range dirs {
			if !m.IsValidMove(current, dir) {
				continue
			}
			rowDelta, colDelta, _ := dir.Delta()
			next := maze.Position{Row: current.Row + rowDelta, Col: current.Col + colDelta}
			if fromGoal[next] == fromGoal[current]-1 {
				steps = append(steps, dir)
				current = next
				advanced = true
				break
			}
		}
		if !advanced {
			// Unreachable for a generated maze; bail out instead of looping.
			return steps
		}
	}
	return steps
}
