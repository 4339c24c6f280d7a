package maze

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/tabular/environment"
	ts "github.com/samuelfneumann/tabular/timestep"
)

// Solve is the task of reaching a goal cell of a Maze. Each step yields
// timeStepReward, except steps that enter a goal cell, which yield
// goalReward and end the episode.
type Solve struct {
	env.Starter
	stepLimit *env.StepLimit

	goals          [][2]int // (x, y) coordinates of goal cells
	timeStepReward float64
	goalReward     float64
}

// NewSolve returns a new Solve task with goals at (x[i], y[i]) in a
// maze of r rows and c columns. Episodes are cut off after cutoff steps.
func NewSolve(s env.Starter, x, y []int, r, c int, timeStepReward,
	goalReward float64, cutoff int) (*Solve, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("newSolve: x length (%d) != y length (%d)",
			len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("newSolve: at least one goal required")
	}

	goals := make([][2]int, len(x))
	for i := range x {
		if x[i] < 0 || x[i] >= c || y[i] < 0 || y[i] >= r {
			return nil, fmt.Errorf("newSolve: goal (%d, %d) out of bounds "+
				"(%d, %d)", x[i], y[i], c, r)
		}
		goals[i] = [2]int{x[i], y[i]}
	}

	return &Solve{
		Starter:        s,
		stepLimit:      env.NewStepLimit(cutoff),
		goals:          goals,
		timeStepReward: timeStepReward,
		goalReward:     goalReward,
	}, nil
}

// GetReward returns the reward for transitioning into nextState
func (s *Solve) GetReward(_, _, nextState mat.Vector) float64 {
	if s.AtGoal(nextState) {
		return s.goalReward
	}
	return s.timeStepReward
}

// AtGoal returns whether the (x, y) coordinates state are a goal cell
func (s *Solve) AtGoal(state mat.Matrix) bool {
	rows, cols := state.Dims()
	if rows != 2 || cols != 1 {
		return false
	}

	x, y := int(state.At(0, 0)), int(state.At(1, 0))
	for _, goal := range s.goals {
		if goal[0] == x && goal[1] == y {
			return true
		}
	}
	return false
}

// End determines whether or not the current episode should be ended.
// Reaching a goal takes priority over the step limit.
func (s *Solve) End(t *ts.TimeStep) bool {
	if s.AtGoal(t.Observation) {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
		return true
	}
	return s.stepLimit.End(t)
}
