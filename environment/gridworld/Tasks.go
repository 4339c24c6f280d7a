package gridworld

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/tabular/environment"
	ts "github.com/samuelfneumann/tabular/timestep"
)

// Goal represents the task of reaching goal states in a GridWorld.
// Each step yields timeStepReward, except steps that enter a goal cell,
// which yield goalReward and end the episode.
type Goal struct {
	env.Starter
	stepLimit *env.StepLimit

	goals          [][2]int // (x, y) coordinates of goal cells
	r, c           int      // total rows and columns in environment
	timeStepReward float64
	goalReward     float64
}

// NewGoal creates and returns a new goal task with goals at positions
// (x[i], y[i]), given that the gridworld has r rows and c columns.
// Episodes are cut off after cutoff steps.
func NewGoal(s env.Starter, x, y []int, r, c int, timeStepReward,
	goalReward float64, cutoff int) (*Goal, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("newGoal: x length (%d) != y length (%d)",
			len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("newGoal: at least one goal required")
	}

	goals := make([][2]int, len(x))
	for i := range x {
		// Ensure that the goal is within the proper bounds
		if x[i] < 0 || x[i] >= c {
			return nil, fmt.Errorf("newGoal: x[%d] = %d out of bounds "+
				"(cols = %d)", i, x[i], c)
		} else if y[i] < 0 || y[i] >= r {
			return nil, fmt.Errorf("newGoal: y[%d] = %d out of bounds "+
				"(rows = %d)", i, y[i], r)
		}
		goals[i] = [2]int{x[i], y[i]}
	}

	return &Goal{
		Starter:        s,
		stepLimit:      env.NewStepLimit(cutoff),
		goals:          goals,
		r:              r,
		c:              c,
		timeStepReward: timeStepReward,
		goalReward:     goalReward,
	}, nil
}

// GetReward returns the reward for transitioning into nextState
func (g *Goal) GetReward(_, _, nextState mat.Vector) float64 {
	if g.AtGoal(nextState) {
		return g.goalReward
	}
	return g.timeStepReward
}

// AtGoal represents if the goal state has been reached or not
func (g *Goal) AtGoal(state mat.Matrix) bool {
	obs, ok := state.(mat.Vector)
	if !ok || obs.Len() != g.r*g.c {
		return false
	}
	x, y := vToC(obs, g.c)

	return g.isGoal(x, y)
}

// End determines whether or not the current episode should be ended.
// Reaching a goal takes priority over the step limit.
func (g *Goal) End(t *ts.TimeStep) bool {
	if g.AtGoal(t.Observation) {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
		return true
	}
	return g.stepLimit.End(t)
}

func (g *Goal) isGoal(x, y int) bool {
	for _, goal := range g.goals {
		if goal[0] == x && goal[1] == y {
			return true
		}
	}
	return false
}

// String returns the Goal as a string
func (g *Goal) String() string {
	coords := make([]string, len(g.goals))
	for i, goal := range g.goals {
		coords[i] = fmt.Sprintf("(%d, %d)", goal[0], goal[1])
	}
	return strings.Join(coords, " ")
}
