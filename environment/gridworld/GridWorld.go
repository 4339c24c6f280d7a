// Package gridworld implements 2D gridworld environments with one-hot
// observations, suitable for tabular agents
package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/tabular/environment"
	ts "github.com/samuelfneumann/tabular/timestep"
)

// Actions in the GridWorld
const (
	Left int = iota
	Right
	Up
	Down
)

// NumActions is the number of actions available in a GridWorld
const NumActions int = 4

// maxStartAttempts bounds how many start states Reset samples while
// looking for one that is not a goal
const maxStartAttempts = 1000

// GridWorld represents a gridworld environment
//
// A gridworld is represented as a flattened matrix, but in this
// implementation only the matrix dimensions and current agent position
// are tracked. Observations are one-hot vectors of length rows*cols,
// where index y*cols+x is set for the agent at coordinates (x, y).
// Moving off the edge of the grid leaves the agent in place.
type GridWorld struct {
	env.Task
	r, c        int
	position    int
	discount    float64
	currentStep ts.TimeStep
}

// New creates a new gridworld with r rows and c columns, task t,
// and discount factor d. The task's Starter must return (x, y)
// coordinates. New also returns the first timestep of the environment.
func New(r, c int, t env.Task, d float64) (*GridWorld, ts.TimeStep, error) {
	if r < 1 || c < 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: gridworld must have at "+
			"least one row and column (have (%d, %d))", r, c)
	}

	g := &GridWorld{Task: t, r: r, c: c, discount: d}
	step, err := g.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %v", err)
	}

	return g, step, nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// Reset resets the environment to a starting state sampled from the
// Task's Starter. Start states in goal cells are resampled, so that
// episodes never begin in a terminal state.
func (g *GridWorld) Reset() (ts.TimeStep, error) {
	for i := 0; i < maxStartAttempts; i++ {
		start := g.Start()
		if start.Len() != 2 {
			return ts.TimeStep{}, fmt.Errorf("reset: start state must be "+
				"(x, y) coordinates (have length %d)", start.Len())
		}

		x, y := int(start.AtVec(0)), int(start.AtVec(1))
		if !g.inBounds(x, y) {
			return ts.TimeStep{}, fmt.Errorf("reset: start state (%d, %d) "+
				"out of bounds (%d, %d)", x, y, g.c, g.r)
		}

		position := cToInd(x, y, g.c)
		if g.AtGoal(g.oneHot(position)) {
			continue
		}
		g.position = position

		startStep := ts.New(ts.First, 0, g.discount, g.observation(), 0)
		g.currentStep = startStep
		return startStep, nil
	}

	return ts.TimeStep{}, fmt.Errorf("reset: no start state outside the "+
		"goal cells after %d attempts", maxStartAttempts)
}

// Step takes one environmental step given some action
func (g *GridWorld) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action.Len() != 1 {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions must be "+
			"1-dimensional (have %d)", action.Len())
	}

	direction := int(action.AtVec(0))
	if direction < 0 || direction >= NumActions {
		return ts.TimeStep{}, false, fmt.Errorf("step: illegal action %d",
			direction)
	}

	x, y := g.Coordinates()
	nextX, nextY := move(x, y, direction, g.r, g.c)
	g.position = cToInd(nextX, nextY, g.c)
	nextObs := g.observation()

	// Get information to pass back
	reward := g.GetReward(g.currentStep.Observation, action, nextObs)
	step := ts.New(ts.Mid, reward, g.discount, nextObs,
		g.currentStep.Number+1)

	// Check if this transition ends the episode
	last := g.End(&step)
	g.currentStep = step

	return step, last, nil
}

// CurrentTimeStep returns the last TimeStep generated by the
// environment
func (g *GridWorld) CurrentTimeStep() ts.TimeStep {
	return g.currentStep
}

// Coordinates returns the (x, y) coordinates of the agent
func (g *GridWorld) Coordinates() (int, int) {
	return indToC(g.position, g.c)
}

// State returns the index of the agent's current cell, which is also
// the index of the non-zero element of its observation
func (g *GridWorld) State() int {
	return g.position
}

// ActionSpec returns the action specification of the environment
func (g *GridWorld) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(NumActions - 1)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (g *GridWorld) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(g.r*g.c, nil)
	lowerBound := mat.NewVecDense(g.r*g.c, nil)
	upper := make([]float64, g.r*g.c)
	for i := range upper {
		upper[i] = 1.0
	}
	upperBound := mat.NewVecDense(g.r*g.c, upper)

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (g *GridWorld) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{g.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

func (g *GridWorld) String() string {
	x, y := g.Coordinates()
	str := "GridWorld | At: (%d, %d)  |   Goal: %v  |  Bounds: (%d, %d)"

	return fmt.Sprintf(str, x, y, g.Task, g.c, g.r)
}

func (g *GridWorld) observation() *mat.VecDense {
	return g.oneHot(g.position)
}

func (g *GridWorld) inBounds(x, y int) bool {
	return x >= 0 && x < g.c && y >= 0 && y < g.r
}

// move returns the coordinates reached by taking direction from (x, y)
func move(x, y, direction, r, c int) (int, int) {
	switch direction {
	case Left:
		if x-1 >= 0 {
			x--
		}

	case Right:
		if x+1 < c {
			x++
		}

	case Up:
		if y+1 < r {
			y++
		}

	case Down:
		if y-1 >= 0 {
			y--
		}
	}
	return x, y
}

func cToInd(x, y, c int) int {
	return y*c + x
}

func indToC(ind, c int) (int, int) {
	y := ind / c
	x := ind - (y * c)
	return x, y
}

// vToC converts a one-hot vector into (x, y) coordinates, returning
// (-1, -1) if no element is set
func vToC(v mat.Vector, c int) (int, int) {
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) != 0.0 {
			return indToC(i, c)
		}
	}
	return -1, -1
}
