// Package maze implements maze environments using GoMaze
package maze

import (
	"fmt"

	"github.com/samuelfneumann/gomaze"
	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/tabular/environment"
	ts "github.com/samuelfneumann/tabular/timestep"
)

// Actions in the Maze, as numbered by GoMaze. Rows are counted from
// the top of the maze, so North decreases y.
const (
	North int = iota
	South
	West
	East
)

// maxStartAttempts bounds how many start states Reset samples while
// looking for one that is not a goal
const maxStartAttempts = 1000

// Maze is a perfect maze generated by a gomaze.Initer. Observations
// are the (x, y) coordinates of the agent's cell. Moving into a wall
// leaves the agent in place.
type Maze struct {
	env.Task
	maze *gomaze.Maze

	rows, cols  int
	discount    float64
	currentStep ts.TimeStep
}

// New creates a new maze with r rows and c columns whose walls are
// carved by init. The task's Starter must return (x, y) coordinates.
// New also returns the first timestep of the environment.
func New(t *Solve, r, c int, init gomaze.Initer,
	discount float64) (*Maze, ts.TimeStep, error) {
	if r < 1 || c < 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: maze must have at "+
			"least one row and column (have (%d, %d))", r, c)
	}

	// GoMaze looks the goal cell up by (x, y). The goal only matters
	// for drawing the maze; episodes end through the task.
	goal := t.goals[0]
	maze, err := gomaze.NewMaze(r, c, goal[0], goal[1], -1, -1, init, false)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not create maze: %v",
			err)
	}

	m := &Maze{Task: t, maze: maze, rows: r, cols: c, discount: discount}
	step, err := m.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %v", err)
	}

	return m, step, nil
}

// Reset resets the environment to a starting state sampled from the
// Task's Starter. Start states in goal cells are resampled.
func (m *Maze) Reset() (ts.TimeStep, error) {
	for i := 0; i < maxStartAttempts; i++ {
		start := m.Start()
		if start.Len() != 2 {
			return ts.TimeStep{}, fmt.Errorf("reset: start state must be "+
				"(x, y) coordinates (have length %d)", start.Len())
		}

		x, y := int(start.AtVec(0)), int(start.AtVec(1))
		if x < 0 || x >= m.cols || y < 0 || y >= m.rows {
			return ts.TimeStep{}, fmt.Errorf("reset: start state (%d, %d) "+
				"out of bounds (%d, %d)", x, y, m.cols, m.rows)
		}
		if m.AtGoal(start) {
			continue
		}

		m.maze.Reset()
		if err := m.maze.SetCell(x, y); err != nil {
			return ts.TimeStep{}, fmt.Errorf("reset: %v", err)
		}

		step := ts.New(ts.First, 0, m.discount, m.observation(), 0)
		m.currentStep = step
		return step, nil
	}

	return ts.TimeStep{}, fmt.Errorf("reset: no start state outside the "+
		"goal cells after %d attempts", maxStartAttempts)
}

// Step takes one environmental step given some action
func (m *Maze) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action.Len() != 1 {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions must be "+
			"1-dimensional (have %d)", action.Len())
	}

	a := int(action.AtVec(0))
	if a < 0 || a >= gomaze.Actions {
		return ts.TimeStep{}, false, fmt.Errorf("step: illegal action %d", a)
	}

	// GoMaze's own reward and termination are replaced by the task's
	if _, _, _, err := m.maze.Step(a); err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %v", err)
	}
	nextObs := m.observation()

	reward := m.GetReward(m.currentStep.Observation, action, nextObs)
	step := ts.New(ts.Mid, reward, m.discount, nextObs,
		m.currentStep.Number+1)

	last := m.End(&step)
	m.currentStep = step

	return step, last, nil
}

// CurrentTimeStep returns the last TimeStep generated by the
// environment
func (m *Maze) CurrentTimeStep() ts.TimeStep {
	return m.currentStep
}

// Coordinates returns the (x, y) coordinates of the agent
func (m *Maze) Coordinates() (int, int) {
	obs := m.maze.Obs()
	return int(obs[0]), int(obs[1])
}

// Cols returns the number of columns in the maze. Observations (x, y)
// index cell y*Cols() + x.
func (m *Maze) Cols() int {
	return m.cols
}

// Rows returns the number of rows in the maze
func (m *Maze) Rows() int {
	return m.rows
}

// ActionSpec returns the action specification of the environment
func (m *Maze) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(gomaze.Actions - 1)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (m *Maze) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(2, nil)
	lowerBound := mat.NewVecDense(2, nil)
	upperBound := mat.NewVecDense(2, []float64{
		float64(m.cols - 1),
		float64(m.rows - 1),
	})

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (m *Maze) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{m.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

// String draws the maze's walls, the agent and the goal
func (m *Maze) String() string {
	return m.maze.String()
}

func (m *Maze) observation() *mat.VecDense {
	obs := m.maze.Obs()
	return mat.NewVecDense(len(obs), obs)
}
