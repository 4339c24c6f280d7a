// Package envconfig provides configuration structs for configuring
// environments and their tasks. Environment configurations in this
// package are JSON serializable.
package envconfig

import (
	"fmt"

	"github.com/samuelfneumann/gomaze"

	env "github.com/samuelfneumann/tabular/environment"
	"github.com/samuelfneumann/tabular/environment/gridworld"
	"github.com/samuelfneumann/tabular/environment/maze"
	ts "github.com/samuelfneumann/tabular/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	GridWorld EnvName = "GridWorld"
	Maze      EnvName = "Maze"
)

// MazeGenerator names the algorithm that carves the walls of a Maze
type MazeGenerator string

// Maze generators available for configuration
const (
	Backtracking MazeGenerator = "Backtracking"
	AldousBroder MazeGenerator = "AldousBroder"
	BinaryTree   MazeGenerator = "BinaryTree"
)

// Config implements a specific configuration of a specific environment
// and its goal task.
//
// If StartX and StartY are empty, episodes start in a non-goal cell
// sampled uniformly at random; otherwise they start at
// (StartX[0], StartY[0]). Generator is only used by Maze, and
// defaults to Backtracking.
type Config struct {
	Environment    EnvName
	Rows, Cols     int
	StartX, StartY []int
	GoalX, GoalY   []int
	TimeStepReward float64
	GoalReward     float64
	EpisodeCutoff  uint
	Discount       float64
	Generator      MazeGenerator `json:",omitempty"`
}

// Default returns the configuration of a 5 x 5 GridWorld starting in
// the bottom left corner with a single goal in the top right corner
func Default() Config {
	return Config{
		Environment:    GridWorld,
		Rows:           5,
		Cols:           5,
		StartX:         []int{0},
		StartY:         []int{0},
		GoalX:          []int{4},
		GoalY:          []int{4},
		TimeStepReward: -1,
		GoalReward:     0,
		EpisodeCutoff:  500,
		Discount:       1.0,
	}
}

// DefaultMaze returns the configuration of a 5 x 5 Maze starting in the
// top left corner with a single goal in the bottom right corner
func DefaultMaze() Config {
	c := Default()
	c.Environment = Maze
	c.Generator = Backtracking
	return c
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create(seed uint64) (env.Environment, ts.TimeStep, error) {
	switch c.Environment {
	case GridWorld:
		return c.createGridWorld(seed)

	case Maze:
		return c.createMaze(seed)
	}

	return nil, ts.TimeStep{}, fmt.Errorf("create: cannot create "+
		"environment %v, no such environment", c.Environment)
}

func (c Config) createGridWorld(seed uint64) (env.Environment, ts.TimeStep,
	error) {
	starter, err := c.starter(seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: %v", err)
	}

	task, err := gridworld.NewGoal(starter, c.GoalX, c.GoalY, c.Rows, c.Cols,
		c.TimeStepReward, c.GoalReward, int(c.EpisodeCutoff))
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: %v", err)
	}

	g, step, err := gridworld.New(c.Rows, c.Cols, task, c.Discount)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: %v", err)
	}
	return g, step, nil
}

func (c Config) createMaze(seed uint64) (env.Environment, ts.TimeStep,
	error) {
	var init gomaze.Initer
	switch c.Generator {
	case Backtracking, "":
		init = gomaze.NewBacktracking(int64(seed))

	case AldousBroder:
		init = gomaze.NewAldousBroder(int64(seed))

	case BinaryTree:
		init = gomaze.NewBinaryTree(int64(seed))

	default:
		return nil, ts.TimeStep{}, fmt.Errorf("createMaze: no such "+
			"generator %v", c.Generator)
	}

	starter, err := c.starter(seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createMaze: %v", err)
	}

	task, err := maze.NewSolve(starter, c.GoalX, c.GoalY, c.Rows, c.Cols,
		c.TimeStepReward, c.GoalReward, int(c.EpisodeCutoff))
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createMaze: %v", err)
	}

	m, step, err := maze.New(task, c.Rows, c.Cols, init, c.Discount)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createMaze: %v", err)
	}
	return m, step, nil
}

// starter returns the Starter of (x, y) start cells described by the
// Config
func (c Config) starter(seed uint64) (env.Starter, error) {
	switch {
	case len(c.StartX) == 0 && len(c.StartY) == 0:
		s, err := env.NewCategoricalStarter([]int{c.Cols, c.Rows}, seed)
		if err != nil {
			return nil, err
		}
		return s, nil

	case len(c.StartX) == 1 && len(c.StartY) == 1:
		return env.NewSingleStarter([]float64{
			float64(c.StartX[0]),
			float64(c.StartY[0]),
		}), nil
	}

	return nil, fmt.Errorf("at most one start position allowed (have "+
		"x=%v, y=%v)", c.StartX, c.StartY)
}
