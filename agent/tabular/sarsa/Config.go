package sarsa

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/tabular/agent"
	"github.com/samuelfneumann/tabular/environment"
	"github.com/samuelfneumann/tabular/utils/floatutils"
)

// DefaultBonusScale is the scale β of the exploration bonus β/(1+√n)
const DefaultBonusScale float64 = 0.5

var discountBounds = r1.Interval{Min: 0, Max: 1}

func init() {
	// Register ConfigList type so that it can be typed using
	// agent.TypedConfigList to help with serialization/deserialization.
	agent.Register(agent.TabularBonusSarsa, ConfigList{})
}

// ConfigList implements functionality for storing a number of Config's
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values.
type ConfigList struct {
	LearningRate []float64
	Discount     []float64
	BonusScale   []float64
}

// NewConfigList returns a new ConfigList as an agent.TypedConfigList
// so that it can easily be JSON serialized/deserialized without
// knowing the underlying concrete type.
func NewConfigList(learningRate, discount,
	bonusScale []float64) agent.TypedConfigList {
	config := ConfigList{
		LearningRate: learningRate,
		Discount:     discount,
		BonusScale:   bonusScale,
	}
	return agent.NewTypedConfigList(config)
}

// Config returns an empty Config that is of the type stored by
// ConfigList
func (c ConfigList) Config() agent.Config {
	return Config{}
}

// Type returns the type of agent that can be constructed by Config's
// stored by the list
func (c ConfigList) Type() agent.Type {
	return c.Config().Type()
}

// NumFields returns the number of settable fields for the ConfigList
func (c ConfigList) NumFields() int {
	rValue := reflect.ValueOf(c)
	return rValue.NumField()
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return len(c.LearningRate) * len(c.Discount) * len(c.BonusScale)
}

// Config represents a configuration for the Sarsa agent. A Config is
// fixed for the lifetime of the agent built from it.
type Config struct {
	LearningRate float64 // α in (0, 1]
	Discount     float64 // γ in [0, 1]
	BonusScale   float64 // β ≥ 0, scale of the exploration bonus
}

// NewConfig returns a Config with the default exploration bonus scale
func NewConfig(learningRate, discount float64) Config {
	return Config{
		LearningRate: learningRate,
		Discount:     discount,
		BonusScale:   DefaultBonusScale,
	}
}

// coordinateObserver is implemented by environments whose observations
// are (x, y) cell coordinates on a grid with Cols() columns
type coordinateObserver interface {
	Cols() int
}

// CreateAgent creates a timestep-driven agent from the Config. The
// environment must have discrete actions enumerated from 0, and either
// one-hot observations or (x, y) coordinate observations if it reports
// its number of columns.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	var indexer Indexer = OneHot{}
	if grid, ok := env.(coordinateObserver); ok {
		indexer = Coordinates{Cols: grid.Cols()}
	}

	l, err := NewLearner(env, c, indexer)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*Learner)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !(c.LearningRate > 0 && c.LearningRate <= 1) {
		return fmt.Errorf("learning rate must be in (0, 1] (have %v)",
			c.LearningRate)
	}
	if !floatutils.InInterval(c.Discount, discountBounds) {
		return fmt.Errorf("discount must be in [0, 1] (have %v)", c.Discount)
	}
	if !(c.BonusScale >= 0) {
		return fmt.Errorf("bonus scale cannot be lower than 0 (have %v)",
			c.BonusScale)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.TabularBonusSarsa
}
