package sarsa

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tabular/environment"
	"github.com/samuelfneumann/tabular/timestep"
)

// Learner drives a Sarsa agent from environment TimeSteps so that it
// can be run by an experiment. Observations are mapped to integer
// states by an Indexer, and actions are the integers
// (0, 1, ..., N-1) described by the environment's action Spec.
type Learner struct {
	sarsa   *Sarsa[int, int]
	indexer Indexer

	// Most recently observed transition
	state     int
	action    int
	reward    float64
	nextState int
	observed  bool

	eval bool
}

// NewLearner creates a new Learner for env
func NewLearner(env environment.Environment, c Config,
	indexer Indexer) (*Learner, error) {
	numActions, err := env.ActionSpec().NumActions()
	if err != nil {
		return nil, fmt.Errorf("newLearner: %v", err)
	}

	actions := make([]int, numActions)
	for i := range actions {
		actions[i] = i
	}

	sarsa, err := New[int, int](c, actions)
	if err != nil {
		return nil, fmt.Errorf("newLearner: %v", err)
	}

	return &Learner{sarsa: sarsa, indexer: indexer}, nil
}

// Sarsa returns the tabular agent that the Learner updates
func (l *Learner) Sarsa() *Sarsa[int, int] {
	return l.sarsa
}

// ObserveFirst observes and records the first episodic timestep
func (l *Learner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n",
			t.Number)
	}

	state, err := l.indexer.Index(t.Observation)
	if err != nil {
		return fmt.Errorf("observeFirst: %v", err)
	}

	l.nextState = state
	l.observed = false
	return nil
}

// Observe observes and records any timestep other than the first
// timestep
func (l *Learner) Observe(action *mat.VecDense,
	nextStep timestep.TimeStep) error {
	if action.Len() != 1 {
		return fmt.Errorf("observe: value-based methods cannot have "+
			"multi-dimensional actions (action dim = %d)", action.Len())
	}

	nextState, err := l.indexer.Index(nextStep.Observation)
	if err != nil {
		return fmt.Errorf("observe: %v", err)
	}

	l.state = l.nextState
	l.action = int(action.AtVec(0))
	l.reward = nextStep.Reward
	l.nextState = nextState
	l.observed = true
	return nil
}

// Step updates the action values using the last observed transition.
// In evaluation mode the transition is consumed without learning.
func (l *Learner) Step() error {
	if !l.observed {
		return fmt.Errorf("step: no transition observed since last step")
	}
	l.observed = false

	if l.eval {
		return nil
	}
	l.sarsa.Update(l.state, l.action, l.reward, l.nextState)
	return nil
}

// TdError returns the TD error of a transition without learning from
// it
func (l *Learner) TdError(t timestep.Transition) float64 {
	state := l.mustIndex(t.State)
	nextState := l.mustIndex(t.NextState)
	action := int(t.Action.AtVec(0))

	return l.sarsa.TDError(state, action, t.Reward, nextState)
}

// EndEpisode performs cleanup at the end of an episode
func (l *Learner) EndEpisode() {
	l.observed = false
}

// SelectAction returns the greedy action in the state of t
func (l *Learner) SelectAction(t timestep.TimeStep) *mat.VecDense {
	state := l.mustIndex(t.Observation)
	action := l.sarsa.SelectAction(state)

	return mat.NewVecDense(1, []float64{float64(action)})
}

// Eval sets the Learner to evaluation mode, in which Step does not
// update action values
func (l *Learner) Eval() {
	l.eval = true
}

// Train sets the Learner to training mode
func (l *Learner) Train() {
	l.eval = false
}

// IsEval indicates whether the Learner is in evaluation mode
func (l *Learner) IsEval() bool {
	return l.eval
}

func (l *Learner) mustIndex(obs mat.Vector) int {
	state, err := l.indexer.Index(obs)
	if err != nil {
		panic(fmt.Sprintf("learner: %v", err))
	}
	return state
}
