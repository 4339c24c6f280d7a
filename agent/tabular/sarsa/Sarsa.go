// Package sarsa implements a tabular agent that learns action values
// with a bootstrapped temporal-difference update and explores through a
// visit-count exploration bonus added to each reward.
//
// Although the algorithm is named after SARSA, its update target uses
// the greedy value of the next state,
//
//	Q(s, a) ← Q(s, a) + α[r + β/(1+√n(s, a)) + γ max_a' Q(s', a') − Q(s, a)]
//
// and not the value of the action actually taken in the next state. The
// target is therefore off-policy, as in Q-Learning. Action selection is
// purely greedy: all exploration comes from the bonus term, which is
// largest for pairs that have seldom been updated.
//
// A Sarsa is not safe for concurrent use.
package sarsa

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/tabular/agent/tabular/table"
)

// Sarsa is a tabular agent over states of type S and actions of type A.
// Both tables it owns grow as pairs are encountered and are never
// pruned.
type Sarsa[S, A comparable] struct {
	qValues *table.Table[S, A, float64]
	counts  *table.Table[S, A, int]
	actions []A

	learningRate float64
	discount     float64
	bonusScale   float64
}

// New returns a new Sarsa agent which selects actions from the legal
// action set actions. The order of actions determines how ties between
// equally valued actions are broken: the earliest action wins.
func New[S, A comparable](c Config, actions []A) (*Sarsa[S, A], error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("new: legal action set cannot be empty")
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	legal := make([]A, len(actions))
	copy(legal, actions)

	return &Sarsa[S, A]{
		qValues:      table.New[S, A](0.0),
		counts:       table.New[S, A](0),
		actions:      legal,
		learningRate: c.LearningRate,
		discount:     c.Discount,
		bonusScale:   c.BonusScale,
	}, nil
}

// QValue returns the estimated value of taking action a in state s.
// Pairs that have never been set have value 0.
func (q *Sarsa[S, A]) QValue(s S, a A) float64 {
	return q.qValues.At(s, a)
}

// SetQValue sets the estimated value of taking action a in state s
func (q *Sarsa[S, A]) SetQValue(s S, a A, value float64) {
	q.qValues.Set(s, a, value)
}

// IncrementCount records one more visit to (s, a)
func (q *Sarsa[S, A]) IncrementCount(s S, a A) {
	q.counts.Add(s, a, 1)
}

// Count returns the number of times (s, a) has been updated
func (q *Sarsa[S, A]) Count(s S, a A) int {
	return q.counts.At(s, a)
}

// ExplorationBonus returns the intrinsic reward for (s, a), which is
// β/(1+√n) for visit count n
func (q *Sarsa[S, A]) ExplorationBonus(s S, a A) float64 {
	return bonus(q.bonusScale, q.Count(s, a))
}

func bonus(scale float64, count int) float64 {
	return scale / (1.0 + math.Sqrt(float64(count)))
}

// StateValue returns max_a Q(s, a) over the legal action set
func (q *Sarsa[S, A]) StateValue(s S) float64 {
	value, _ := q.greedy(s)
	return value
}

// BestAction returns the legal action with the highest value in state
// s. Ties go to the action that comes first in the legal action set.
func (q *Sarsa[S, A]) BestAction(s S) A {
	_, action := q.greedy(s)
	return action
}

// greedy scans the legal actions in order and keeps the first maximal
// one
func (q *Sarsa[S, A]) greedy(s S) (float64, A) {
	best := q.actions[0]
	value := q.QValue(s, best)

	for _, a := range q.actions[1:] {
		if v := q.QValue(s, a); v > value {
			value, best = v, a
		}
	}
	return value, best
}

// SelectAction returns the action to take in state s. Selection is
// greedy with respect to the current action values.
func (q *Sarsa[S, A]) SelectAction(s S) A {
	return q.BestAction(s)
}

// Update performs one learning step on the transition (s, a, r, s').
// The visit count of (s, a) is incremented first, so the bonus added to
// the reward reflects the visit being recorded.
func (q *Sarsa[S, A]) Update(s S, a A, reward float64, next S) {
	q.IncrementCount(s, a)
	shaped := reward + q.ExplorationBonus(s, a)

	target := shaped + q.discount*q.StateValue(next)
	tdError := target - q.QValue(s, a)

	q.SetQValue(s, a, q.QValue(s, a)+q.learningRate*tdError)
}

// TDError returns the TD error that Update(s, a, reward, next) would
// apply if it were called now. TDError does not modify the agent.
func (q *Sarsa[S, A]) TDError(s S, a A, reward float64, next S) float64 {
	shaped := reward + bonus(q.bonusScale, q.Count(s, a)+1)
	target := shaped + q.discount*q.StateValue(next)

	return target - q.QValue(s, a)
}

// Actions returns a copy of the legal action set
func (q *Sarsa[S, A]) Actions() []A {
	actions := make([]A, len(q.actions))
	copy(actions, q.actions)
	return actions
}

// Config returns the configuration the agent was built with
func (q *Sarsa[S, A]) Config() Config {
	return Config{
		LearningRate: q.learningRate,
		Discount:     q.discount,
		BonusScale:   q.bonusScale,
	}
}

// Visited returns the number of (state, action) pairs that have a
// stored action value
func (q *Sarsa[S, A]) Visited() int {
	return q.qValues.Len()
}
