package gridworld

import (
	"bytes"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/tabular/environment"
	ts "github.com/samuelfneumann/tabular/timestep"
)

func newTestGridWorld(t *testing.T, x, y, cutoff int) *GridWorld {
	t.Helper()

	starter := env.NewSingleStarter([]float64{float64(x), float64(y)})
	task, err := NewGoal(starter, []int{2}, []int{2}, 3, 3, -1, 10, cutoff)
	if err != nil {
		t.Fatalf("newGoal: %v", err)
	}

	g, _, err := New(3, 3, task, 0.9)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return g
}

func step(t *testing.T, g *GridWorld, action int) (ts.TimeStep, bool) {
	t.Helper()

	next, last, err := g.Step(mat.NewVecDense(1, []float64{float64(action)}))
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	return next, last
}

func TestStepMoves(t *testing.T) {
	tests := []struct {
		action     int
		wantX      int
		wantY      int
		startX     int
		startY     int
		wantReward float64
	}{
		{Right, 1, 0, 0, 0, -1},
		{Up, 0, 1, 0, 0, -1},
		{Left, 0, 0, 0, 0, -1}, // wall
		{Down, 0, 0, 0, 0, -1}, // wall
		{Left, 0, 1, 1, 1, -1},
		{Down, 1, 0, 1, 1, -1},
		{Right, 2, 2, 1, 2, 10}, // goal
	}

	for _, test := range tests {
		g := newTestGridWorld(t, test.startX, test.startY, 100)
		next, _ := step(t, g, test.action)

		x, y := g.Coordinates()
		if x != test.wantX || y != test.wantY {
			t.Errorf("step %d from (%d, %d): \n\twant(%d, %d)\n\thave(%d, %d)",
				test.action, test.startX, test.startY, test.wantX, test.wantY,
				x, y)
		}
		if next.Reward != test.wantReward {
			t.Errorf("reward: \n\twant(%v)\n\thave(%v)", test.wantReward,
				next.Reward)
		}
		if want := cToInd(x, y, 3); next.Observation.AtVec(want) != 1 ||
			mat.Sum(next.Observation) != 1 {
			t.Errorf("observation should be one-hot at %d: %v", want,
				mat.Formatted(next.Observation.T()))
		}
		if g.State() != cToInd(x, y, 3) {
			t.Errorf("state: \n\twant(%v)\n\thave(%v)", cToInd(x, y, 3),
				g.State())
		}
	}
}

func TestReachGoal(t *testing.T) {
	g := newTestGridWorld(t, 0, 0, 100)

	actions := []int{Right, Right, Up, Up}
	var next ts.TimeStep
	var last bool
	for i, a := range actions {
		next, last = step(t, g, a)
		if i < len(actions)-1 && last {
			t.Fatalf("step %d: episode ended early", i)
		}
	}

	if !last || !next.Last() {
		t.Fatal("step: episode should end at the goal")
	}
	if end := next.EndType(); end != ts.TerminalStateReached {
		t.Errorf("endType: \n\twant(%v)\n\thave(%v)", ts.TerminalStateReached,
			end)
	}
	if next.Number != 4 {
		t.Errorf("number: \n\twant(%v)\n\thave(%v)", 4, next.Number)
	}

	first, err := g.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if !first.First() || first.Number != 0 {
		t.Errorf("reset: should return a first timestep, have %v", first)
	}
	if x, y := g.Coordinates(); x != 0 || y != 0 {
		t.Errorf("reset: \n\twant(0, 0)\n\thave(%d, %d)", x, y)
	}
}

func TestStepLimit(t *testing.T) {
	g := newTestGridWorld(t, 0, 0, 3)

	var next ts.TimeStep
	var last bool
	for i := 0; i < 3; i++ {
		next, last = step(t, g, Left)
	}

	if !last {
		t.Fatal("step: episode should be cut off")
	}
	if end := next.EndType(); end != ts.Timeout {
		t.Errorf("endType: \n\twant(%v)\n\thave(%v)", ts.Timeout, end)
	}
}

func TestStepErrors(t *testing.T) {
	g := newTestGridWorld(t, 0, 0, 100)

	if _, _, err := g.Step(mat.NewVecDense(1, []float64{4})); err == nil {
		t.Error("step: expected an error for an illegal action")
	}
	if _, _, err := g.Step(mat.NewVecDense(2, nil)); err == nil {
		t.Error("step: expected an error for a 2-dimensional action")
	}
}

func TestNewErrors(t *testing.T) {
	starter := env.NewSingleStarter([]float64{5, 0})
	task, err := NewGoal(starter, []int{1}, []int{1}, 3, 3, -1, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := New(3, 3, task, 1); err == nil {
		t.Error("new: expected an error for an out of bounds start")
	}

	if _, err := NewGoal(starter, []int{3}, []int{0}, 3, 3, -1, 0, 10); err == nil {
		t.Error("newGoal: expected an error for an out of bounds goal")
	}
	if _, err := NewGoal(starter, []int{1, 2}, []int{0}, 3, 3, -1, 0, 10); err == nil {
		t.Error("newGoal: expected an error for mismatched coordinates")
	}
}

func TestActionSpec(t *testing.T) {
	g := newTestGridWorld(t, 0, 0, 100)

	n, err := g.ActionSpec().NumActions()
	if err != nil {
		t.Fatal(err)
	}
	if n != NumActions {
		t.Errorf("numActions: \n\twant(%v)\n\thave(%v)", NumActions, n)
	}
	if _, err := g.ObservationSpec().NumActions(); err == nil {
		t.Error("numActions: observation spec does not describe actions")
	}
}

func TestRender(t *testing.T) {
	g := newTestGridWorld(t, 0, 0, 100)

	var buf bytes.Buffer
	value := func(s int) float64 { return float64(s) }
	policy := func(int) int { return Right }
	if err := Render(&buf, g, value, policy, false); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("render: \n\twant(%v lines)\n\thave(%v)", 3, len(lines))
	}
	if !strings.Contains(lines[0], " G  008.00 ") {
		t.Errorf("render: top row should hold the goal: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], " → ") {
		t.Errorf("render: bottom row should start with the policy: %q",
			lines[2])
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("render: colours disabled but escape codes written")
	}
}

// sequenceStarter returns its start states in order, repeating the last
type sequenceStarter struct {
	starts [][2]float64
	calls  int
}

func (s *sequenceStarter) Start() *mat.VecDense {
	i := s.calls
	if i >= len(s.starts) {
		i = len(s.starts) - 1
	}
	s.calls++
	return mat.NewVecDense(2, []float64{s.starts[i][0], s.starts[i][1]})
}

func TestResetSkipsGoalStarts(t *testing.T) {
	starter := &sequenceStarter{starts: [][2]float64{{2, 2}, {0, 1}, {2, 2},
		{1, 0}}}
	task, err := NewGoal(starter, []int{2, 0}, []int{2, 1}, 3, 3, -1, 10, 100)
	if err != nil {
		t.Fatal(err)
	}

	g, first, err := New(3, 3, task, 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if x, y := g.Coordinates(); x != 1 || y != 0 {
		t.Errorf("reset: \n\twant((1, 0))\n\thave((%v, %v))", x, y)
	}
	if !first.First() || g.AtGoal(first.Observation) {
		t.Errorf("reset: first step should be a non-goal first step: %v",
			first)
	}
	if starter.calls != 4 {
		t.Errorf("start calls: \n\twant(%v)\n\thave(%v)", 4, starter.calls)
	}
}

func TestResetOnlyGoalStarts(t *testing.T) {
	starter := env.NewSingleStarter([]float64{2, 2})
	task, err := NewGoal(starter, []int{2}, []int{2}, 3, 3, -1, 10, 100)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := New(3, 3, task, 1); err == nil {
		t.Error("new: expected an error when every start is a goal")
	}
}
