package tracker

import (
	"path/filepath"
	"testing"

	ts "github.com/samuelfneumann/tabular/timestep"
)

// episode returns the timesteps of an episode with the given rewards
func episode(rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 1, nil, 0)}
	for i, r := range rewards {
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		steps = append(steps, ts.New(stepType, r, 1, nil, i+1))
	}
	return steps
}

func TestReturn(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")
	r := NewReturn(filename)

	for _, step := range episode(-1, -1, 0) {
		r.Track(step)
	}
	for _, step := range episode(-1, 5) {
		r.Track(step)
	}
	// Unfinished episodes are not recorded
	for _, step := range episode(-1, -1, -1)[:2] {
		r.Track(step)
	}

	want := []float64{-2, 4}
	data := r.Data()
	if len(data) != len(want) {
		t.Fatalf("data: \n\twant(%v)\n\thave(%v)", want, data)
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d]: \n\twant(%v)\n\thave(%v)", i, want[i], data[i])
		}
	}

	if err := r.Save(); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadData(filename)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != len(want) || loaded[0] != want[0] || loaded[1] != want[1] {
		t.Errorf("loadData: \n\twant(%v)\n\thave(%v)", want, loaded)
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("track: expected a panic on non-sequential timesteps")
		}
	}()

	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, 1, nil, 0))
	r.Track(ts.New(ts.Mid, 0, 1, nil, 2))
}

func TestEpisodeLength(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "lengths.bin")
	e := NewEpisodeLength(filename)

	for _, step := range episode(-1, -1, 0) {
		e.Track(step)
	}
	for _, step := range episode(0) {
		e.Track(step)
	}

	if err := e.Save(); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadLengths(filename)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 || loaded[0] != 3 || loaded[1] != 1 {
		t.Errorf("loadLengths: \n\twant(%v)\n\thave(%v)", []int{3, 1}, loaded)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := LoadData(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("loadData: expected an error for a missing file")
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if s.Mean != 2.5 || s.Min != 1 || s.Max != 4 || s.Episodes != 4 {
		t.Errorf("summarize: have %+v", s)
	}
	if s.Std <= 0 {
		t.Errorf("summarize: std should be positive, have %v", s.Std)
	}

	if _, err := Summarize(nil); err == nil {
		t.Error("summarize: expected an error for empty data")
	}
}
