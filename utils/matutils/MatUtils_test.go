package matutils

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMaxVec(t *testing.T) {
	tests := []struct {
		values []float64
		want   int
	}{
		{[]float64{1}, 0},
		{[]float64{0, 0, 1, 0}, 2},
		{[]float64{3, 1, 3}, 0},
		{[]float64{-5, -2, -9}, 1},
	}

	for _, test := range tests {
		v := mat.NewVecDense(len(test.values), test.values)
		if have := MaxVec(v); have != test.want {
			t.Errorf("maxVec(%v): \n\twant(%v)\n\thave(%v)", test.values,
				test.want, have)
		}
	}
}

func TestFormat(t *testing.T) {
	v := mat.NewVecDense(3, []float64{1, 2, 3})
	have := Format(v)
	if strings.Contains(have, "\n") {
		t.Errorf("format: %q should be a single line", have)
	}
	fields := strings.Fields(strings.Trim(have, "[]"))
	if strings.Join(fields, ",") != "1,2,3" {
		t.Errorf("format: \n\twant(%v)\n\thave(%v)", "[1 2 3]", have)
	}
}
