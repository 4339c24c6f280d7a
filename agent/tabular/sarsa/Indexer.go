package sarsa

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tabular/utils/matutils"
)

// Indexer maps environment observations to discrete state indices
type Indexer interface {
	Index(obs mat.Vector) (int, error)
}

// OneHot indexes one-hot observations by the position of their largest
// element
type OneHot struct{}

// Index returns the index of the largest element of obs. If several
// elements share the largest value, the first is used.
func (OneHot) Index(obs mat.Vector) (int, error) {
	if obs == nil || obs.Len() == 0 {
		return 0, fmt.Errorf("index: empty observation")
	}
	return matutils.MaxVec(obs), nil
}

// Coordinates indexes (x, y) observations on a grid with Cols columns
// as y*Cols + x
type Coordinates struct {
	Cols int
}

// Index returns the state index of the (x, y) observation obs
func (c Coordinates) Index(obs mat.Vector) (int, error) {
	if obs == nil || obs.Len() != 2 {
		return 0, fmt.Errorf("index: observation %v must be (x, y) "+
			"coordinates", format(obs))
	}

	x, y := obs.AtVec(0), obs.AtVec(1)
	if x != math.Trunc(x) || y != math.Trunc(y) {
		return 0, fmt.Errorf("index: coordinates (%v, %v) are not integral",
			x, y)
	}
	if x < 0 || int(x) >= c.Cols || y < 0 {
		return 0, fmt.Errorf("index: coordinates (%v, %v) out of bounds", x, y)
	}

	return int(y)*c.Cols + int(x), nil
}

func format(obs mat.Vector) string {
	if obs == nil {
		return "<nil>"
	}
	return matutils.Format(obs)
}
