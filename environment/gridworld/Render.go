package gridworld

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/mat"
)

var arrows = [NumActions]string{
	Left:  "←",
	Right: "→",
	Up:    "↑",
	Down:  "↓",
}

// Render writes the GridWorld to w, one grid row per line with the top
// row (largest y) first. Each cell shows the action chosen by policy
// and the value estimated by value for the cell's state index. Goal
// cells are marked with G and the agent's cell is highlighted. If colors
// is false, no ANSI escape codes are written.
func Render(w io.Writer, g *GridWorld, value func(state int) float64,
	policy func(state int) int, colors bool) error {
	au := aurora.NewAurora(colors)
	r, c := g.Dims()

	for y := r - 1; y >= 0; y-- {
		for x := 0; x < c; x++ {
			state := cToInd(x, y, c)
			cell := fmt.Sprintf(" %s %s ", g.arrow(state, policy),
				formatValue(value(state)))

			var styled aurora.Value
			switch {
			case g.AtGoal(g.oneHot(state)):
				styled = au.Green(fmt.Sprintf(" G %s ", formatValue(value(state))))
			case state == g.position:
				styled = au.Yellow(cell)
			default:
				styled = au.Blue(cell)
			}

			if _, err := fmt.Fprintf(w, "%v%v", styled, au.White("|")); err != nil {
				return fmt.Errorf("render: %v", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("render: %v", err)
		}
	}
	return nil
}

func (g *GridWorld) arrow(state int, policy func(int) int) string {
	a := policy(state)
	if a < 0 || a >= NumActions {
		return "?"
	}
	return arrows[a]
}

func (g *GridWorld) oneHot(state int) *mat.VecDense {
	obs := mat.NewVecDense(g.r*g.c, nil)
	obs.SetVec(state, 1.0)
	return obs
}

// formatValue formats a value into a fixed-width column
func formatValue(x float64) string {
	if x < 0 {
		return "-" + fmt.Sprintf("%06.2f", -x)
	}
	return " " + fmt.Sprintf("%06.2f", x)
}
