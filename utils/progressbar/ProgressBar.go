// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/tabular/utils/floatutils"
)

var unit = r1.Interval{Min: 0, Max: 1}

// ProgressBar implements progress bar functionality that must be
// manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed.
//
// ProgressBar does not use concurrency.
type ProgressBar struct {
	out             io.Writer
	width           float64
	maxProgress     float64
	currentProgress float64
	bar             strings.Builder
	startTime       time.Time
}

// New returns a new ProgressBar that is width characters wide, reaches
// 100% after max calls to Increment, and prints to out
func New(out io.Writer, width, max int) *ProgressBar {
	return &ProgressBar{
		out:         out,
		width:       float64(width),
		maxProgress: float64(max),
		startTime:   time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Fraction returns the fraction of progress made, in [0, 1]
func (p *ProgressBar) Fraction() float64 {
	if p.maxProgress <= 0 {
		return 1
	}
	return floatutils.ClipInterval(p.currentProgress/p.maxProgress, unit)
}

// Display prints the progress bar over the last line printed
func (p *ProgressBar) Display() error {
	fraction := p.Fraction()

	p.bar.Reset()
	p.bar.WriteString("|")

	currentProg := fraction * p.width
	for i := 0.0; i < currentProg; i++ {
		p.bar.WriteString("█")
	}
	for i := currentProg; i < p.width; i++ {
		p.bar.WriteString(" ")
	}
	p.bar.WriteString(fmt.Sprintf("| [%.2f%v | elapsed: %v]",
		fraction*100, "%", time.Since(p.startTime).Truncate(time.Second)))

	_, err := fmt.Fprintf(p.out, "\n\033[1A\033[K%v", p.bar.String())
	return err
}

// Close finishes the progress bar by moving to the next line
func (p *ProgressBar) Close() error {
	_, err := fmt.Fprintln(p.out)
	return err
}
