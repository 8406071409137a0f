package packer

import (
	"context"
	"fmt"
)

// Weight is a mass measured in hundredths of a unit. The line grammar allows
// at most two fractional digits, so every weight it admits is exact.
type Weight int64

const weightScale = 100

// WeightFromUnits converts a whole number of units to a Weight.
func WeightFromUnits(units int) Weight {
	return Weight(units) * weightScale
}

func (w Weight) String() string {
	return fmt.Sprintf("%d.%02d", w/weightScale, w%weightScale)
}

// Item is a single candidate thing offered for a package.
type Item struct {
	Index  int
	Weight Weight
	Price  int
}

// Package is one parsed input line: a capacity and its candidates in input order.
type Package struct {
	Capacity   Weight
	Candidates []Item
}

// LineResult is the outcome of packing a single input line.
// Accepted is false when the line did not match the grammar.
type LineResult struct {
	Number   int
	Accepted bool
	Chosen   []Item
}

// String renders the result the way it appears in the output.
func (r LineResult) String() string {
	if !r.Accepted {
		return Sentinel
	}
	return Format(r.Chosen)
}

// Report collects the per-line results of one run in input order.
type Report struct {
	Lines []LineResult
}

// Output joins the rendered lines, each terminated by a newline.
func (r Report) Output() string {
	rendered := make([]string, len(r.Lines))
	for i, line := range r.Lines {
		rendered[i] = line.String()
	}
	return Join(rendered)
}

// Rejected counts lines that failed the grammar.
func (r Report) Rejected() int {
	count := 0
	for _, line := range r.Lines {
		if !line.Accepted {
			count++
		}
	}
	return count
}

// Packer describes the behaviour required to turn input lines into a report.
type Packer interface {
	PackLine(number int, line string) LineResult
	PackLines(ctx context.Context, lines []string) (Report, error)
}
