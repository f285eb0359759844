/*
Package linebreak collects types shared by line-breaking algorithms.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Avery Laird

*/
package linebreak

// https://quod.lib.umich.edu/j/jep/3336451.0013.105?view=text;rgn=main

import (
	"math"

	"github.com/avery-laird/breaker/core/dimen"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ----------------------------------------------------------------------

// Parameters is a collection of configuration parameters for line-breaking.
type Parameters struct {
	Tolerance            float64 // largest adjustment ratio tolerated for a line
	Looseness            int     // bias towards paragraphs with more or fewer lines
	DoubleHyphenDemerits float64 // demerits for two consecutive flagged breaks
	AdjDemerits          float64 // demerits for adjacent lines of clashing fitness
}

// DefaultParameters returns the neutral configuration: a pure
// minimum-demerits fit with no ratio cap and no fitness or hyphenation
// bias.
func DefaultParameters() *Parameters {
	return &Parameters{
		Tolerance: math.Inf(1),
	}
}

// TeXParameters returns line-breaking parameters similar to (but not
// identical with) TeX's plain format.
func TeXParameters() *Parameters {
	return &Parameters{
		Tolerance:            2,
		DoubleHyphenDemerits: 100,
		AdjDemerits:          100,
	}
}

// ----------------------------------------------------------------------

// Fitness classes of a line, derived from its adjustment ratio. Adjacent
// lines whose classes differ by more than one are charged AdjDemerits.
const (
	Tight     = 0 // r < -1/2
	Normal    = 1 // -1/2 <= r <= 1/2
	Loose     = 2 // 1/2 < r <= 1
	VeryLoose = 3 // r > 1
)

// Fitness returns the fitness class for an adjustment ratio.
func Fitness(r float64) int {
	switch {
	case r < -0.5:
		return Tight
	case r <= 0.5:
		return Normal
	case r <= 1.0:
		return Loose
	}
	return VeryLoose
}

// --- Paragraph shapes -------------------------------------------------

// ParShape is a type to return the target line length for a given line
// number. Line numbers start at 1.
type ParShape interface {
	LineLength(j int) dimen.Dimen
}

// Shapes additionally implementing an EasyLine() method report a line
// number from which the line length stays constant; the breaker uses
// this to batch its inner loop. Shapes without it are simply scanned more
// cautiously.

type lineLengths []dimen.Dimen

// Shape builds a ParShape from an explicit schedule of line lengths. A
// line number beyond the schedule reuses the last value. An empty schedule
// yields nil, which no breaker accepts.
func Shape(lengths ...dimen.Dimen) ParShape {
	if len(lengths) == 0 {
		return nil
	}
	ll := make(lineLengths, len(lengths))
	copy(ll, lengths)
	return ll
}

// LineLength is part of interface ParShape.
func (ll lineLengths) LineLength(j int) dimen.Dimen {
	if j < 1 {
		j = 1
	} else if j > len(ll) {
		j = len(ll)
	}
	return ll[j-1]
}

// EasyLine is the number of the last scheduled line, from which the length
// stays constant. Repeated values at the end of the schedule are not
// detected, so the constant run may already start before this line.
func (ll lineLengths) EasyLine() int {
	return len(ll)
}

type rectParShape dimen.Dimen

func (r rectParShape) LineLength(int) dimen.Dimen {
	return dimen.Dimen(r)
}

func (r rectParShape) EasyLine() int {
	return 1
}

// RectangularParShape returns a ParShape for paragraphs of constant line
// length.
func RectangularParShape(linelen dimen.Dimen) ParShape {
	return rectParShape(linelen)
}
