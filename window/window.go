// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window implements sliding-window transforms over numeric
// sequences.
//
// Slide maps a sequence to a sequence of the same length by evaluating
// an aggregate function over a fixed-size window at every index. The
// window may trail the index, lead it, or straddle it, and boundary
// positions where the full window runs out of the sequence either
// become missing values or are evaluated over the samples that remain.
//
// Missing values are represented as NaN throughout. Slide never
// filters them out of a window; an aggregate that should tolerate
// missing samples can be wrapped with SkipNaN.
package window

import "math"

// An AggFunc reduces a window of samples to a single value. The slice
// it receives is a view into the input sequence and must not be
// modified. Its length is between 1 and the window period. An AggFunc
// must be deterministic for identical inputs.
type AggFunc func(xs []float64) float64

// Alignment selects which window of input indexes produces output
// index i.
type Alignment int

const (
	// Center windows straddle i, with (period-1)/2 samples before
	// it and the rest after. When period is even, the extra sample
	// falls after i.
	Center Alignment = iota

	// Left windows start at i.
	Left

	// Right windows end at i. This is the usual trailing moving
	// statistic.
	Right
)

func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "?"
}

// Slide evaluates agg over a period-sample window at every index of
// xs and returns the results. The result always has the same length
// as xs.
//
// If partial is false, indexes whose window extends past either end of
// xs produce NaN. If partial is true, such windows are clipped to the
// bounds of xs and agg sees only the samples that exist; no values are
// fabricated. A period larger than len(xs) is not an error: every
// window is then incomplete and the partial policy decides the result.
//
// Slide panics if period < 1, agg is nil, or align is not one of the
// Alignment constants.
func Slide(xs []float64, period int, agg AggFunc, align Alignment, partial bool) []float64 {
	if period < 1 {
		panic("window: period must be at least 1")
	}
	if agg == nil {
		panic("window: nil aggregate")
	}
	var before int
	switch align {
	case Center:
		before = (period - 1) / 2
	case Left:
		before = 0
	case Right:
		before = period - 1
	default:
		panic("window: unknown alignment")
	}

	out := make([]float64, len(xs))
	for i := range xs {
		lo, hi := i-before, i-before+period
		if lo < 0 || hi > len(xs) {
			if !partial {
				out[i] = math.NaN()
				continue
			}
			if lo < 0 {
				lo = 0
			}
			if hi > len(xs) {
				hi = len(xs)
			}
		}
		out[i] = agg(xs[lo:hi])
	}
	return out
}
