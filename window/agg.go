// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"math"
	"reflect"
	"runtime"
	"sort"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// Mean returns the arithmetic mean of xs. A NaN sample makes the
// result NaN.
func Mean(xs []float64) float64 {
	return stats.Sample{Xs: xs}.Mean()
}

// Sum returns the sum of xs. A NaN sample makes the result NaN.
func Sum(xs []float64) float64 {
	return vec.Sum(xs)
}

// Min returns the smallest value in xs.
func Min(xs []float64) float64 {
	min, _ := stats.Bounds(xs)
	return min
}

// Max returns the largest value in xs.
func Max(xs []float64) float64 {
	_, max := stats.Bounds(xs)
	return max
}

// Median returns the median of xs.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// StdDev returns the sample standard deviation of xs. It is NaN for
// windows of fewer than two samples.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stats.Sample{Xs: xs}.StdDev()
}

// SkipNaN wraps agg so that missing (NaN) samples are dropped before
// aggregation. If every sample in the window is missing, the result is
// NaN and agg is not called.
func SkipNaN(agg AggFunc) AggFunc {
	return func(xs []float64) float64 {
		kept := make([]float64, 0, len(xs))
		for _, x := range xs {
			if !math.IsNaN(x) {
				kept = append(kept, x)
			}
		}
		if len(kept) == 0 {
			return math.NaN()
		}
		return agg(kept)
	}
}

// AggName returns a human-readable name for agg derived from its
// function symbol, with the package path trimmed (e.g. "window.Mean").
// Closures get whatever symbol the compiler assigned them, so callers
// with anonymous aggregates should label them explicitly.
func AggName(agg AggFunc) string {
	if agg == nil {
		return ""
	}
	fn := runtime.FuncForPC(reflect.ValueOf(agg).Pointer())
	if fn == nil {
		return "func"
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
