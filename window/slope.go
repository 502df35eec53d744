// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// Slope returns the slope of the least squares line through the points
// (0, xs[0]), (1, xs[1]), .... Used as a window aggregate it measures
// the local trend of the sequence, in value units per sample. It is
// NaN for windows of fewer than two samples.
func Slope(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	ts := make([]float64, len(xs))
	for i := range ts {
		ts[i] = float64(i)
	}
	_, b1 := linearLeastSquares(ts, xs)
	return b1
}

// linearLeastSquares computes the least squares fit of
//
//	f(x) = b0 + b1·x
//
// to the data (xs[i], ys[i]) by solving the normal equations
//
//	(𝐗ᵀ𝐗)β̂ = 𝐗ᵀ𝐲
//
// where 𝐗 is the design matrix with a constant column and an xs
// column.
func linearLeastSquares(xs, ys []float64) (b0, b1 float64) {
	if len(xs) != len(ys) {
		panic("len(xs) != len(ys)")
	}

	// Construct 𝐗ᵀ row by row: the constant term, then the
	// linear term.
	xTVals := make([]float64, 2*len(xs))
	for i, x := range xs {
		xTVals[i] = 1
		xTVals[len(xs)+i] = x
	}
	XT := mat64.NewDense(2, len(xs), xTVals)
	X := XT.T()

	// Construct 𝐲.
	y := mat64.NewVector(len(ys), ys)

	// Compute β̂.
	lhs := mat64.NewDense(2, 2, nil)
	lhs.Mul(XT, X)

	rhs := mat64.NewVector(2, nil)
	rhs.MulVec(XT, y)

	bVals := make([]float64, 2)
	b := mat64.NewVector(2, bVals)
	b.SolveVec(lhs, rhs)
	return bVals[0], bVals[1]
}
