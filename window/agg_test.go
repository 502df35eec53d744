// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"math"
	"strings"
	"testing"
)

func aeq(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	return math.Abs(x-y) <= 1e-9
}

func TestAggregates(t *testing.T) {
	xs := []float64{4, 1, 3, 2}
	tests := []struct {
		name string
		agg  AggFunc
		want float64
	}{
		{"Mean", Mean, 2.5},
		{"Sum", Sum, 10},
		{"Min", Min, 1},
		{"Max", Max, 4},
		{"Median", Median, 2.5},
		{"StdDev", StdDev, 1.2909944487358056},
	}
	for _, test := range tests {
		if got := test.agg(xs); !aeq(test.want, got) {
			t.Errorf("%s(%v) = %v, want %v", test.name, xs, got, test.want)
		}
	}
}

func TestMedianOdd(t *testing.T) {
	if got := Median([]float64{9, 1, 5}); got != 5 {
		t.Errorf("Median = %v, want 5", got)
	}
	// Median must not reorder its window.
	xs := []float64{9, 1, 5}
	Median(xs)
	if xs[0] != 9 || xs[1] != 1 || xs[2] != 5 {
		t.Errorf("Median modified its input: %v", xs)
	}
}

func TestStdDevShortWindow(t *testing.T) {
	if got := StdDev([]float64{7}); !math.IsNaN(got) {
		t.Errorf("StdDev of one sample = %v, want NaN", got)
	}
}

func TestSkipNaN(t *testing.T) {
	agg := SkipNaN(Mean)
	if got := agg([]float64{1, nan, 3}); !aeq(2, got) {
		t.Errorf("SkipNaN(Mean) = %v, want 2", got)
	}
	if got := agg([]float64{nan, nan}); !math.IsNaN(got) {
		t.Errorf("SkipNaN(Mean) of all-NaN = %v, want NaN", got)
	}
}

func TestSlope(t *testing.T) {
	if got := Slope([]float64{1, 3, 5, 7}); !aeq(2, got) {
		t.Errorf("Slope of 2x+1 = %v, want 2", got)
	}
	if got := Slope([]float64{4, 4, 4}); !aeq(0, got) {
		t.Errorf("Slope of constant = %v, want 0", got)
	}
	if got := Slope([]float64{4}); !math.IsNaN(got) {
		t.Errorf("Slope of one sample = %v, want NaN", got)
	}
}

func TestSlopeThroughSlide(t *testing.T) {
	// A rolling slope over a line recovers the line's slope at
	// every full window.
	xs := []float64{0, 3, 6, 9, 12}
	got := Slide(xs, 3, Slope, Right, false)
	want := []float64{nan, nan, 3, 3, 3}
	if !feq(want, got) {
		t.Errorf("want %v; got %v", want, got)
	}
}

func TestAggName(t *testing.T) {
	if got := AggName(Mean); !strings.HasSuffix(got, "window.Mean") {
		t.Errorf("AggName(Mean) = %q, want suffix window.Mean", got)
	}
	if got := AggName(nil); got != "" {
		t.Errorf("AggName(nil) = %q, want \"\"", got)
	}
}
