// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tsplot provides convenience plots for time series stored in
// table columns.
//
// The package only reshapes data into tidy long form — one (series, x,
// value) tuple per point, colored by series and optionally faceted by
// a group column — and attaches standard gg layers. All rendering,
// layout, and styling belongs to gg.
package tsplot

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// Lines plots each of the ys columns against x as a line. If more than
// one y column is given, they are unpivoted into a single value column
// and distinguished by color, so all of them must have the same type.
// The y scale always includes zero.
func Lines(g table.Grouping, x string, ys ...string) *gg.Plot {
	if len(ys) == 0 {
		panic("tsplot: no y columns")
	}
	y := ys[0]
	lines := gg.LayerLines{X: x, Y: y}
	if len(ys) > 1 {
		g = table.Unpivot(g, "series", "value", ys...)
		lines.Y, lines.Color = "value", "series"
	}
	plot := gg.NewPlot(g)
	plot.SortBy(x)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(lines)
	return plot
}

// FacetLines is Lines with one horizontal band per distinct value of
// the facet column.
func FacetLines(g table.Grouping, x, facet string, ys ...string) *gg.Plot {
	plot := Lines(g, x, ys...)
	plot.Add(gg.FacetY{Col: facet})
	return plot
}
