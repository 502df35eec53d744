// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/tswin/go-tswin/window"
)

// Window configures a sliding-window transform over one or more
// numeric columns. The zero value is not usable; at least Columns,
// Period, and Agg must be set. Fit validates the configuration and
// produces the prepared, applicable form.
type Window struct {
	// Columns selects the input columns. Every selected column
	// must be numeric in the reference table.
	Columns Selector

	// Period is the window size in samples. It must be at least 1.
	Period int

	// Agg reduces each window to one value.
	Agg window.AggFunc

	// Align places the window relative to the output index. The
	// zero value is window.Center.
	Align window.Alignment

	// Names optionally gives one output column name per selected
	// column, in selection order. If Names is nil the input
	// columns are overwritten in place.
	Names []string

	// Label optionally overrides the aggregate name reported by
	// Describe. If empty, the name is derived once at Fit from the
	// aggregate's function symbol.
	Label string

	// ID, Role, and Skip are bookkeeping for a surrounding
	// pipeline. They are stored and echoed by the prepared step
	// but otherwise uninterpreted.
	ID   string
	Role string
	Skip bool
}

// Fit resolves w's column selection against ref's schema and validates
// the configuration. It returns a *ConfigError if the period is less
// than 1, the aggregate or selector is missing, a selected column is
// absent or not numeric, or the number of output names does not match
// the number of selected columns.
//
// Fit never looks at ref's values, only its schema, and a given
// configuration always fits to the same prepared step against the same
// schema.
func (w Window) Fit(ref *table.Table) (*WindowStep, error) {
	if w.Period < 1 {
		return nil, &ConfigError{fmt.Sprintf("period must be at least 1 (got %d)", w.Period)}
	}
	if w.Agg == nil {
		return nil, &ConfigError{"no aggregate function"}
	}
	if w.Columns == nil {
		return nil, &ConfigError{"no column selector"}
	}
	cols := w.Columns(ref)
	if len(cols) == 0 {
		return nil, &ConfigError{"selector matched no columns"}
	}
	for _, col := range cols {
		c := ref.Column(col)
		if c == nil {
			return nil, &ConfigError{fmt.Sprintf("unknown column %q", col)}
		}
		if !isNumeric(c) {
			return nil, &ConfigError{fmt.Sprintf("column %q is not numeric", col)}
		}
	}
	if w.Names != nil && len(w.Names) != len(cols) {
		return nil, &ConfigError{fmt.Sprintf("%d output names for %d columns", len(w.Names), len(cols))}
	}
	label := w.Label
	if label == "" {
		label = window.AggName(w.Agg)
	}
	return &WindowStep{
		id:     w.ID,
		role:   w.Role,
		skip:   w.Skip,
		cols:   append([]string(nil), cols...),
		names:  append([]string(nil), w.Names...),
		period: w.Period,
		agg:    w.Agg,
		align:  w.Align,
		label:  label,
	}, nil
}

// A WindowStep is a prepared sliding-window transform. It is immutable
// and may be applied any number of times, concurrently, to any table
// that carries its resolved columns.
type WindowStep struct {
	id, role string
	skip     bool
	cols     []string
	names    []string
	period   int
	agg      window.AggFunc
	align    window.Alignment
	label    string
}

// Apply transforms each of the step's columns in t and returns the
// resulting table; t itself is unchanged. The result has the same row
// count and columns as t, with each transformed column either
// overwritten in place or, if output names were configured, appended
// under its output name in selection order.
//
// Apply always evaluates partial boundary windows, so the edges of
// each column hold aggregates over truncated windows rather than
// missing values.
//
// Apply returns a *DataError if a resolved column is absent from t or
// is no longer numeric.
func (s *WindowStep) Apply(t *table.Table) (*table.Table, error) {
	b := table.NewBuilder(t)
	for i, col := range s.cols {
		c := t.Column(col)
		if c == nil {
			return nil, &DataError{col, "is missing"}
		}
		if !isNumeric(c) {
			return nil, &DataError{col, "is not numeric"}
		}
		var xs []float64
		slice.Convert(&xs, c)
		out := window.Slide(xs, s.period, s.agg, s.align, true)
		name := col
		if s.names != nil {
			name = s.names[i]
		}
		b.Add(name, out)
	}
	return b.Done(), nil
}

// F applies the step to every table in a grouping, preserving the
// grouping structure. It panics on a table the step cannot transform.
// F makes a prepared step usable as a gg stat.
func (s *WindowStep) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		nt, err := s.Apply(t)
		if err != nil {
			panic(err)
		}
		return nt
	})
}

// Describe returns a table reporting what Apply does, one row per
// transformed column, with columns "column", "output", "aggregate",
// "period", "alignment", "step", "role", and "skip". The step, role,
// and skip columns echo the pipeline metadata the step was configured
// with.
func (s *WindowStep) Describe() *table.Table {
	n := len(s.cols)
	outputs := s.cols
	if s.names != nil {
		outputs = s.names
	}
	aggs := make([]string, n)
	periods := make([]int, n)
	aligns := make([]string, n)
	ids := make([]string, n)
	roles := make([]string, n)
	skips := make([]bool, n)
	for i := 0; i < n; i++ {
		aggs[i] = s.label
		periods[i] = s.period
		aligns[i] = s.align.String()
		ids[i] = s.id
		roles[i] = s.role
		skips[i] = s.skip
	}
	return new(table.Builder).
		Add("column", append([]string(nil), s.cols...)).
		Add("output", append([]string(nil), outputs...)).
		Add("aggregate", aggs).
		Add("period", periods).
		Add("alignment", aligns).
		Add("step", ids).
		Add("role", roles).
		Add("skip", skips).
		Done()
}

// Columns returns the resolved input column names, in selection order.
func (s *WindowStep) Columns() []string {
	return append([]string(nil), s.cols...)
}

// Outputs returns the column names Apply writes, in selection order.
func (s *WindowStep) Outputs() []string {
	if s.names != nil {
		return append([]string(nil), s.names...)
	}
	return append([]string(nil), s.cols...)
}

// Label returns the step's aggregate label.
func (s *WindowStep) Label() string { return s.label }

// ID returns the step's pipeline identifier.
func (s *WindowStep) ID() string { return s.id }

// Role returns the step's pipeline role.
func (s *WindowStep) Role() string { return s.role }

// Skip returns the step's pipeline skip flag.
func (s *WindowStep) Skip() bool { return s.skip }
