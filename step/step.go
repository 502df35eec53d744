// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package step implements two-phase table transform steps.
//
// A step starts as a plain configuration value. Fitting it against a
// reference table resolves its column selection against the table's
// schema and validates the configuration, producing an immutable
// prepared step. Fitting reads only column names and types, never
// values, so a prepared step applies equally to any table that carries
// the resolved columns, whatever its length or contents. Prepared
// steps are safe to share between concurrent Apply calls.
package step

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/aclements/go-gg/table"
)

// A Selector resolves a table's schema to an ordered list of column
// names.
type Selector func(t *table.Table) []string

// Cols selects exactly the named columns, in the given order.
func Cols(names ...string) Selector {
	return func(*table.Table) []string { return names }
}

// NumericCols selects every numeric column, in schema order.
func NumericCols() Selector {
	return func(t *table.Table) []string {
		var names []string
		for _, col := range t.Columns() {
			if isNumeric(t.Column(col)) {
				names = append(names, col)
			}
		}
		return names
	}
}

// MatchCols selects the columns whose names match the regular
// expression pattern, in schema order. It panics if the pattern does
// not compile.
func MatchCols(pattern string) Selector {
	re := regexp.MustCompile(pattern)
	return func(t *table.Table) []string {
		var names []string
		for _, col := range t.Columns() {
			if re.MatchString(col) {
				names = append(names, col)
			}
		}
		return names
	}
}

// isNumeric reports whether column is a slice with a numeric element
// kind. Defined types such as time.Duration count.
func isNumeric(column interface{}) bool {
	if column == nil {
		return false
	}
	rt := reflect.TypeOf(column)
	if rt.Kind() != reflect.Slice {
		return false
	}
	switch rt.Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// A ConfigError reports a step configuration that could not be fit
// against a reference table.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "step: " + e.Reason
}

// A DataError reports a table that a prepared step cannot be applied
// to, such as one that no longer carries a column the step was fit
// with.
type DataError struct {
	Column string
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("step: column %q %s", e.Column, e.Reason)
}
