// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsplot

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/aclements/go-gg/table"
)

func shouldPanic(t *testing.T, re string, f func()) {
	t.Helper()
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("want panic matching %q; got %s", re, err)
		}
	}()
	f()
}

func TestLines(t *testing.T) {
	tab := new(table.Builder).
		Add("t", []float64{0, 1, 2}).
		Add("x", []float64{1, 2, 3}).
		Add("x_ma", []float64{1, 1.5, 2}).
		Done()

	if p := Lines(tab, "t", "x"); p == nil {
		t.Fatal("Lines returned nil")
	}
	if p := Lines(tab, "t", "x", "x_ma"); p == nil {
		t.Fatal("Lines returned nil")
	}
	shouldPanic(t, "no y columns", func() { Lines(tab, "t") })
}

func TestFacetLines(t *testing.T) {
	tab := new(table.Builder).
		Add("t", []float64{0, 1, 0, 1}).
		Add("x", []float64{1, 2, 3, 4}).
		Add("series", []string{"a", "a", "b", "b"}).
		Done()

	if p := FacetLines(table.GroupBy(tab, "series"), "t", "series", "x"); p == nil {
		t.Fatal("FacetLines returned nil")
	}
}
