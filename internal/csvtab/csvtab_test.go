// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvtab

import (
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func ExampleRead() {
	tab, _ := Read(strings.NewReader(`name,terms
Washington,2
Adams,1
Jefferson,2`))
	table.Print(tab)
	// Output:
	// name        terms
	// Washington      2
	// Adams           1
	// Jefferson       2
}

func TestReadCoercion(t *testing.T) {
	tab, err := Read(strings.NewReader("s,i,f\na,1,1.5\nb,2,2.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"s", "i", "f"}; !reflect.DeepEqual(want, tab.Columns()) {
		t.Fatalf("columns should be %v; got %v", want, tab.Columns())
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(want, tab.Column("s")) {
		t.Errorf("s should be %v; got %v", want, tab.Column("s"))
	}
	if want := []int{1, 2}; !reflect.DeepEqual(want, tab.Column("i")) {
		t.Errorf("i should be %v; got %v", want, tab.Column("i"))
	}
	if want := []float64{1.5, 2.5}; !reflect.DeepEqual(want, tab.Column("f")) {
		t.Errorf("f should be %v; got %v", want, tab.Column("f"))
	}
}

func TestReadEmpty(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Fatal("want error for empty input")
	}
}

func TestReadRagged(t *testing.T) {
	if _, err := Read(strings.NewReader("a,b\n1\n")); err == nil {
		t.Fatal("want error for ragged rows")
	}
}
