// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tsroll applies a sliding-window transform to columns of a
// CSV file.
//
// tsroll reads a CSV file (or standard input when the path is "-" or
// absent), fits a window step against it, applies the step, and either
// prints the transformed table or renders the transformed columns
// against an x column as an SVG line plot.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/tswin/go-tswin/internal/csvtab"
	"github.com/tswin/go-tswin/step"
	"github.com/tswin/go-tswin/tsplot"
	"github.com/tswin/go-tswin/window"
)

var aggs = map[string]window.AggFunc{
	"mean":   window.Mean,
	"sum":    window.Sum,
	"min":    window.Min,
	"max":    window.Max,
	"median": window.Median,
	"stddev": window.StdDev,
	"slope":  window.Slope,
}

var aligns = map[string]window.Alignment{
	"center": window.Center,
	"left":   window.Left,
	"right":  window.Right,
}

func main() {
	log.SetPrefix("tsroll: ")
	log.SetFlags(0)

	var (
		flagCols     = flag.String("cols", "", "comma-separated `columns` to transform (default: all numeric columns)")
		flagPeriod   = flag.Int("period", 5, "window size in `samples`")
		flagAgg      = flag.String("agg", "mean", "aggregate `function`: mean, sum, min, max, median, stddev, slope")
		flagAlign    = flag.String("align", "center", "window `alignment`: center, left, right")
		flagNames    = flag.String("names", "", "comma-separated output `names` (default: overwrite in place)")
		flagX        = flag.String("x", "", "x `column` for plotting (default: first column)")
		flagOut      = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable    = flag.Bool("table", false, "output a table instead of a plot")
		flagDescribe = flag.Bool("describe", false, "print what the step will do and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := "-"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	var tab *table.Table
	var err error
	if path == "-" {
		tab, err = csvtab.Read(os.Stdin)
	} else {
		tab, err = csvtab.ReadFile(path)
	}
	if err != nil {
		log.Fatal(err)
	}

	agg, ok := aggs[*flagAgg]
	if !ok {
		log.Fatalf("unknown aggregate %q", *flagAgg)
	}
	align, ok := aligns[*flagAlign]
	if !ok {
		log.Fatalf("unknown alignment %q", *flagAlign)
	}
	sel := step.NumericCols()
	if *flagCols != "" {
		sel = step.Cols(strings.Split(*flagCols, ",")...)
	}
	var names []string
	if *flagNames != "" {
		names = strings.Split(*flagNames, ",")
	}

	prepped, err := step.Window{
		Columns: sel,
		Period:  *flagPeriod,
		Agg:     agg,
		Align:   align,
		Names:   names,
		Label:   *flagAgg,
		ID:      "tsroll",
	}.Fit(tab)
	if err != nil {
		log.Fatal(err)
	}

	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if *flagDescribe {
		table.Fprint(f, prepped.Describe())
		return
	}

	out, err := prepped.Apply(tab)
	if err != nil {
		log.Fatal(err)
	}

	if *flagTable {
		table.Fprint(f, out)
		return
	}

	x := *flagX
	if x == "" {
		x = out.Columns()[0]
	}
	plot := tsplot.Lines(out, x, prepped.Outputs()...)
	plot.WriteSVG(f, 800, 350)
}
