// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cmapgen writes colormaps.h, the packed viridis, plasma,
// inferno, and magma colormaps used by the renderer, to the current
// directory.
//
// Each colormap is 256 RGB entries stored as little-endian float32
// triplets in a read_only U8 array named g_colormap_<name>. Entries
// come from the exported matplotlib tables embedded in the binary.
// A colormap with no exported table falls back to a spline
// approximation and cmapgen warns about it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/cmapgen/internal/colormap"
	"github.com/aclements/cmapgen/internal/gen"
)

func main() {
	log.SetPrefix("cmapgen: ")
	log.SetFlags(0)

	if !parseArgs(os.Args[1:], os.Stderr) {
		os.Exit(2)
	}

	cfg := gen.DefaultConfig()
	tab, err := colormap.Tables()
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range missing(tab, cfg.Names) {
		log.Printf("warning: no exported table for %s; using spline approximation", name)
	}

	results, err := gen.Run(cfg, colormap.Chain{tab, colormap.NewGradients()})
	if err != nil {
		log.Fatal(err)
	}
	report(log.Default(), results, cfg.Output)
}

// parseArgs checks that args is empty. Otherwise it prints usage to
// stderr and returns false.
func parseArgs(args []string, stderr io.Writer) bool {
	fs := flag.NewFlagSet("cmapgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cmapgen\n")
		fmt.Fprintf(stderr, "\nWrites colormaps.h to the current directory.\n")
	}
	if err := fs.Parse(args); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return false
	}
	return true
}

// missing returns the names in names that tab has no table for.
func missing(tab colormap.Table, names []string) []string {
	var out []string
	for _, name := range names {
		if _, ok := tab[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

func report(l *log.Logger, results []gen.Result, output string) {
	for _, r := range results {
		l.Printf("g_colormap_%s: %d entries, %d bytes", r.Name, r.Entries, r.Bytes)
	}
	l.Printf("Written %d bytes to %s", gen.Total(results), output)
}
