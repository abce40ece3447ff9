// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen writes packed colormaps to a C header.
package gen

import (
	"fmt"
	"os"

	"github.com/aclements/cmapgen/internal/cheader"
	"github.com/aclements/cmapgen/internal/colormap"
)

// Config describes one header to generate.
type Config struct {
	// Names lists the colormaps to write, in output order.
	Names []string

	// Output is the path of the header file. It is created or
	// truncated.
	Output string

	// BytesPerLine is the number of byte literals per line. If
	// zero, cheader.DefaultBytesPerLine is used.
	BytesPerLine int
}

// DefaultConfig returns the configuration of the renderer's
// colormaps.h.
func DefaultConfig() Config {
	return Config{
		Names:        []string{"viridis", "plasma", "inferno", "magma"},
		Output:       "colormaps.h",
		BytesPerLine: cheader.DefaultBytesPerLine,
	}
}

// Result summarizes one written declaration.
type Result struct {
	Name    string
	Entries int
	Bytes   int
}

// Run writes the header described by cfg, resolving each colormap
// from p. It returns a Result for every declaration written.
//
// Declarations are flushed to the file as they are written, so if a
// colormap cannot be resolved the file retains the declarations that
// precede it.
func Run(cfg Config, p colormap.Provider) (results []Result, err error) {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	w := cheader.NewWriter(f)
	w.BytesPerLine = cfg.BytesPerLine
	for _, name := range cfg.Names {
		pal, err := p.Resolve(name)
		if err != nil {
			return results, fmt.Errorf("resolving colormap: %w", err)
		}
		data := colormap.Pack(pal)
		if err := w.Decl(name, data); err != nil {
			return results, err
		}
		if err := w.Flush(); err != nil {
			return results, fmt.Errorf("writing %s: %w", cfg.Output, err)
		}
		results = append(results, Result{name, len(pal), len(data)})
	}
	return results, nil
}

// Total returns the number of bytes across all results.
func Total(results []Result) int {
	n := 0
	for _, r := range results {
		n += r.Bytes
	}
	return n
}
