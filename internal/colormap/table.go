// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

//go:generate python3 mktables.py viridis plasma inferno magma

//go:embed tables
var tableFS embed.FS

// Table is a Provider backed by fixed palettes.
type Table map[string]Palette

func (t Table) Resolve(name string) (Palette, error) {
	p, ok := t[name]
	if !ok {
		return nil, &LookupError{name}
	}
	return p, nil
}

// Tables returns the exported tables embedded in the binary, keyed
// by colormap name.
func Tables() (Table, error) {
	return loadTables(tableFS, "tables")
}

// loadTables parses every dir/<name>.txt in fsys.
func loadTables(fsys fs.FS, dir string) (Table, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	t := make(Table)
	for _, p := range paths {
		f, err := fsys.Open(p)
		if err != nil {
			return nil, err
		}
		pal, err := ParseTable(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if len(pal) == 0 {
			return nil, fmt.Errorf("%s: empty table", p)
		}
		t[strings.TrimSuffix(path.Base(p), ".txt")] = pal
	}
	return t, nil
}

// ParseTable reads a palette written as one color per line. Each
// line holds three components separated by white space or commas.
// Blank lines and text following a '#' are ignored.
func ParseTable(r io.Reader) (Palette, error) {
	var p Palette
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		f := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(f) == 0 {
			continue
		}
		if len(f) != 3 {
			return nil, fmt.Errorf("line %d: want 3 components, got %d", lineno, len(f))
		}
		var c RGB
		for i, s := range f {
			// Parse as float64 and narrow, as the exporter's
			// float32 arrays do, so the result is bit-identical.
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			if !(v >= 0 && v <= 1) {
				return nil, fmt.Errorf("line %d: component %s out of range [0, 1]", lineno, s)
			}
			c[i] = float32(v)
		}
		p = append(p, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// Chain is a Provider that consults each provider in turn. A lookup
// failure falls through to the next provider; any other error is
// returned immediately.
type Chain []Provider

func (c Chain) Resolve(name string) (Palette, error) {
	for _, p := range c {
		pal, err := p.Resolve(name)
		if err == nil {
			return pal, nil
		}
		if !errors.Is(err, ErrUnknown) {
			return nil, err
		}
	}
	return nil, &LookupError{name}
}
