// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cmapview renders the colormaps in a header written by
// cmapgen as a PNG with one horizontal band per colormap, lowest
// entry on the left.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/aclements/cmapgen/internal/cheader"
	"github.com/aclements/cmapgen/internal/colormap"
)

func main() {
	log.SetPrefix("cmapview: ")
	log.SetFlags(0)

	flagWidth := flag.Int("w", 512, "image `width` in pixels")
	flagBand := flag.Int("h", 32, "`height` of each band in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] header.h out.png\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 || *flagWidth <= 0 || *flagBand <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Read the header.
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	decls, err := cheader.Parse(f)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %s", flag.Arg(0), err)
	}
	if len(decls) == 0 {
		log.Fatalf("%s: no colormap declarations", flag.Arg(0))
	}

	names, tab, err := load(decls)
	if err != nil {
		log.Fatalf("%s: %s", flag.Arg(0), err)
	}
	dst, err := render(names, tab, *flagWidth, *flagBand)
	if err != nil {
		log.Fatal(err)
	}

	// Write output file.
	if f, err = os.Create(flag.Arg(1)); err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, dst); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

// load unpacks decls into a table, returning the names in file
// order.
func load(decls []cheader.Decl) ([]string, colormap.Table, error) {
	var names []string
	tab := make(colormap.Table)
	for _, d := range decls {
		p, err := colormap.Unpack(d.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", d.Ident(), err)
		}
		if len(p) == 0 {
			return nil, nil, fmt.Errorf("%s: empty colormap", d.Ident())
		}
		names = append(names, d.Name)
		tab[d.Name] = p
	}
	return names, tab, nil
}

// render draws each named colormap from p as a band of the given
// width and height.
func render(names []string, p colormap.Provider, width, band int) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, width, band*len(names)))
	for i, name := range names {
		pal, err := p.Resolve(name)
		if err != nil {
			return nil, err
		}
		strip := image.NewRGBA(image.Rect(0, 0, len(pal), 1))
		for x, c := range pal {
			strip.Set(x, 0, colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped())
		}
		r := image.Rect(0, i*band, width, (i+1)*band)
		draw.BiLinear.Scale(dst, r, strip, strip.Bounds(), draw.Src, nil)
	}
	return dst, nil
}
