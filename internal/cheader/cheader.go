// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cheader reads and writes byte-array declarations in the
// form consumed by the renderer's C sources:
//
//	read_only const U8 g_colormap_<name>[] = {
//	    0x00, 0x00, 0x80, 0x3f, ...,
//	};
//
// Each data line holds up to BytesPerLine literals, every literal
// followed by a comma.
package cheader

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
)

// DefaultBytesPerLine is the number of byte literals per data line.
const DefaultBytesPerLine = 16

// Prefix is prepended to declaration names to form the C identifier.
const Prefix = "g_colormap_"

const indent = "    "

// Decl is a single byte-array declaration.
type Decl struct {
	// Name is the declaration's name without Prefix.
	Name string

	// Data is the contents of the array.
	Data []byte
}

// Ident returns the C identifier of d.
func (d Decl) Ident() string {
	return Prefix + d.Name
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Writer writes declarations to an underlying writer.
type Writer struct {
	// BytesPerLine is the maximum number of literals per line. If
	// zero, DefaultBytesPerLine is used.
	BytesPerLine int

	w *bufio.Writer
}

// NewWriter returns a Writer that writes to w. Callers must call
// Flush to ensure all output reaches w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Decl writes the declaration of name holding data.
func (w *Writer) Decl(name string, data []byte) error {
	if !identRe.MatchString(Prefix + name) {
		return fmt.Errorf("%q is not a valid C identifier", Prefix+name)
	}
	perLine := w.BytesPerLine
	if perLine <= 0 {
		perLine = DefaultBytesPerLine
	}

	// bufio.Writer errors are sticky, so only the last write's
	// error needs checking.
	fmt.Fprintf(w.w, "read_only const U8 %s%s[] = {\n", Prefix, name)
	for i := 0; i < len(data); i += perLine {
		end := i + perLine
		if end > len(data) {
			end = len(data)
		}
		w.w.WriteString(indent)
		for j, b := range data[i:end] {
			if j > 0 {
				w.w.WriteByte(' ')
			}
			fmt.Fprintf(w.w, "0x%02x,", b)
		}
		w.w.WriteByte('\n')
	}
	_, err := w.w.WriteString("};\n")
	return err
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
