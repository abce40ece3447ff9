// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap resolves named color palettes and converts them
// to and from the packed float32 byte layout used by the renderer's
// colormap textures.
//
// A palette is an ordered sequence of RGB triplets with components in
// [0, 1]. Its packed form is the flattened sequence R, G, B, R, G, B,
// ... encoded as little-endian IEEE-754 single-precision floats, 12
// bytes per entry.
package colormap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// RGB is a single color as red, green, and blue components in [0, 1].
type RGB [3]float32

// Palette is an ordered sequence of colors. Index order is the order
// of the colormap from its low end to its high end.
type Palette []RGB

// ByteOrder is the byte order of packed palettes. It is fixed so the
// generated output does not depend on the host.
var ByteOrder = binary.LittleEndian

// BytesPerEntry is the size of one packed RGB entry.
const BytesPerEntry = 3 * 4

// A Provider resolves colormap names to palettes.
//
// Resolve returns an error satisfying errors.Is(err, ErrUnknown) if
// name is not known to the provider.
type Provider interface {
	Resolve(name string) (Palette, error)
}

// ErrUnknown is the error matched by all lookup failures.
var ErrUnknown = errors.New("unknown colormap")

// LookupError records a failed colormap lookup.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown colormap %q", e.Name)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrUnknown
}

// Flatten returns the components of p as a single sequence in R, G, B
// order.
func Flatten(p Palette) []float32 {
	fs := make([]float32, 0, 3*len(p))
	for _, c := range p {
		fs = append(fs, c[0], c[1], c[2])
	}
	return fs
}

// Unflatten regroups fs into RGB triplets. It is the inverse of
// Flatten.
func Unflatten(fs []float32) (Palette, error) {
	if len(fs)%3 != 0 {
		return nil, fmt.Errorf("%d components is not a whole number of RGB triplets", len(fs))
	}
	p := make(Palette, len(fs)/3)
	for i := range p {
		copy(p[i][:], fs[3*i:])
	}
	return p, nil
}

// Encode packs fs as consecutive 4-byte floats in ByteOrder.
func Encode(fs []float32) []byte {
	buf := make([]byte, 4*len(fs))
	for i, f := range fs {
		ByteOrder.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

// Decode unpacks a buffer produced by Encode. The decoded floats have
// exactly the bit patterns that were encoded.
func Decode(buf []byte) ([]float32, error) {
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("buffer length %d is not a multiple of 4", len(buf))
	}
	fs := make([]float32, len(buf)/4)
	for i := range fs {
		fs[i] = math.Float32frombits(ByteOrder.Uint32(buf[4*i:]))
	}
	return fs, nil
}

// Pack flattens and encodes p.
func Pack(p Palette) []byte {
	return Encode(Flatten(p))
}

// Unpack decodes and regroups a packed palette.
func Unpack(buf []byte) (Palette, error) {
	if len(buf)%BytesPerEntry != 0 {
		return nil, fmt.Errorf("buffer length %d is not a multiple of %d", len(buf), BytesPerEntry)
	}
	fs, err := Decode(buf)
	if err != nil {
		return nil, err
	}
	return Unflatten(fs)
}
