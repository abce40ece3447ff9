// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"github.com/aclements/go-moremath/vec"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"
)

// DefaultSize is the number of entries the renderer expects in each
// colormap texture.
const DefaultSize = 256

// Gradients is a Provider backed by continuous gradients. Each
// gradient is sampled at Size evenly spaced points over [0, 1],
// including both end points.
//
// The presets are splines through a handful of control colors, so
// they only approximate the published tables. Prefer Tables where
// an exported table is available.
type Gradients struct {
	// Size is the number of entries in resolved palettes. If
	// zero, DefaultSize is used.
	Size int

	grads map[string]colorgrad.Gradient
}

// NewGradients returns a Gradients provider holding the viridis,
// plasma, inferno, and magma presets.
func NewGradients() *Gradients {
	return &Gradients{grads: map[string]colorgrad.Gradient{
		"viridis": colorgrad.Viridis(),
		"plasma":  colorgrad.Plasma(),
		"inferno": colorgrad.Inferno(),
		"magma":   colorgrad.Magma(),
	}}
}

func (g *Gradients) Resolve(name string) (Palette, error) {
	grad, ok := g.grads[name]
	if !ok {
		return nil, &LookupError{name}
	}
	n := g.Size
	if n <= 0 {
		n = DefaultSize
	}
	ts := vec.Linspace(0, 1, n)
	p := make(Palette, n)
	for i, t := range ts {
		p[i] = fromColorful(grad.At(t))
	}
	return p, nil
}

func fromColorful(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{float32(c.R), float32(c.G), float32(c.B)}
}
