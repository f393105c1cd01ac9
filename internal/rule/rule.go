// Copyright 2026 SmoothLife Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rule defines the immutable ruleset parameter object that
// configures a SmoothLife run: field size, the two radii, the four
// threshold constants, the two sharpness constants, the time step, and
// the discrete/continuous mode flag.
package rule

import "fmt"

// Ruleset is immutable after construction. Every numeric field other than
// the field dimensions must be strictly positive.
type Ruleset struct {
	width, height  int
	ra, rr         float64
	b1, b2         float64
	d1, d2         float64
	alphaM, alphaN float64
	dt             float64
	discrete       bool
}

// Params bundles the constructor arguments for New so call sites don't
// have to track thirteen positional floats.
type Params struct {
	Width, Height  int
	Ra, Rr         float64
	B1, B2         float64
	D1, D2         float64
	AlphaM, AlphaN float64
	Dt             float64
	Discrete       bool
}

// New validates and builds a Ruleset. Every field listed in Params other
// than Discrete must be strictly positive; Width/Height additionally must
// be positive integers.
func New(p Params) (Ruleset, error) {
	fields := []struct {
		name string
		v    float64
	}{
		{"ra", p.Ra},
		{"rr", p.Rr},
		{"b1", p.B1},
		{"b2", p.B2},
		{"d1", p.D1},
		{"d2", p.D2},
		{"alpha_m", p.AlphaM},
		{"alpha_n", p.AlphaN},
		{"dt", p.Dt},
	}
	for _, f := range fields {
		if f.v <= 0 {
			return Ruleset{}, fmt.Errorf("rule: invalid %s: %v (must be > 0)", f.name, f.v)
		}
	}
	if p.Width <= 0 || p.Height <= 0 {
		return Ruleset{}, fmt.Errorf("rule: invalid field size %dx%d", p.Width, p.Height)
	}

	return Ruleset{
		width: p.Width, height: p.Height,
		ra: p.Ra, rr: p.Rr,
		b1: p.B1, b2: p.B2,
		d1: p.D1, d2: p.D2,
		alphaM: p.AlphaM, alphaN: p.AlphaN,
		dt:       p.Dt,
		discrete: p.Discrete,
	}, nil
}

func (r Ruleset) Width() int  { return r.width }
func (r Ruleset) Height() int { return r.height }
func (r Ruleset) Ra() float64 { return r.ra }
func (r Ruleset) Rr() float64 { return r.rr }

// Ri is the derived inner-disk radius, ra/rr.
func (r Ruleset) Ri() float64 { return r.ra / r.rr }

func (r Ruleset) B1() float64     { return r.b1 }
func (r Ruleset) B2() float64     { return r.b2 }
func (r Ruleset) D1() float64     { return r.d1 }
func (r Ruleset) D2() float64     { return r.d2 }
func (r Ruleset) AlphaM() float64 { return r.alphaM }
func (r Ruleset) AlphaN() float64 { return r.alphaN }
func (r Ruleset) Dt() float64     { return r.dt }
func (r Ruleset) Discrete() bool  { return r.discrete }

// WithSize returns a copy of r with a different field size; every other
// parameter is kept.
func (r Ruleset) WithSize(width, height int) Ruleset {
	r.width = width
	r.height = height
	return r
}

// SmoothLifeL is the classic "Smooth Life L" parameterization.
func SmoothLifeL(width, height int) Ruleset {
	r, err := New(Params{
		Width: width, Height: height,
		Ra: 20, Rr: 3,
		B1: 0.257, B2: 0.336,
		D1: 0.365, D2: 0.549,
		AlphaM: 0.147, AlphaN: 0.028,
		Dt:       0.1,
		Discrete: false,
	})
	if err != nil {
		// Preset constants are fixed at compile time and known valid.
		panic(err)
	}
	return r
}

// RaflerPaper is the ruleset proposed in S. Rafler's original SmoothLife
// paper.
func RaflerPaper(width, height int) Ruleset {
	r, err := New(Params{
		Width: width, Height: height,
		Ra: 21, Rr: 3,
		B1: 0.278, B2: 0.365,
		D1: 0.267, D2: 0.445,
		AlphaM: 0.147, AlphaN: 0.028,
		Dt:       0.05,
		Discrete: false,
	})
	if err != nil {
		panic(err)
	}
	return r
}

// FromName returns the named preset sized to width x height. An unknown
// name falls back to SmoothLifeL.
func FromName(name string, width, height int) Ruleset {
	switch name {
	case "rafler_paper":
		return RaflerPaper(width, height)
	case "L":
		return SmoothLifeL(width, height)
	default:
		return SmoothLifeL(width, height)
	}
}

// DefaultWidth and DefaultHeight size a ruleset built with no explicit
// dimensions.
const (
	DefaultWidth  = 256
	DefaultHeight = 256
)
