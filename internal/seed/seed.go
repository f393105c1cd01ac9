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

// Package seed provides the initial-condition generators a run can be
// started from: a filled field, uniform random noise, a scattering of
// filled disks ("splats") sized off the ruleset's outer radius, and a
// sparse random seed that propagates outward a few generations before
// the simulation proper begins.
package seed

import (
	"math"
	"math/rand/v2"

	"github.com/rumangerst/ae-smoothlife-sub000/internal/field"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/rule"
)

// Fill sets every cell of f to v.
func Fill(f *field.Field, v float32) {
	for y := 0; y < f.Height(); y++ {
		row := f.Row(y)
		for i := range row {
			row[i] = v
		}
	}
}

// Random fills f with independent uniform noise in [0,1).
func Random(f *field.Field, rnd *rand.Rand) {
	for y := 0; y < f.Height(); y++ {
		row := f.Row(y)
		for i := range row {
			row[i] = rnd.Float32()
		}
	}
}

// Splat scatters filled disks of random radius (between 0.5*ra and
// 1.0*ra, per the ruleset's outer radius) at random positions, roughly
// one per (2*ra)^2 area of the field, each drawn with a hard edge at
// value 1. Disks wrap toroidally.
func Splat(f *field.Field, r rule.Ruleset, rnd *rand.Rand) {
	w, h := f.Width(), f.Height()

	mx := 2 * r.Ra()
	if mx > float64(w) {
		mx = float64(w)
	}
	my := 2 * r.Ra()
	if my > float64(h) {
		my = float64(h)
	}

	count := int(float64(w)*float64(h)/(mx*my)) + 1

	for t := 0; t < count; t++ {
		cx := rnd.Float64() * float64(w)
		cy := rnd.Float64() * float64(h)
		u := r.Ra() * (rnd.Float64()*0.5 + 0.5)

		iy0 := int(math.Floor(cy - u - 1))
		iy1 := int(math.Ceil(cy + u + 1))
		ix0 := int(math.Floor(cx - u - 1))
		ix1 := int(math.Ceil(cx + u + 1))

		for iy := iy0; iy <= iy1; iy++ {
			for ix := ix0; ix <= ix1; ix++ {
				dx := cx - float64(ix)
				dy := cy - float64(iy)
				if math.Sqrt(dx*dx+dy*dy) < u {
					px := ((ix % w) + w) % w
					py := ((iy % h) + h) % h
					f.Set(px, py, 1)
				}
			}
		}
	}
}

// PropagateSeedProbability is the per-cell chance a cell is live in
// Propagate's initial sparse seeding pass.
const PropagateSeedProbability = 0.01

// PropagateSpreadProbability is the per-neighbor chance a live cell
// (filling > 0.5) infects each of its four von Neumann neighbors during
// each of Propagate's spreading rounds.
const PropagateSpreadProbability = 0.3

// PropagateRounds is the number of spreading rounds Propagate runs after
// the initial sparse seed.
const PropagateRounds = 5

// Propagate seeds f sparsely at PropagateSeedProbability, then runs
// PropagateRounds rounds where every live cell has a
// PropagateSpreadProbability chance of setting each toroidal neighbor
// live. This tends to produce organic-looking irregular blobs rather
// than the hard circles Splat produces.
func Propagate(f *field.Field, rnd *rand.Rand) {
	w, h := f.Width(), f.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rnd.Float64() <= PropagateSeedProbability {
				f.Set(x, y, 1)
			} else {
				f.Set(x, y, 0)
			}
		}
	}

	for i := 0; i < PropagateRounds; i++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if f.Get(x, y) <= 0.5 {
					continue
				}
				if rnd.Float64() <= PropagateSpreadProbability {
					f.Set(wrap(x-1, w), y, 1)
				}
				if rnd.Float64() <= PropagateSpreadProbability {
					f.Set(wrap(x+1, w), y, 1)
				}
				if rnd.Float64() <= PropagateSpreadProbability {
					f.Set(x, wrap(y-1, h), 1)
				}
				if rnd.Float64() <= PropagateSpreadProbability {
					f.Set(x, wrap(y+1, h), 1)
				}
			}
		}
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
