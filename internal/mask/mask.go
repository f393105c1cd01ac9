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

// Package mask pre-rasterizes the disk and annulus convolution kernels
// the stencil kernel scans against. For each of the inner disk (radius
// ri) and the annulus (ri..ra) it keeps CachelineFloats copies, one per
// possible left-padding offset, so that whichever offset the scan needs
// to stay cache-line aligned is already sitting in memory.
package mask

import (
	"math"

	"github.com/rumangerst/ae-smoothlife-sub000/internal/field"
)

// K is the number of offset variants kept per mask kind.
const K = field.CachelineFloats

// Mask is a single rasterized disk or annulus, shifted right by Offset
// columns so that the field row segment it is scanned against starts on
// a cache line boundary.
type Mask struct {
	*field.Field
	Offset      int // the padding this variant was built with, in [0,K)
	LeftOffset  int // logical column of the mask's center, counting the offset
	RightOffset int // Ld - LeftOffset
}

func newMask(sideCols int, offset int) *Mask {
	f := field.New(sideCols, sideCols, offset)
	left := (sideCols+1)/2 + offset // ceil(sideCols/2) + offset
	return &Mask{
		Field:       f,
		Offset:      offset,
		LeftOffset:  left,
		RightOffset: f.Ld() - left,
	}
}

// Family is the full set of K offset variants for one radius, plus the
// cached sum of one variant's weights (invariant across offsets, since
// the weighting is a pure radial function translated by whole columns).
type Family struct {
	Masks []*Mask
	Sum   float32
}

// buildFamily rasterizes K masks of the given side length, each drawing
// draw onto a fresh field at its own offset.
func buildFamily(sideCols int, draw func(m *Mask)) Family {
	fam := Family{Masks: make([]*Mask, K)}
	for o := 0; o < K; o++ {
		m := newMask(sideCols, o)
		draw(m)
		fam.Masks[o] = m
	}
	fam.Sum = fam.Masks[0].Sum()
	return fam
}

// BuildInner rasterizes the inner-disk family: a smoothed disk of radius
// ri, value 1.
func BuildInner(ra, ri float64) Family {
	side := sideLength(ra)
	return buildFamily(side, func(m *Mask) {
		drawCentered(m, ri, 1, 1)
	})
}

// BuildAnnulus rasterizes the annulus family: a disk of radius ra value
// 1, with the inner disk of radius ri then painted back to 0, leaving
// the ring [ri,ra].
func BuildAnnulus(ra, ri float64) Family {
	side := sideLength(ra)
	return buildFamily(side, func(m *Mask) {
		drawCentered(m, ra, 1, 1)
		drawCentered(m, ri, 0, 1)
	})
}

// sideLength is the logical width/height of a mask sized for radius ra:
// 2*ra+2, rounded up so fractional radii still get a whole column of
// slack on every side.
func sideLength(ra float64) int {
	return int(math.Ceil(ra))*2 + 2
}

// drawCentered paints a disk of radius r and value v onto m, centered on
// the mask's own logical center column/row, honoring m's offset.
func drawCentered(m *Mask, r float64, v float32, smooth float64) {
	cx := float64(m.Width()) / 2
	cy := float64(m.Height()) / 2
	m.DrawDisk(cx, cy, r, v, smooth, m.Offset)
}
