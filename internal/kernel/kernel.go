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

// Package kernel implements the stencil convolution ("filling") at the
// heart of a SmoothLife step: given a cell position and a pre-rasterized
// mask family, it sums the field values under the mask and normalizes by
// the mask's total weight.
//
// The field is toroidal, so the rectangle under the mask can cross the
// top, bottom, left or right edge, or a corner. The non-wrap case is by
// far the most common on any field larger than the mask, so it gets a
// tight aligned dot-product loop (vecops.DotAligned); the single-edge
// wraps are split into two such slabs; the rare corner wraps fall back
// to a scalar loop over wrapped indices.
package kernel

import (
	"github.com/rumangerst/ae-smoothlife-sub000/internal/field"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/mask"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/vecops"
)

// SelectOffset picks the family member whose data starts on a cache line
// relative to scan column x, given the offset-0 mask's center column.
func SelectOffset(x, baseLeftOffset int) int {
	d := x - baseLeftOffset
	o := d % mask.K
	if o < 0 {
		o += mask.K
	}
	return o
}

// Fill returns the mask-weighted mean of f around (x,y), normalized by
// fam.Sum. x and y must be valid (in-range) field coordinates; wrapping
// at the field boundary is handled internally.
func Fill(x, y int, f *field.Field, fam mask.Family) float32 {
	baseLeft := fam.Masks[0].LeftOffset
	off := SelectOffset(x, baseLeft)
	m := fam.Masks[off]

	xb := x - m.LeftOffset
	xe := x + m.RightOffset
	yb := y - m.Height()/2
	ye := y + m.Height()/2

	w := f.Width()
	h := f.Height()

	var sum float32
	switch {
	case m.Ld() > w || m.Height() > h:
		// The mask is wider or taller than the field, so the slab paths'
		// slice bounds do not hold; walk it with wrapped access instead.
		sum = fillCornerScalar(f, m, xb, xe, yb, ye)
	case xb >= 0 && xe < w:
		switch {
		case yb >= 0 && ye < h:
			sum = fillNoWrap(f, m, xb, xe, yb, ye)
		case ye >= h:
			sum = fillWrapBottom(f, m, xb, xe, yb, ye, h)
		default: // yb < 0
			sum = fillWrapTop(f, m, xb, xe, yb, ye, h)
		}
	case yb >= 0 && ye < h && xe >= w:
		sum = fillWrapRight(f, m, xb, xe, yb, ye, w)
	case yb >= 0 && ye < h && xb < 0:
		sum = fillWrapLeft(f, m, xb, xe, yb, ye, w)
	default:
		sum = fillCornerScalar(f, m, xb, xe, yb, ye)
	}

	return sum / fam.Sum
}

func fillNoWrap(f *field.Field, m *mask.Mask, xb, xe, yb, ye int) float32 {
	var sum float32
	n := xe - xb
	for y := yb; y < ye; y++ {
		sRow := f.RowPtr(y)
		mRow := m.RowPtr(y - yb)
		sum += vecops.DotAligned(sRow[xb:xe], mRow[:n])
	}
	return sum
}

func fillWrapBottom(f *field.Field, m *mask.Mask, xb, xe, yb, ye, h int) float32 {
	var sum float32
	n := xe - xb
	for y := yb; y < h; y++ {
		sRow := f.RowPtr(y)
		mRow := m.RowPtr(y - yb)
		sum += vecops.DotAligned(sRow[xb:xe], mRow[:n])
	}
	maskYOff := m.Height() - (ye - h)
	for y := 0; y < ye-h; y++ {
		sRow := f.RowPtr(y)
		mRow := m.RowPtr(maskYOff + y)
		sum += vecops.DotAligned(sRow[xb:xe], mRow[:n])
	}
	return sum
}

func fillWrapTop(f *field.Field, m *mask.Mask, xb, xe, yb, ye, h int) float32 {
	var sum float32
	n := xe - xb
	for y := 0; y < ye; y++ {
		sRow := f.RowPtr(y)
		mRow := m.RowPtr(y - yb)
		sum += vecops.DotAligned(sRow[xb:xe], mRow[:n])
	}
	maskYOff := h + yb
	for y := maskYOff; y < h; y++ {
		sRow := f.RowPtr(y)
		mRow := m.RowPtr(y - maskYOff)
		sum += vecops.DotAligned(sRow[xb:xe], mRow[:n])
	}
	return sum
}

func fillWrapRight(f *field.Field, m *mask.Mask, xb, xe, yb, ye, w int) float32 {
	var sum float32
	for y := yb; y < ye; y++ {
		sRow := f.RowPtr(y)
		mRow := m.RowPtr(y - yb)
		sum += vecops.DotAligned(sRow[xb:w], mRow[:w-xb])
	}
	maskXOff := m.Ld() - (xe - w)
	n := xe - w
	for y := yb; y < ye; y++ {
		sRow := f.RowPtr(y)
		mRow := m.RowPtr(y - yb)
		sum += vecops.DotAligned(sRow[:n], mRow[maskXOff:maskXOff+n])
	}
	return sum
}

func fillWrapLeft(f *field.Field, m *mask.Mask, xb, xe, yb, ye, w int) float32 {
	var sum float32
	for y := yb; y < ye; y++ {
		sRow := f.RowPtr(y)
		mRow := m.RowPtr(y - yb)
		sum += vecops.DotAligned(sRow[:xe], mRow[-xb:-xb+xe])
	}
	startX := w + xb
	n := -xb
	for y := yb; y < ye; y++ {
		sRow := f.RowPtr(y)
		mRow := m.RowPtr(y - yb)
		sum += vecops.DotAligned(sRow[startX:startX+n], mRow[:n])
	}
	return sum
}

// fillCornerScalar handles the rare case where the mask rectangle crosses
// both an x- and a y- edge: walk the full rectangle using wrapped field
// access instead of trying to split it into aligned slabs.
func fillCornerScalar(f *field.Field, m *mask.Mask, xb, xe, yb, ye int) float32 {
	var sum float32
	for y := yb; y < ye; y++ {
		for x := xb; x < xe; x++ {
			sum += f.GetWrapped(x, y) * m.Get(x-xb, y-yb)
		}
	}
	return sum
}
