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

// Package field provides the cache-line-aligned, row-padded 2D float32
// container the simulation operates on. Rows are aligned so that the
// stencil kernel's non-wrap case can walk two rows (field and mask) with a
// single tight loop, and so that a family of mask offsets can be built
// that line up with field columns regardless of scan position.
package field

import (
	"fmt"
	"math"
	"unsafe"
)

// CachelineBytes is the memory alignment boundary, in bytes, that row
// starts and the base address are held to.
const CachelineBytes = 64

// CachelineFloats is CachelineBytes expressed in float32 elements.
const CachelineFloats = CachelineBytes / 4

// Field is a toroidal, row-major array of float32 cells. The backing
// store is aligned to CachelineBytes and each row's stride (Ld) is the
// smallest multiple of CachelineFloats that is at least Width+leftPad
// elements wide, so every row start is itself cache-line aligned.
type Field struct {
	raw     []float32 // oversized backing allocation
	data    []float32 // raw, sliced to start at a 64-byte boundary
	width   int
	height  int
	ld      int
	leftPad int
}

// New allocates a zero-initialized field of the given logical size.
// leftPad, if provided, reserves that many extra columns on the left of
// every row before the stride is rounded up to a cache line - used when
// building the offset-shifted mask family.
func New(width, height int, leftPad ...int) *Field {
	pad := 0
	if len(leftPad) > 0 {
		pad = leftPad[0]
	}
	if width <= 0 || height <= 0 {
		return &Field{width: 0, height: 0, ld: 0, leftPad: pad}
	}

	ld := ((width+pad)*4 + CachelineBytes - 1) / CachelineBytes * CachelineFloats

	n := ld * height
	raw := make([]float32, n+CachelineFloats)
	data := alignedSlice(raw, n)

	return &Field{
		raw:     raw,
		data:    data,
		width:   width,
		height:  height,
		ld:      ld,
		leftPad: pad,
	}
}

// alignedSlice returns a sub-slice of raw of length n whose first element
// sits at a CachelineBytes-aligned address, assuming raw has at least
// CachelineFloats extra elements of slack for the shift.
func alignedSlice(raw []float32, n int) []float32 {
	base := unsafe.Pointer(unsafe.SliceData(raw))
	addr := uintptr(base)
	misalign := addr % CachelineBytes
	if misalign == 0 {
		return raw[:n]
	}
	shift := int((CachelineBytes - misalign) / 4)
	return raw[shift : shift+n]
}

// Width returns the logical column count.
func (f *Field) Width() int { return f.width }

// Height returns the logical row count.
func (f *Field) Height() int { return f.height }

// Ld returns the row stride in elements (including padding).
func (f *Field) Ld() int { return f.ld }

// LeftPad returns the configured left padding in elements.
func (f *Field) LeftPad() int { return f.leftPad }

// Get returns the value at (x,y). x and y must be in range; use
// GetWrapped for toroidal access.
func (f *Field) Get(x, y int) float32 {
	return f.data[x+y*f.ld]
}

// Set assigns the value at (x,y). x and y must be in range.
func (f *Field) Set(x, y int, v float32) {
	f.data[x+y*f.ld] = v
}

// GetWrapped returns the value at (x,y), wrapping both coordinates modulo
// Width/Height. Negative coordinates wrap from the far edge. This is the
// slow path used only by the kernel's corner-wrap fallback and by tests
// that check wrap invariance directly.
func (f *Field) GetWrapped(x, y int) float32 {
	wx := ((x % f.width) + f.width) % f.width
	wy := ((y % f.height) + f.height) % f.height
	return f.Get(wx, wy)
}

// RowPtr returns the slice for row y, starting at a 64-byte aligned
// address and including trailing padding elements up to Ld.
func (f *Field) RowPtr(y int) []float32 {
	start := y * f.ld
	return f.data[start : start+f.ld]
}

// Row returns the logical (unpadded) slice for row y, i.e. RowPtr(y)
// truncated to Width elements.
func (f *Field) Row(y int) []float32 {
	return f.RowPtr(y)[:f.width]
}

// DrawDisk paints a smoothed disk of radius r and value v into the field,
// centered at (cx,cy) shifted right by leftPad. Every cell samples its
// center point (i+0.5, j+0.5); weight falls off linearly across a band
// of width `smooth` starting at the disk boundary. With smooth<=0, the
// disk is drawn as a hard edge. Existing values are blended with the new
// value by the computed weight rather than overwritten outright, so
// repeated calls can punch a hole (e.g. annulus = disk(ra) then
// disk(ri, v=0)).
func (f *Field) DrawDisk(cx, cy, r float64, v float32, smooth float64, leftPad int) {
	ccx := cx + float64(leftPad)
	ccy := cy

	for j := 0; j < f.height; j++ {
		for i := 0; i < f.ld; i++ {
			lx := float64(i) + 0.5
			ly := float64(j) + 0.5
			dx := lx - ccx
			dy := ly - ccy
			d := math.Sqrt(dx*dx + dy*dy)

			var w float64
			if smooth <= 0 {
				if d <= r {
					w = 1
				}
			} else {
				w = (r + smooth - d) / smooth
				if w < 0 {
					w = 0
				} else if w > 1 {
					w = 1
				}
			}

			idx := i + j*f.ld
			old := f.data[idx]
			f.data[idx] = float32(float64(old)*(1-w) + float64(v)*w)
		}
	}
}

// Sum reduces every stored cell, including stride padding. Padding is
// zero for ordinary fields; for offset-padded masks the shifted disk
// spills into it and has to be counted.
func (f *Field) Sum() float32 {
	var s float32
	for y := 0; y < f.height; y++ {
		row := f.RowPtr(y)
		for _, v := range row {
			s += v
		}
	}
	return s
}

// Overwrite bulk-copies src's contents into f. Both fields must share the
// same logical Width/Height; mismatched sizes are a programmer error and
// panic rather than silently truncate.
func (f *Field) Overwrite(src *Field) {
	if src.width != f.width || src.height != f.height {
		panic(fmt.Sprintf("field: cannot overwrite %dx%d field from %dx%d field", f.width, f.height, src.width, src.height))
	}
	for y := 0; y < f.height; y++ {
		copy(f.Row(y), src.Row(y))
	}
}
