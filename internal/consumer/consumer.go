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

// Package consumer defines the minimal contract anything draining
// finished generations off a driver's frame queue must satisfy, plus a
// small reference consumer (per-generation population statistics) that
// exercises it without pulling in any rendering dependency.
package consumer

import (
	"fmt"
	"io"

	"github.com/rumangerst/ae-smoothlife-sub000/internal/field"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/ring"
)

// Source is anything a Consumer can pull finished generations from.
// *ring.Queue satisfies this directly.
type Source interface {
	Pop(dst *field.Field) bool
}

var _ Source = (*ring.Queue)(nil)

// Consumer pulls finished generations from a Source as fast as they
// become available and hands each one to Handle.
type Consumer struct {
	src     Source
	scratch *field.Field
	Handle  func(generation uint64, f *field.Field)

	generation uint64
}

// New builds a Consumer that pops width x height fields from src.
func New(src Source, width, height int, handle func(generation uint64, f *field.Field)) *Consumer {
	return &Consumer{
		src:     src,
		scratch: field.New(width, height),
		Handle:  handle,
	}
}

// DrainAvailable pops and handles every generation currently queued,
// returning how many were processed. It never blocks: once the source
// reports empty, it returns immediately.
func (c *Consumer) DrainAvailable() int {
	n := 0
	for c.src.Pop(c.scratch) {
		c.generation++
		c.Handle(c.generation, c.scratch)
		n++
	}
	return n
}

// Stats is a reference Consumer handler that writes a one-line summary
// of each generation (population = sum of cell values, as a fraction of
// the field's total capacity) to w.
func Stats(w io.Writer) func(generation uint64, f *field.Field) {
	return func(generation uint64, f *field.Field) {
		total := f.Sum()
		capacity := float32(f.Width() * f.Height())
		fmt.Fprintf(w, "gen %d: population %.4f (%d x %d)\n", generation, total/capacity, f.Width(), f.Height())
	}
}
