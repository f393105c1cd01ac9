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

// Package driver wires a ruleset, a pair of mask families, a worker
// pool and a frame queue together into the repeatable Step operation
// that advances the simulation by one generation: evaluate the
// annulus and inner-disk fillings at every cell in parallel, run them
// through the transition rule into the queue's write buffer, then push,
// which publishes the generation the step read from and makes the new
// one the read buffer.
package driver

import (
	"github.com/rumangerst/ae-smoothlife-sub000/internal/field"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/kernel"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/mask"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/ring"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/rule"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/transition"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/workerpool"
)

// Driver advances a single field through the SmoothLife transition,
// one generation per Step call, publishing finished generations into a
// frame queue for some consumer to drain.
type Driver struct {
	rules   rule.Ruleset
	inner   mask.Family
	annulus mask.Family
	pool    *workerpool.Pool
	queue   *ring.Queue

	generation uint64
	skipped    uint64
}

// New builds a driver around the given ruleset, queue depth and worker
// pool size. The queue's fields are sized from rules; the initial read
// buffer (queue.ReadPtr()) is left zeroed and should be seeded by the
// caller (see the seed package) before the first Step.
func New(rules rule.Ruleset, queueDepth, numWorkers int) *Driver {
	queue := ring.New(queueDepth, rules.Width(), rules.Height())
	return &Driver{
		rules:   rules,
		inner:   mask.BuildInner(rules.Ra(), rules.Ri()),
		annulus: mask.BuildAnnulus(rules.Ra(), rules.Ri()),
		pool:    workerpool.New(numWorkers),
		queue:   queue,
	}
}

// Seed returns the field the caller should populate with an initial
// condition before the first call to Step.
func (d *Driver) Seed() *field.Field { return d.queue.ReadPtr() }

// Rules returns the ruleset the driver was built with.
func (d *Driver) Rules() rule.Ruleset { return d.rules }

// Generation returns how many steps have been computed so far.
func (d *Driver) Generation() uint64 { return d.generation }

// Skipped returns how many Step calls computed nothing because the
// frame queue was already full.
func (d *Driver) Skipped() uint64 { return d.skipped }

// Queue exposes the underlying frame queue so a consumer can Pop
// finished generations.
func (d *Driver) Queue() *ring.Queue { return d.queue }

// Close releases the driver's worker pool.
func (d *Driver) Close() { d.pool.Close() }

// Step advances the simulation by one generation: for every cell it
// computes the annulus filling n and inner-disk filling m against the
// current read buffer, applies the transition rule, and writes the
// result into the write buffer. Columns are partitioned across the
// worker pool; each worker only reads the (shared, read-only) read
// buffer and only writes its own disjoint band of columns, so no
// further synchronization is required.
//
// If the frame queue is already full, the step is skipped outright
// (no cells are recomputed and the generation counter does not
// advance) as backpressure on a consumer that isn't keeping up; the
// exception is the very first step, which always runs so a freshly
// seeded field has something to publish. Returns true if a generation
// was computed (and the one it was computed from published), false if
// it was skipped (Skipped is incremented in that case).
func (d *Driver) Step() bool {
	if d.generation > 0 && d.queue.CapacityLeft() == 0 {
		d.skipped++
		return false
	}

	read := d.queue.ReadPtr()
	write := d.queue.WritePtr()
	height := d.rules.Height()

	d.pool.ParallelFor(d.rules.Width(), func(xStart, xEnd int) {
		for x := xStart; x < xEnd; x++ {
			for y := 0; y < height; y++ {
				n := kernel.Fill(x, y, read, d.annulus)
				m := kernel.Fill(x, y, read, d.inner)
				next := transition.Step(read.Get(x, y), float64(n), float64(m), d.rules)
				write.Set(x, y, next)
			}
		}
	})

	d.generation++
	d.queue.Push()
	return true
}
