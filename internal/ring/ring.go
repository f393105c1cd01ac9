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

// Package ring implements the frame queue that decouples the compute
// thread from whatever is consuming finished generations: a single
// producer (the step driver) and a single consumer (anything reading
// frames) share a fixed-capacity ring of fields, plus one extra
// read/write pair so the producer can keep computing into its own
// private write buffer while previously finished generations wait to be
// drained.
//
// Queue is safe for exactly one producer goroutine calling Push and one
// consumer goroutine calling Pop concurrently; it is not safe for
// multiple producers or multiple consumers.
package ring

import (
	"fmt"
	"sync/atomic"

	"github.com/rumangerst/ae-smoothlife-sub000/internal/field"
)

// Queue is a fixed-capacity single-producer/single-consumer ring of
// fields, plus a floating read/write pair the producer computes into
// before a finished generation is made visible to the consumer.
type Queue struct {
	maxSize int
	buffer  []*field.Field // len == maxSize+2

	queueStart atomic.Int64 // index of oldest queued (unconsumed) item
	queueSize  atomic.Int64 // number of queued (unconsumed) items

	bufferRead int // producer-owned: index currently exposed as ReadPtr

	writeBuf *field.Field
	readBuf  *field.Field
}

// New creates a queue with room for size finished generations plus the
// producer's own read/write pair, both initialized to width x height
// fields. size must be >= 0.
func New(size, width, height int) *Queue {
	if size < 0 {
		panic(fmt.Sprintf("ring: invalid queue size %d", size))
	}
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("ring: invalid field size %dx%d", width, height))
	}

	q := &Queue{
		maxSize: size,
		buffer:  make([]*field.Field, size+2),
	}
	for i := range q.buffer {
		q.buffer[i] = field.New(width, height)
	}

	q.bufferRead = 0
	q.updateBufferPointers()

	return q
}

func (q *Queue) wrapIndex(i int) int {
	n := len(q.buffer)
	return ((i % n) + n) % n
}

func (q *Queue) updateBufferPointers() {
	q.writeBuf = q.buffer[q.wrapIndex(q.bufferRead+1)]
	q.readBuf = q.buffer[q.bufferRead]
}

// WritePtr returns the field the producer should compute the next
// generation into. The returned pointer stays valid until the next call
// to Push succeeds.
func (q *Queue) WritePtr() *field.Field { return q.writeBuf }

// ReadPtr returns the field the producer is currently reading the prior
// generation from, to evaluate the stencil against. Valid until the next
// successful Push.
func (q *Queue) ReadPtr() *field.Field { return q.readBuf }

// Push makes the current contents of ReadPtr (the generation the
// producer last read from) visible to the consumer as the newest queued
// generation, and advances the producer's read/write pair so the
// generation just finished in WritePtr becomes the new read buffer; it
// is published by the following Push. Returns false without side effects if the queue is already at
// capacity (the consumer isn't draining fast enough); the caller should
// treat this as a dropped/skipped generation and retry on the next
// step rather than block.
func (q *Queue) Push() bool {
	for {
		size := q.queueSize.Load()
		if size >= int64(q.maxSize) {
			return false
		}
		if q.queueSize.CompareAndSwap(size, size+1) {
			break
		}
	}

	q.bufferRead = q.wrapIndex(q.bufferRead + 1)
	q.updateBufferPointers()
	return true
}

// Pop removes the oldest queued generation, copying it into dst, and
// returns true. Returns false without modifying dst if the queue is
// empty. dst must be the same size as the queue's fields.
func (q *Queue) Pop(dst *field.Field) bool {
	size := q.queueSize.Load()
	if size == 0 {
		return false
	}

	start := int(q.queueStart.Load())
	dst.Overwrite(q.buffer[start])

	q.queueStart.Store(int64(q.wrapIndex(start + 1)))
	q.queueSize.Add(-1)
	return true
}

// PopRaw removes the oldest queued generation, copying it into dst
// row-major with a tight stride of Width (the cache-line padding of the
// backing fields is dropped). dst must hold at least Width*Height
// elements. Returns false without touching dst if the queue is empty.
func (q *Queue) PopRaw(dst []float32) bool {
	size := q.queueSize.Load()
	if size == 0 {
		return false
	}

	start := int(q.queueStart.Load())
	src := q.buffer[start]
	w := src.Width()
	for y := 0; y < src.Height(); y++ {
		copy(dst[y*w:(y+1)*w], src.Row(y))
	}

	q.queueStart.Store(int64(q.wrapIndex(start + 1)))
	q.queueSize.Add(-1)
	return true
}

// PopDiscard removes the oldest queued generation without copying it
// anywhere. Returns false if the queue is empty.
func (q *Queue) PopDiscard() bool {
	size := q.queueSize.Load()
	if size == 0 {
		return false
	}
	start := int(q.queueStart.Load())
	q.queueStart.Store(int64(q.wrapIndex(start + 1)))
	q.queueSize.Add(-1)
	return true
}

// Empty reports whether the queue currently holds no finished
// generations. Racy under concurrent Push - meant only as a hint.
func (q *Queue) Empty() bool { return q.queueSize.Load() == 0 }

// Size returns the number of finished generations currently queued.
func (q *Queue) Size() int { return int(q.queueSize.Load()) }

// MaxSize returns the queue's configured capacity.
func (q *Queue) MaxSize() int { return q.maxSize }

// CapacityLeft returns how many more generations can be pushed before
// Push starts returning false.
func (q *Queue) CapacityLeft() int {
	return q.maxSize - int(q.queueSize.Load())
}
