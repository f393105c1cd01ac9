package workerpool

import (
	"sync/atomic"
	"testing"
)

func TestParallelForCoversAllIndices(t *testing.T) {
	p := New(4)
	defer p.Close()

	n := 1000
	seen := make([]int32, n)
	p.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, v := range seen {
		if v != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, v)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	p := New(8)
	defer p.Close()

	var total int32
	p.ParallelFor(3, func(start, end int) {
		atomic.AddInt32(&total, int32(end-start))
	})
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
}

func TestParallelForZero(t *testing.T) {
	p := New(2)
	defer p.Close()

	called := false
	p.ParallelFor(0, func(start, end int) { called = true })
	if called {
		t.Errorf("fn should not be called for n=0")
	}
}

func TestParallelForAfterClose(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close() // safe to call twice

	var total int32
	p.ParallelFor(10, func(start, end int) {
		atomic.AddInt32(&total, int32(end-start))
	})
	if total != 10 {
		t.Errorf("total = %d, want 10 (sequential fallback)", total)
	}
}
