package ring

import (
	"testing"

	"github.com/rumangerst/ae-smoothlife-sub000/internal/field"
)

func TestPushPopRoundTrip(t *testing.T) {
	q := New(4, 8, 8)

	// Push publishes the current read buffer (the seeded initial state),
	// not the write buffer, which only becomes visible on the next push.
	q.ReadPtr().Set(3, 3, 1.5)
	if !q.Push() {
		t.Fatalf("Push failed on empty queue")
	}
	if q.Size() != 1 {
		t.Errorf("Size = %d, want 1", q.Size())
	}

	dst := field.New(8, 8)
	if !q.Pop(dst) {
		t.Fatalf("Pop failed with 1 queued")
	}
	if got := dst.Get(3, 3); got != 1.5 {
		t.Errorf("popped value = %v, want 1.5", got)
	}
	if q.Size() != 0 {
		t.Errorf("Size after pop = %d, want 0", q.Size())
	}
}

func TestPopEmptyReturnsFalse(t *testing.T) {
	q := New(2, 4, 4)
	dst := field.New(4, 4)
	if q.Pop(dst) {
		t.Errorf("Pop on empty queue should return false")
	}
}

func TestPushFailsAtCapacity(t *testing.T) {
	q := New(2, 4, 4)
	if !q.Push() {
		t.Fatalf("first push should succeed")
	}
	if !q.Push() {
		t.Fatalf("second push should succeed")
	}
	if q.Push() {
		t.Errorf("third push should fail, queue at capacity 2")
	}
	if q.CapacityLeft() != 0 {
		t.Errorf("CapacityLeft = %d, want 0", q.CapacityLeft())
	}
}

func TestCapacityLeftAndEmpty(t *testing.T) {
	q := New(3, 4, 4)
	if !q.Empty() {
		t.Errorf("new queue should be empty")
	}
	if q.CapacityLeft() != 3 {
		t.Errorf("CapacityLeft = %d, want 3", q.CapacityLeft())
	}
	q.Push()
	if q.Empty() {
		t.Errorf("queue should not be empty after push")
	}
	if q.CapacityLeft() != 2 {
		t.Errorf("CapacityLeft = %d, want 2", q.CapacityLeft())
	}
}

func TestWriteReadPtrAdvanceOnPush(t *testing.T) {
	q := New(3, 4, 4)
	first := q.WritePtr()
	first.Set(0, 0, 9)

	q.Push()

	if q.ReadPtr() != first {
		t.Errorf("ReadPtr should become the just-pushed write buffer")
	}
	if q.WritePtr() == first {
		t.Errorf("WritePtr should advance to a different buffer after push")
	}
}

func TestFIFOOrderPreserved(t *testing.T) {
	q := New(4, 4, 4)

	// Producer pattern: generation i is in the read buffer, generation
	// i+1 is computed into the write buffer, then Push publishes i.
	for i := 0; i < 3; i++ {
		q.WritePtr().Set(0, 0, float32(i+1))
		if !q.Push() {
			t.Fatalf("push %d failed", i)
		}
	}

	dst := field.New(4, 4)
	for i := 0; i < 3; i++ {
		if !q.Pop(dst) {
			t.Fatalf("pop %d failed", i)
		}
		if got := dst.Get(0, 0); got != float32(i) {
			t.Errorf("pop %d = %v, want %v", i, got, i)
		}
	}
}

func TestPopDiscard(t *testing.T) {
	q := New(2, 4, 4)
	q.Push()
	q.Push()
	if !q.PopDiscard() {
		t.Fatalf("PopDiscard should succeed")
	}
	if q.Size() != 1 {
		t.Errorf("Size after discard = %d, want 1", q.Size())
	}
}

func TestPopRawStripsPadding(t *testing.T) {
	q := New(2, 20, 3) // ld > width, so padding exists to strip
	for y := 0; y < 3; y++ {
		for x := 0; x < 20; x++ {
			q.ReadPtr().Set(x, y, float32(x+y*20))
		}
	}
	q.Push()

	dst := make([]float32, 20*3)
	if !q.PopRaw(dst) {
		t.Fatalf("PopRaw failed with 1 queued")
	}
	for i, v := range dst {
		if v != float32(i) {
			t.Fatalf("dst[%d] = %v, want %v", i, v, i)
		}
	}

	if q.PopRaw(dst) {
		t.Errorf("PopRaw on empty queue should return false")
	}
}

func TestConcurrentProducerConsumerFIFO(t *testing.T) {
	const frames = 1000
	q := New(4, 4, 4)

	done := make(chan []float32)
	go func() {
		var got []float32
		dst := field.New(4, 4)
		for len(got) < frames {
			if q.Pop(dst) {
				got = append(got, dst.Get(0, 0))
			}
		}
		done <- got
	}()

	// Push publishes the read buffer, so writing i+1 before each push
	// publishes the sequence 0 (the initial read buffer), 1, 2, ...
	for i := 0; i < frames; {
		q.WritePtr().Set(0, 0, float32(i+1))
		if q.Push() {
			i++
		}
	}

	got := <-done
	for i, v := range got {
		if v != float32(i) {
			t.Fatalf("frame %d popped as %v: frames reordered, duplicated or lost", i, v)
		}
	}
}

func TestNewPanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("New with negative size should panic")
		}
	}()
	New(-1, 4, 4)
}
