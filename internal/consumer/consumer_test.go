package consumer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rumangerst/ae-smoothlife-sub000/internal/field"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/ring"
)

func TestDrainAvailableProcessesEachQueuedGeneration(t *testing.T) {
	q := ring.New(4, 8, 8)

	// Push publishes the read buffer: writing i+1 before each push
	// publishes 0 (the zeroed initial read buffer), then 1, then 2.
	for i := 0; i < 3; i++ {
		q.WritePtr().Set(0, 0, float32(i+1))
		q.Push()
	}

	var got []float32
	c := New(q, 8, 8, func(generation uint64, f *field.Field) {
		got = append(got, f.Get(0, 0))
	})

	n := c.DrainAvailable()
	if n != 3 {
		t.Fatalf("DrainAvailable processed %d, want 3", n)
	}
	for i, v := range got {
		if v != float32(i) {
			t.Errorf("generation %d: got %v, want %v", i, v, i)
		}
	}

	if n2 := c.DrainAvailable(); n2 != 0 {
		t.Errorf("second DrainAvailable processed %d, want 0 (queue empty)", n2)
	}
}

func TestStatsWritesOneLinePerGeneration(t *testing.T) {
	q := ring.New(2, 4, 4)
	q.ReadPtr().Set(0, 0, 1)
	q.Push()

	var buf bytes.Buffer
	c := New(q, 4, 4, Stats(&buf))
	c.DrainAvailable()

	out := buf.String()
	if !strings.Contains(out, "gen 1") {
		t.Errorf("output missing generation marker: %q", out)
	}
	if !strings.Contains(out, "4 x 4") {
		t.Errorf("output missing field dimensions: %q", out)
	}
}
