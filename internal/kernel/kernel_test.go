package kernel

import (
	"math"
	"testing"

	"github.com/rumangerst/ae-smoothlife-sub000/internal/field"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/mask"
)

func buildFamilies(ra, ri float64) (mask.Family, mask.Family) {
	return mask.BuildInner(ra, ri), mask.BuildAnnulus(ra, ri)
}

func TestFillConstantField(t *testing.T) {
	ra, ri := 20.0, 20.0/3.0
	inner, annulus := buildFamilies(ra, ri)

	f := field.New(64, 64)
	const c = float32(0.37)
	for y := 0; y < f.Height(); y++ {
		row := f.Row(y)
		for i := range row {
			row[i] = c
		}
	}

	for _, pt := range [][2]int{{0, 0}, {32, 32}, {1, 1}, {62, 62}} {
		for _, fam := range []mask.Family{inner, annulus} {
			got := Fill(pt[0], pt[1], f, fam)
			if math.Abs(float64(got-c)) > 1e-5 {
				t.Errorf("Fill(%d,%d) on constant field = %v, want %v", pt[0], pt[1], got, c)
			}
		}
	}
}

// referenceFill recomputes Fill using only wrapped scalar access, as a
// ground truth independent of the aligned-slab fast paths.
func referenceFill(x, y int, f *field.Field, fam mask.Family) float32 {
	baseLeft := fam.Masks[0].LeftOffset
	off := SelectOffset(x, baseLeft)
	m := fam.Masks[off]

	xb := x - m.LeftOffset
	xe := x + m.RightOffset
	yb := y - m.Height()/2
	ye := y + m.Height()/2

	var sum float32
	for j := yb; j < ye; j++ {
		for i := xb; i < xe; i++ {
			sum += f.GetWrapped(i, j) * m.Get(i-xb, j-yb)
		}
	}
	return sum / fam.Sum
}

func TestFillMatchesWrappedReference(t *testing.T) {
	ra, ri := 10.0, 10.0/3.0
	inner, annulus := buildFamilies(ra, ri)

	w, h := 48, 48
	f := field.New(w, h)
	seedPattern(f)

	points := map[string][2]int{
		"interior":     {24, 24},
		"top edge":     {24, 0},
		"bottom edge":  {24, h - 1},
		"left edge":    {0, 24},
		"right edge":   {w - 1, 24},
		"top-left":     {0, 0},
		"top-right":    {w - 1, 0},
		"bottom-left":  {0, h - 1},
		"bottom-right": {w - 1, h - 1},
	}

	for name, pt := range points {
		for famName, fam := range map[string]mask.Family{"inner": inner, "annulus": annulus} {
			got := Fill(pt[0], pt[1], f, fam)
			want := referenceFill(pt[0], pt[1], f, fam)
			if math.Abs(float64(got-want)) > 1e-5 {
				t.Errorf("%s/%s: Fill(%d,%d) = %v, want %v (reference)", name, famName, pt[0], pt[1], got, want)
			}
		}
	}
}

func seedPattern(f *field.Field) {
	for y := 0; y < f.Height(); y++ {
		row := f.Row(y)
		for x := range row {
			row[x] = float32((x*7+y*13)%100) / 100
		}
	}
}

func TestSelectOffsetWraps(t *testing.T) {
	base := 5
	for x := -40; x < 40; x++ {
		off := SelectOffset(x, base)
		if off < 0 || off >= mask.K {
			t.Fatalf("SelectOffset(%d,%d) = %d out of range", x, base, off)
		}
	}
	// Same residue mod K should give the same offset.
	a := SelectOffset(10, base)
	b := SelectOffset(10+mask.K, base)
	if a != b {
		t.Errorf("SelectOffset not periodic mod K: %d != %d", a, b)
	}
}
