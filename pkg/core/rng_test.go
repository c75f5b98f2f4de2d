package core

import (
	"slices"
	"testing"
)

func TestFillDensityIsDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	NewRNG(5).FillDensity(a, 0.3)
	NewRNG(5).FillDensity(b, 0.3)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different cells")
	}
	live := 0
	for _, v := range a {
		if v > 1 {
			t.Fatalf("non-binary cell %d", v)
		}
		live += int(v)
	}
	if live == 0 || live == len(a) {
		t.Fatalf("density 0.3 produced %d/%d live cells", live, len(a))
	}
}

func TestFillDensityExtremes(t *testing.T) {
	buf := []uint8{1, 1, 1, 1}
	r := NewRNG(1)
	r.FillDensity(buf, 0)
	if !slices.Equal(buf, []uint8{0, 0, 0, 0}) {
		t.Fatalf("density 0 gave %v", buf)
	}
	r.FillDensity(buf, 1)
	if !slices.Equal(buf, []uint8{1, 1, 1, 1}) {
		t.Fatalf("density 1 gave %v", buf)
	}
	if r.Chance(-1) || !r.Chance(2) {
		t.Fatal("Chance should saturate outside [0, 1]")
	}
}
