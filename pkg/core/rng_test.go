package core

import "testing"

func TestUniformBoolExtremes(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 10000; i++ {
		if rng.UniformBool(0) {
			t.Fatal("probability 0 produced an alive sample")
		}
		if !rng.UniformBool(1) {
			t.Fatal("probability 1 produced a dead sample")
		}
	}
}

func TestUniformBoolOutOfRange(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 1000; i++ {
		if rng.UniformBool(-0.5) {
			t.Fatal("negative probability produced an alive sample")
		}
		if !rng.UniformBool(1.5) {
			t.Fatal("probability above 1 produced a dead sample")
		}
	}
}

func TestRNGDeterministicForSeed(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.UniformBool(0.5) != b.UniformBool(0.5) {
			t.Fatalf("draw %d diverged for equal seeds", i)
		}
	}
}

func TestFillBoolDensity(t *testing.T) {
	buf := make([]bool, 10000)
	FillBool(NewRNG(3), buf, 0.3)
	alive := 0
	for _, c := range buf {
		if c {
			alive++
		}
	}
	if alive < 2500 || alive > 3500 {
		t.Fatalf("density 0.3 produced %d alive cells out of %d", alive, len(buf))
	}
}
